package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx [flags] <source.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a professional Word letter from markdown using a letterhead template.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -t, --template <path>       Letterhead template (.docx)")
	fmt.Fprintln(w, "  -s, --source <path>         Markdown source (or first positional argument)")
	fmt.Fprintln(w, "  -o, --output <path>         Output .docx file or directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "      --html                  Write an HTML preview alongside the document")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recipient:")
	fmt.Fprintln(w, "      --recipient-name <s>    Recipient name (required)")
	fmt.Fprintln(w, "      --recipient-title <s>   Recipient title/position")
	fmt.Fprintln(w, "      --recipient-org <s>     Recipient organisation")
	fmt.Fprintln(w, "      --recipient-address <s> Street address")
	fmt.Fprintln(w, "      --recipient-city <s>    City and postcode")
	fmt.Fprintln(w, "      --recipient-country <s> Country (default from config)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --doc-title <s>         Document title (required)")
	fmt.Fprintln(w, "      --date <s>              Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                              Tokens: YYYY, YY, MMMM, MMM, MM, M, DDDD, DDD, DD, D")
	fmt.Fprintln(w, "                              Presets: iso, european, us, long, letter")
	fmt.Fprintln(w, "                              Default: auto:letter (\"Monday 20 January 2026\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Batch:")
	fmt.Fprintln(w, "      --recipients <path>     YAML recipient list, one document per entry")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show per-document timing")
	fmt.Fprintln(w, "      --version               Show version and exit")
}
