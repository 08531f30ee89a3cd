package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across modes.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// recipientFlags holds the recipient address block fields.
type recipientFlags struct {
	name    string
	title   string
	org     string
	address string
	city    string
	country string
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	title string
	date  string
}

// generateFlags holds all flags for a generation run.
type generateFlags struct {
	common     commonFlags
	recipient  recipientFlags
	document   documentFlags
	template   string
	source     string
	output     string
	recipients string
	workers    int
	html       bool
	version    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-document timing")
}

// addRecipientFlags adds recipient address flags to a FlagSet.
func addRecipientFlags(fs *flag.FlagSet, f *recipientFlags) {
	fs.StringVar(&f.name, "recipient-name", "", "recipient name")
	fs.StringVar(&f.title, "recipient-title", "", "recipient title/position")
	fs.StringVar(&f.org, "recipient-org", "", "recipient organisation")
	fs.StringVar(&f.address, "recipient-address", "", "street address")
	fs.StringVar(&f.city, "recipient-city", "", "city and postcode")
	fs.StringVar(&f.country, "recipient-country", "", "country (default from config)")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "doc-title", "", "document title (required)")
	fs.StringVar(&f.date, "date", "", "date: \"auto\", \"auto:FORMAT\", or a literal line")
}

// parseFlags parses CLI flags and returns remaining positional args.
// The markdown source may be given positionally instead of via --source.
func parseFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("md2docx", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringVarP(&f.template, "template", "t", "", "letterhead template (.docx)")
	fs.StringVarP(&f.source, "source", "s", "", "markdown source file")
	fs.StringVarP(&f.output, "output", "o", "", "output .docx path or directory")
	fs.StringVar(&f.recipients, "recipients", "", "YAML recipient list for batch generation")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for batch mode (0 = auto)")
	fs.BoolVar(&f.html, "html", false, "write an HTML preview alongside the document")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	addCommonFlags(fs, &f.common)
	addRecipientFlags(fs, &f.recipient)
	addDocumentFlags(fs, &f.document)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
