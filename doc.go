// Package md2docx converts a constrained markdown dialect into a professional
// Word (.docx) client letter, rendered into a pre-existing letterhead template.
//
// # Quick Start
//
// Create a service and generate a document:
//
//	svc := md2docx.New()
//
//	tmpl, err := os.ReadFile("letterhead.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := svc.Generate(ctx, md2docx.Input{
//	    Markdown:  source,
//	    Template:  tmpl,
//	    Title:     "Project Proposal",
//	    Date:      "Monday 20 January 2026",
//	    Recipient: md2docx.Recipient{Name: "John Smith", Organization: "Acme Corp"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", out, 0644)
//
// # Source Format
//
// The source is split on a literal \newpage marker. Everything before it is
// the cover letter: title, recipient and date lines are rendered from caller
// metadata, and the prose between the "Dear ..." salutation and the
// "Kind regards," sign-off becomes the letter body, with soft-wrapped lines
// reflowed into paragraphs. Everything after the marker is structured content
// rendered line by line: #/##/### headings, - or * bullets (two spaces of
// indentation per nesting level), "1." numbered items with their literal
// ordinals, and plain paragraphs. Bold runs use **text** anywhere; an
// unterminated pair is kept as literal text.
//
// # Generation Pipeline
//
// The generation process follows these stages:
//
//  1. Segmentation on the \newpage marker
//  2. Cover-letter body extraction (salutation/sign-off state machine)
//  3. Content block classification (headings, bullets, numbered items)
//  4. Inline span tokenization (**bold** runs)
//  5. Rendering onto the letterhead template via go-docx
//
// # Configuration
//
// Brand settings (font, sizes, line spacing, sign-off identity) default to
// DefaultBrand and can be replaced per service:
//
//	brand := md2docx.DefaultBrand()
//	brand.FontName = "Georgia"
//	brand.LineSpacing = 1.15
//	brand.SignOff = md2docx.SignOff{Name: "Jane Doe", Title: "Director"}
//	svc := md2docx.New(md2docx.WithBrand(brand))
//
// The template's headers, footers and section properties are preserved; only
// its body content is replaced.
package md2docx
