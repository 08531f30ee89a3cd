package md2docx

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// LoadTemplate parses a letterhead .docx and clears its body so the caller
// starts from an empty first page. Headers, footers and section properties
// live outside the removed elements and survive into the generated document.
func LoadTemplate(data []byte) (*docx.Docx, error) {
	if len(data) == 0 {
		return nil, ErrEmptyTemplate
	}
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	clearBody(doc)
	return doc, nil
}

// clearBody removes existing paragraphs and tables from the template body,
// keeping every other body item intact.
func clearBody(doc *docx.Docx) {
	items := doc.Document.Body.Items
	kept := items[:0]
	for _, item := range items {
		switch item.(type) {
		case *docx.Paragraph, *docx.Table:
			// old letter content, dropped
		default:
			kept = append(kept, item)
		}
	}
	doc.Document.Body.Items = kept
}
