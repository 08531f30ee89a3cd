package md2docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/fumiama/go-docx"
)

// docxBuilder adapts the go-docx object model to the DocumentBuilder surface.
// go-docx's Spacing carries before/line values but has no marshal path for
// w:after, so the builder records each paragraph's after value and patches it
// into the serialized document.xml during finalization.
type docxBuilder struct {
	doc    *docx.Docx
	afters []int // spacing-after in twentieths, one per spacing-bearing paragraph
}

func newDocxBuilder(doc *docx.Docx) *docxBuilder {
	return &docxBuilder{doc: doc}
}

func (b *docxBuilder) AddParagraph(format ParagraphFormat) ParagraphWriter {
	p := b.doc.AddParagraph()
	if format.Alignment != "" {
		p.Justification(format.Alignment)
	}
	if p.Properties == nil {
		p.Properties = &docx.ParagraphProperties{}
	}
	p.Properties.Spacing = &docx.Spacing{
		Before:   format.SpacingBefore,
		Line:     format.LineSpacing,
		LineRule: "auto",
	}
	b.afters = append(b.afters, format.SpacingAfter)
	if format.IndentLeft > 0 {
		p.Properties.Ind = &docx.Ind{Left: format.IndentLeft}
	}
	return &docxParagraph{p: p}
}

// AddPageBreak appends a break paragraph. It carries no spacing element and
// is invisible to the w:after rewrite.
func (b *docxBuilder) AddPageBreak() {
	b.doc.AddParagraph().AddPageBreaks()
}

// finalize rewrites the serialized .docx so every recorded paragraph carries
// its w:after attribute.
func (b *docxBuilder) finalize(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	zw := zip.NewWriter(&out)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}

		if f.Name == "word/document.xml" {
			content, err = insertAfterSpacing(content, b.afters)
			if err != nil {
				return nil, err
			}
		}

		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(content); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// spacingTag opens the paragraph spacing element in document.xml. Every
// paragraph the builder creates sets a non-nil Spacing with a non-zero line
// value, so the nth opening tag belongs to the nth recorded paragraph.
var spacingTag = []byte("<w:spacing")

// insertAfterSpacing adds a w:after attribute to each spacing element, in
// document order. A count mismatch means the document no longer lines up with
// the recorded paragraphs and is reported rather than patched partially.
func insertAfterSpacing(xmlDoc []byte, afters []int) ([]byte, error) {
	var out bytes.Buffer
	out.Grow(len(xmlDoc) + len(afters)*16)

	rest := xmlDoc
	for i, after := range afters {
		idx := bytes.Index(rest, spacingTag)
		if idx < 0 {
			return nil, fmt.Errorf("document has %d spacing elements, expected %d", i, len(afters))
		}
		out.Write(rest[:idx+len(spacingTag)])
		out.WriteString(` w:after="`)
		out.WriteString(strconv.Itoa(after))
		out.WriteString(`"`)
		rest = rest[idx+len(spacingTag):]
	}
	out.Write(rest)
	return out.Bytes(), nil
}

// docxParagraph writes runs onto one go-docx paragraph.
type docxParagraph struct {
	p *docx.Paragraph
}

func (w *docxParagraph) AddRun(text string, style RunStyle) {
	run := w.p.AddText(text)
	run.Font(style.FontName, "", style.FontName, "")
	// w:sz is expressed in half-points.
	run.Size(strconv.Itoa(style.Size * 2))
	if style.Bold {
		run.Bold()
	}
}
