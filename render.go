package md2docx

import (
	"fmt"
	"math"
	"strings"
)

// Spacing values from the house letter layout, in points.
const (
	bodySpacingAfterPt     = 6
	headingSpacingBeforePt = 12
	headingSpacingAfterPt  = 6
)

// listIndentTw is 0.25 inch in twentieths of a point, applied once per
// nesting level plus one.
const listIndentTw = 360

// Twentieths converts a point value to the integer twentieths-of-a-point
// unit used by the DOCX format for paragraph spacing. The conversion is
// exact for the spacing values in use; fractional points round half away
// from zero.
func Twentieths(points float64) int {
	return int(math.Round(points * 20))
}

// LineSpacingValue converts a line-spacing multiplier to the w:line value:
// 240 per single line height (1.0 = 240, 1.5 = 360, 2.0 = 480).
func LineSpacingValue(multiplier float64) int {
	return int(math.Round(240 * multiplier))
}

// Letter groups everything the renderer draws: fixed metadata, the extracted
// cover-letter body paragraphs, and the classified content blocks. A Letter
// is consumed exactly once and never mutated by rendering.
type Letter struct {
	Title     string
	Date      string
	Recipient Recipient
	Body      []string
	Content   []Block

	// ContentPresent forces the trailing page break even when every content
	// line classified to nothing (e.g. a segment of rules only).
	ContentPresent bool
}

// Renderer emits a Letter onto a DocumentBuilder using a fixed brand profile.
// Rendering is a pure function of (brand, letter): the same inputs produce
// identical builder operations every time.
type Renderer struct {
	brand Brand
	line  int // brand line spacing in w:line units
}

// NewRenderer creates a Renderer for the given brand.
func NewRenderer(brand Brand) *Renderer {
	return &Renderer{brand: brand, line: LineSpacingValue(brand.LineSpacing)}
}

// Render draws the complete letter: title, recipient block, date,
// salutation, body paragraphs, sign-off, and, when a content segment exists,
// a page break followed by the structured content blocks.
func (r *Renderer) Render(b DocumentBuilder, letter Letter) {
	r.renderTitle(b, letter.Title)
	r.renderRecipient(b, letter.Recipient)
	r.renderDate(b, letter.Date)
	r.renderSalutation(b, letter.Recipient.Name)
	for _, para := range letter.Body {
		r.renderBodyParagraph(b, para)
	}
	r.renderSignOff(b)

	if letter.ContentPresent {
		b.AddPageBreak()
		for _, blk := range letter.Content {
			r.renderBlock(b, blk)
		}
	}
}

// format builds a ParagraphFormat from point spacing values.
func (r *Renderer) format(beforePt, afterPt float64) ParagraphFormat {
	return ParagraphFormat{
		SpacingBefore: Twentieths(beforePt),
		SpacingAfter:  Twentieths(afterPt),
		LineSpacing:   r.line,
	}
}

// spacer appends an empty paragraph with zero spacing.
func (r *Renderer) spacer(b DocumentBuilder) {
	b.AddParagraph(r.format(0, 0))
}

// bodyStyle is the standard body run style.
func (r *Renderer) bodyStyle(bold bool) RunStyle {
	return RunStyle{Bold: bold, FontName: r.brand.FontName, Size: r.brand.BodySize}
}

// renderSpans tokenizes inline emphasis and writes one run per span.
func (r *Renderer) renderSpans(p ParagraphWriter, text string) {
	for _, s := range TokenizeSpans(text) {
		p.AddRun(s.Text, r.bodyStyle(s.Bold))
	}
}

// renderTitle draws the centered document title followed by two spacers.
func (r *Renderer) renderTitle(b DocumentBuilder, title string) {
	f := r.format(0, 0)
	f.Alignment = AlignCenter
	p := b.AddParagraph(f)
	p.AddRun(title, RunStyle{Bold: true, FontName: r.brand.FontName, Size: r.brand.Heading2Size})
	r.spacer(b)
	r.spacer(b)
}

// renderRecipient draws the address block. The name line is always rendered
// in bold; the remaining fields are skipped when blank after trimming.
func (r *Renderer) renderRecipient(b DocumentBuilder, rec Recipient) {
	p := b.AddParagraph(r.format(0, 0))
	p.AddRun(rec.Name, r.bodyStyle(true))

	for _, line := range []string{rec.Title, rec.Organization, rec.Address, rec.City, rec.Country} {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p := b.AddParagraph(r.format(0, 0))
		p.AddRun(line, r.bodyStyle(false))
	}
}

// renderDate draws two spacers then the date line.
func (r *Renderer) renderDate(b DocumentBuilder, date string) {
	r.spacer(b)
	r.spacer(b)
	p := b.AddParagraph(r.format(0, 0))
	p.AddRun(date, r.bodyStyle(false))
}

// renderSalutation draws two spacers then the greeting line.
func (r *Renderer) renderSalutation(b DocumentBuilder, name string) {
	r.spacer(b)
	r.spacer(b)
	p := b.AddParagraph(r.format(0, 0))
	p.AddRun(salutationPrefix+name, r.bodyStyle(false))
}

// renderBodyParagraph draws one prose paragraph with 6pt spacing after.
func (r *Renderer) renderBodyParagraph(b DocumentBuilder, text string) {
	p := b.AddParagraph(r.format(0, bodySpacingAfterPt))
	r.renderSpans(p, text)
}

// renderSignOff draws the fixed closing block from the brand profile.
func (r *Renderer) renderSignOff(b DocumentBuilder) {
	r.spacer(b)

	p := b.AddParagraph(r.format(0, 0))
	p.AddRun(signOffLine, r.bodyStyle(false))

	r.spacer(b)
	r.spacer(b)

	p = b.AddParagraph(r.format(0, 0))
	p.AddRun(r.brand.SignOff.Name, r.bodyStyle(true))

	p = b.AddParagraph(r.format(0, 0))
	p.AddRun(r.brand.SignOff.Qualifications, RunStyle{FontName: r.brand.FontName, Size: r.brand.QualificationsSize})

	p = b.AddParagraph(r.format(0, 0))
	p.AddRun(r.brand.SignOff.Title, r.bodyStyle(true))
}

// renderBlock draws one classified content block.
func (r *Renderer) renderBlock(b DocumentBuilder, blk Block) {
	switch blk.Kind {
	case BlockHeading:
		p := b.AddParagraph(r.format(headingSpacingBeforePt, headingSpacingAfterPt))
		p.AddRun(blk.Text, RunStyle{Bold: true, FontName: r.brand.FontName, Size: r.headingSize(blk.Level)})
	case BlockBullet:
		r.renderListItem(b, "• ", 0, blk.Text)
	case BlockNestedBullet:
		r.renderListItem(b, "○ ", blk.Level, blk.Text)
	case BlockNumbered:
		r.renderListItem(b, fmt.Sprintf("%d. ", blk.Ordinal), 0, blk.Text)
	default:
		r.renderBodyParagraph(b, blk.Text)
	}
}

// headingSize keys the run size off the heading level. Level 1 falls back to
// body size: the letterhead reserves the larger sizes for H2/H3.
func (r *Renderer) headingSize(level int) int {
	switch level {
	case 2:
		return r.brand.Heading2Size
	case 3:
		return r.brand.Heading3Size
	default:
		return r.brand.BodySize
	}
}

// renderListItem draws a list paragraph: a plain marker glyph run, then the
// item's inline spans, indented 0.25" per nesting level plus one.
func (r *Renderer) renderListItem(b DocumentBuilder, marker string, level int, text string) {
	f := r.format(0, 0)
	f.IndentLeft = listIndentTw * (1 + level)
	p := b.AddParagraph(f)
	p.AddRun(marker, r.bodyStyle(false))
	r.renderSpans(p, text)
}
