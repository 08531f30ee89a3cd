package md2docx

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
)

// templateBytes builds a minimal letterhead template in memory.
func templateBytes(t *testing.T) []byte {
	t.Helper()

	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText("Old letter content to be cleared")

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		t.Fatalf("build template: %v", err)
	}
	return buf.Bytes()
}

// paragraphTexts re-parses generated bytes and returns each paragraph's
// concatenated run text.
func paragraphTexts(t *testing.T, data []byte) []string {
	t.Helper()

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("parse generated document: %v", err)
	}

	var texts []string
	for _, item := range doc.Document.Body.Items {
		p, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		var sb strings.Builder
		for _, child := range p.Children {
			run, ok := child.(*docx.Run)
			if !ok {
				continue
			}
			for _, rc := range run.Children {
				if txt, ok := rc.(*docx.Text); ok {
					sb.WriteString(txt.Text)
				}
			}
		}
		texts = append(texts, sb.String())
	}
	return texts
}

func testInput(t *testing.T) Input {
	t.Helper()
	return Input{
		Markdown:  "Dear Alice Murphy\n\nThank you for your enquiry.\n\nKind regards,",
		Template:  templateBytes(t),
		Title:     "Proposal for Services",
		Date:      "Tuesday 20 January 2026",
		Recipient: Recipient{Name: "Alice Murphy", Organization: "Acme Ltd"},
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	svc := New()
	data, err := svc.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Generate() returned no bytes")
	}

	texts := paragraphTexts(t, data)
	joined := strings.Join(texts, "\n")

	for _, want := range []string{
		"Proposal for Services",
		"Alice Murphy",
		"Acme Ltd",
		"Tuesday 20 January 2026",
		"Dear Alice Murphy",
		"Thank you for your enquiry.",
		"Kind regards,",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("generated document missing %q\nparagraphs: %#v", want, texts)
		}
	}
	if strings.Contains(joined, "Old letter content") {
		t.Error("template body content survived into the generated document")
	}
}

func TestGenerateOrdering(t *testing.T) {
	t.Parallel()

	svc := New()
	data, err := svc.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	joined := strings.Join(paragraphTexts(t, data), "\n")
	order := []string{
		"Proposal for Services",
		"Alice Murphy",
		"Tuesday 20 January 2026",
		"Dear Alice Murphy",
		"Thank you for your enquiry.",
		"Kind regards,",
	}
	pos := -1
	for _, want := range order {
		idx := strings.Index(joined, want)
		if idx < 0 {
			t.Fatalf("missing %q in output", want)
		}
		if idx <= pos {
			t.Errorf("%q appears out of order", want)
		}
		pos = idx
	}
}

func TestGenerateWithContentSegment(t *testing.T) {
	t.Parallel()

	input := testInput(t)
	input.Markdown = "Dear Alice Murphy\n\nPlease find our proposal below.\nKind regards,\n\\newpage\n## Scope\n- Site survey\n  - Access audit\n1. Mobilise\n2. Deliver"

	svc := New()
	data, err := svc.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	joined := strings.Join(paragraphTexts(t, data), "\n")
	for _, want := range []string{
		"Scope",
		"• Site survey",
		"○ Access audit",
		"1. Mobilise",
		"2. Deliver",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("generated document missing %q", want)
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	t.Parallel()

	template := templateBytes(t)
	valid := func() Input {
		return Input{
			Markdown:  "Dear A\n\nBody.\nKind regards,",
			Template:  template,
			Title:     "T",
			Recipient: Recipient{Name: "A"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Input)
		opts    []Option
		wantErr error
	}{
		{
			name:    "empty markdown",
			mutate:  func(in *Input) { in.Markdown = "" },
			wantErr: ErrEmptyMarkdown,
		},
		{
			name:    "empty template",
			mutate:  func(in *Input) { in.Template = nil },
			wantErr: ErrEmptyTemplate,
		},
		{
			name:    "missing title",
			mutate:  func(in *Input) { in.Title = "" },
			wantErr: ErrMissingTitle,
		},
		{
			name:    "missing recipient name",
			mutate:  func(in *Input) { in.Recipient.Name = "" },
			wantErr: ErrMissingRecipient,
		},
		{
			name:    "corrupt template",
			mutate:  func(in *Input) { in.Template = []byte("not a zip archive") },
			wantErr: ErrTemplateParse,
		},
		{
			name:    "invalid brand font",
			mutate:  func(*Input) {},
			opts:    []Option{WithBrand(Brand{BodySize: 11, QualificationsSize: 10, Heading2Size: 14, Heading3Size: 12, LineSpacing: 1.2})},
			wantErr: ErrInvalidFontName,
		},
		{
			name:   "invalid brand size",
			mutate: func(*Input) {},
			opts: []Option{WithBrand(Brand{
				FontName: "Calibri", QualificationsSize: 10, Heading2Size: 14, Heading3Size: 12, LineSpacing: 1.2,
			})},
			wantErr: ErrInvalidFontSize,
		},
		{
			name:   "invalid line spacing",
			mutate: func(*Input) {},
			opts: []Option{WithBrand(Brand{
				FontName: "Calibri", BodySize: 11, QualificationsSize: 10, Heading2Size: 14, Heading3Size: 12, LineSpacing: 9,
			})},
			wantErr: ErrInvalidLineSpacing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := valid()
			tt.mutate(&input)
			svc := New(tt.opts...)
			_, err := svc.Generate(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New()
	_, err := svc.Generate(ctx, testInput(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
}

func TestGenerateCustomBrand(t *testing.T) {
	t.Parallel()

	brand := DefaultBrand()
	brand.SignOff = SignOff{
		Name:           "Conor Wade",
		Qualifications: "BEng CEng MIEI",
		Title:          "Director",
	}

	svc := New(WithBrand(brand))
	if got := svc.Brand().SignOff.Name; got != "Conor Wade" {
		t.Fatalf("Brand().SignOff.Name = %q, want %q", got, "Conor Wade")
	}

	data, err := svc.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	joined := strings.Join(paragraphTexts(t, data), "\n")
	for _, want := range []string{"Conor Wade", "BEng CEng MIEI", "Director"} {
		if !strings.Contains(joined, want) {
			t.Errorf("generated document missing sign-off line %q", want)
		}
	}
}

func TestGenerateConcurrent(t *testing.T) {
	t.Parallel()

	svc := New()
	input := testInput(t)

	const workers = 8
	errs := make(chan error, workers)
	for range workers {
		go func() {
			_, err := svc.Generate(context.Background(), input)
			errs <- err
		}()
	}
	for range workers {
		if err := <-errs; err != nil {
			t.Errorf("concurrent Generate() error = %v", err)
		}
	}
}

// documentXML unzips generated bytes and returns word/document.xml.
func documentXML(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open generated archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open document.xml: %v", err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read document.xml: %v", err)
		}
		return string(content)
	}
	t.Fatal("generated archive has no word/document.xml")
	return ""
}

func TestGenerateSerializesSpacing(t *testing.T) {
	t.Parallel()

	input := testInput(t)
	input.Markdown = "Dear Alice Murphy\n\nBody paragraph.\nKind regards,\n\\newpage\n## Scope\n- Site survey\n  - Access audit"

	svc := New()
	data, err := svc.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	xmlDoc := documentXML(t, data)

	// Every spacing element carries an explicit w:after.
	spacings := strings.Count(xmlDoc, "<w:spacing")
	if spacings == 0 {
		t.Fatal("document.xml has no spacing elements")
	}
	if afters := strings.Count(xmlDoc, `w:after="`); afters != spacings {
		t.Errorf("w:after on %d of %d spacing elements", afters, spacings)
	}

	// 6pt after on body paragraphs, 12pt before on headings, 1.2 line
	// spacing, 0.25" indents per list level plus one.
	for _, want := range []string{
		`w:after="120"`,
		`w:after="0"`,
		`w:before="240"`,
		`w:line="288"`,
		`w:left="360"`,
		`w:left="720"`,
	} {
		if !strings.Contains(xmlDoc, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
}

func TestGenerateSpacingSurvivesReparse(t *testing.T) {
	t.Parallel()

	// The w:after rewrite must leave a valid archive that go-docx can still
	// parse, with all run text intact.
	svc := New()
	data, err := svc.Generate(context.Background(), testInput(t))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	joined := strings.Join(paragraphTexts(t, data), "\n")
	for _, want := range []string{"Proposal for Services", "Dear Alice Murphy", "Kind regards,"} {
		if !strings.Contains(joined, want) {
			t.Errorf("reparsed document missing %q", want)
		}
	}
}

func TestLoadTemplateErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadTemplate(nil); !errors.Is(err, ErrEmptyTemplate) {
		t.Errorf("LoadTemplate(nil) error = %v, want %v", err, ErrEmptyTemplate)
	}
	if _, err := LoadTemplate([]byte("garbage")); !errors.Is(err, ErrTemplateParse) {
		t.Errorf("LoadTemplate(garbage) error = %v, want %v", err, ErrTemplateParse)
	}
}
