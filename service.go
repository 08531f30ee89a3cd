package md2docx

import (
	"bytes"
	"context"
	"fmt"
)

// Service orchestrates the markdown-to-DOCX pipeline. A Service is stateless
// across calls and safe for concurrent use: every Generate call owns its
// in-progress document exclusively.
type Service struct {
	brand Brand
}

// New creates a Service with the default brand profile.
// Use options to customize behavior (e.g., WithBrand).
func New(opts ...Option) *Service {
	s := &Service{brand: DefaultBrand()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Brand returns the brand profile the service renders with.
func (s *Service) Brand() Brand {
	return s.brand
}

// Generate runs the full pipeline and returns the finished document as
// bytes: segment the source, extract the cover-letter body, classify the
// content blocks, and render everything into the cleared letterhead
// template. Nothing is written anywhere; either the complete document is
// returned or an error is.
func (s *Service) Generate(ctx context.Context, input Input) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	doc, err := LoadTemplate(input.Template)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	coverLetter, content := Segment(input.Markdown)

	letter := Letter{
		Title:          input.Title,
		Date:           input.Date,
		Recipient:      input.Recipient,
		Body:           ExtractBodyParagraphs(coverLetter),
		Content:        ClassifyBlocks(content),
		ContentPresent: content != "",
	}

	builder := newDocxBuilder(doc)
	NewRenderer(s.brand).Render(builder, letter)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentWrite, err)
	}
	out, err := builder.finalize(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentWrite, err)
	}
	return out, nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if len(input.Template) == 0 {
		return ErrEmptyTemplate
	}
	if input.Title == "" {
		return ErrMissingTitle
	}
	if input.Recipient.Name == "" {
		return ErrMissingRecipient
	}
	return s.brand.Validate()
}
