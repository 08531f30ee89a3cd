package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrEmptyTemplate    = errors.New("letterhead template cannot be empty")
	ErrTemplateParse    = errors.New("failed to parse letterhead template")
	ErrMissingTitle     = errors.New("document title is required")
	ErrMissingRecipient = errors.New("recipient name is required")
	ErrDocumentWrite    = errors.New("failed to serialize document")
	ErrHTMLConversion   = errors.New("HTML conversion failed")

	// Brand validation errors.
	ErrInvalidFontName    = errors.New("invalid font name")
	ErrInvalidFontSize    = errors.New("invalid font size")
	ErrInvalidLineSpacing = errors.New("invalid line spacing")
)
