package main

import (
	"errors"
	"os"

	md2docx "github.com/conorwade/go-md2docx"
	"github.com/conorwade/go-md2docx/internal/config"
	"github.com/conorwade/go-md2docx/internal/dateutil"
)

// Exit codes for the md2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Document generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrReadRecipients) ||
		errors.Is(err, ErrWriteDocument) ||
		errors.Is(err, ErrWritePreview) ||
		errors.Is(err, ErrNoSource) ||
		errors.Is(err, ErrNoTemplate) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, md2docx.ErrEmptyMarkdown) ||
		errors.Is(err, md2docx.ErrEmptyTemplate) ||
		errors.Is(err, md2docx.ErrMissingTitle) ||
		errors.Is(err, md2docx.ErrMissingRecipient) ||
		errors.Is(err, md2docx.ErrInvalidFontName) ||
		errors.Is(err, md2docx.ErrInvalidFontSize) ||
		errors.Is(err, md2docx.ErrInvalidLineSpacing) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrParseRecipients) ||
		errors.Is(err, ErrNoRecipients) ||
		errors.Is(err, ErrRecipientName) {
		return ExitUsage
	}

	return ExitGeneral
}
