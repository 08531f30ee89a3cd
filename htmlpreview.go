package md2docx

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previewTemplate wraps goldmark's fragment output in a complete HTML5 document.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Preview</title>
</head>
<body>
%s
</body>
</html>`

// HTMLPreviewer renders the raw markdown source to a standalone HTML page
// for quick proofing in a browser before generating the DOCX. The preview is
// a faithful CommonMark rendering of the source; it does not reproduce the
// letter layout and never feeds the DOCX pipeline.
type HTMLPreviewer struct {
	md goldmark.Markdown
}

// NewHTMLPreviewer creates a previewer with GFM extensions and syntax
// highlighting.
func NewHTMLPreviewer() *HTMLPreviewer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	return &HTMLPreviewer{md: md}
}

// ToHTML converts markdown content to a standalone HTML5 document. Goldmark
// has no native context support, so cancellation uses a goroutine + select.
func (c *HTMLPreviewer) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
