package md2docx

import "strings"

// PageBreakMarker separates the cover letter from structured content in the
// markdown source.
const PageBreakMarker = `\newpage`

// Segment splits the raw source on the first occurrence of PageBreakMarker.
// When the marker is absent the whole input is the cover letter and content
// is empty. Both halves are trimmed of surrounding whitespace. Segment is a
// total function: it succeeds on any input, including the empty string.
func Segment(text string) (coverLetter, content string) {
	before, after, found := strings.Cut(text, PageBreakMarker)
	if !found {
		return strings.TrimSpace(text), ""
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}
