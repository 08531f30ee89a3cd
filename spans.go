package md2docx

import "regexp"

// boldPair matches a non-greedy **...** emphasis pair.
var boldPair = regexp.MustCompile(`\*\*(.*?)\*\*`)

// Span is a contiguous run of text within a line sharing one emphasis state.
type Span struct {
	Text string
	Bold bool
}

// TokenizeSpans splits a line into alternating plain and bold runs. Text
// enclosed by a matched **...** pair becomes a bold span with the delimiters
// stripped; everything else is plain. Empty spans are dropped. An unterminated
// pair never fails: the remaining delimiters stay in a plain span as literal
// characters, so concatenating the span texts always reproduces the line with
// only matched delimiters removed.
func TokenizeSpans(line string) []Span {
	var spans []Span
	last := 0
	for _, m := range boldPair.FindAllStringSubmatchIndex(line, -1) {
		if plain := line[last:m[0]]; plain != "" {
			spans = append(spans, Span{Text: plain})
		}
		if inner := line[m[2]:m[3]]; inner != "" {
			spans = append(spans, Span{Text: inner, Bold: true})
		}
		last = m[1]
	}
	if rest := line[last:]; rest != "" {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}
