package md2docx

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []Span
	}{
		{
			name: "plain text only",
			line: "no emphasis here",
			want: []Span{{Text: "no emphasis here"}},
		},
		{
			name: "fully bold line",
			line: "**all bold**",
			want: []Span{{Text: "all bold", Bold: true}},
		},
		{
			name: "bold in the middle",
			line: "before **middle** after",
			want: []Span{
				{Text: "before "},
				{Text: "middle", Bold: true},
				{Text: " after"},
			},
		},
		{
			name: "multiple bold runs",
			line: "**a** and **b**",
			want: []Span{
				{Text: "a", Bold: true},
				{Text: " and "},
				{Text: "b", Bold: true},
			},
		},
		{
			name: "non-greedy pairing",
			line: "**a** b **c**",
			want: []Span{
				{Text: "a", Bold: true},
				{Text: " b "},
				{Text: "c", Bold: true},
			},
		},
		{
			name: "unterminated delimiter stays literal",
			line: "**bold",
			want: []Span{{Text: "**bold"}},
		},
		{
			name: "odd trailing delimiter stays literal",
			line: "**a** rest**",
			want: []Span{
				{Text: "a", Bold: true},
				{Text: " rest**"},
			},
		},
		{
			name: "empty bold pair is dropped",
			line: "a****b",
			want: []Span{
				{Text: "a"},
				{Text: "b"},
			},
		},
		{
			name: "empty line yields no spans",
			line: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TokenizeSpans(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenizeSpans(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestTokenizeSpansRoundTrip(t *testing.T) {
	t.Parallel()

	// Re-wrapping bold spans in ** must reproduce balanced input exactly.
	lines := []string{
		"plain",
		"**bold**",
		"a **b** c",
		"**a** and **b** tail",
		"start **mid1** gap **mid2** end",
	}
	for _, line := range lines {
		var rebuilt strings.Builder
		for _, s := range TokenizeSpans(line) {
			if s.Bold {
				rebuilt.WriteString("**" + s.Text + "**")
			} else {
				rebuilt.WriteString(s.Text)
			}
		}
		if rebuilt.String() != line {
			t.Errorf("round trip of %q = %q", line, rebuilt.String())
		}
	}
}

func TestTokenizeSpansUnbalancedNeverLosesText(t *testing.T) {
	t.Parallel()

	// Unbalanced delimiters degrade to literal text: concatenated span
	// texts equal the input unchanged.
	lines := []string{
		"**bold",
		"trailing**",
		"* single asterisks *",
		"a ** b",
	}
	for _, line := range lines {
		var concat strings.Builder
		for _, s := range TokenizeSpans(line) {
			if s.Bold {
				t.Errorf("TokenizeSpans(%q) produced a bold span %q from unbalanced input", line, s.Text)
			}
			concat.WriteString(s.Text)
		}
		if concat.String() != line {
			t.Errorf("TokenizeSpans(%q) concatenates to %q", line, concat.String())
		}
	}
}
