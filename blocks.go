package md2docx

import (
	"regexp"
	"strconv"
	"strings"
)

// BlockKind identifies the semantic type of one classified content line.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockBullet
	BlockNestedBullet
	BlockNumbered
	BlockParagraph
)

// String returns the kind name for test failures and debugging.
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockBullet:
		return "bullet"
	case BlockNestedBullet:
		return "nested-bullet"
	case BlockNumbered:
		return "numbered"
	case BlockParagraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// Block is one classified unit of content-segment text, destined for exactly
// one rendered paragraph. Text has its structural marker stripped but keeps
// inline emphasis markers for downstream tokenization.
type Block struct {
	Kind    BlockKind
	Text    string
	Level   int // heading level 1-3, or bullet nesting depth
	Ordinal int // literal source number for numbered items
}

// Precompiled markers for line classification.
var (
	headingMarker  = regexp.MustCompile(`^#+\s*`)
	bulletMarker   = regexp.MustCompile(`^[-*]\s*`)
	numberedStart  = regexp.MustCompile(`^(\d+)\.`)
	numberedMarker = regexp.MustCompile(`^\d+\.\s*`)
)

// ClassifyBlocks processes the content segment line by line, first match
// wins: blank and horizontal-rule lines are skipped; ### / ## / # headings;
// bullets with two or more columns of leading whitespace nest one level per
// two columns; "N." lines are numbered items that keep their literal source
// ordinal (out-of-order numbering renders verbatim); everything else,
// including "**Label:** ..." lines, is a plain paragraph.
//
// Unlike the cover-letter extractor, each physical line becomes its own
// block: structured content is line-oriented and never reflows.
func ClassifyBlocks(content string) []Block {
	var blocks []Block
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || line == "---" {
			continue
		}

		indent := len(raw) - len(strings.TrimLeft(raw, " \t"))

		switch {
		case strings.HasPrefix(line, "###"):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 3, Text: headingMarker.ReplaceAllString(line, "")})
		case strings.HasPrefix(line, "##"):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 2, Text: headingMarker.ReplaceAllString(line, "")})
		case strings.HasPrefix(line, "#"):
			blocks = append(blocks, Block{Kind: BlockHeading, Level: 1, Text: headingMarker.ReplaceAllString(line, "")})
		case indent >= 2 && hasBulletMarker(line):
			blocks = append(blocks, Block{Kind: BlockNestedBullet, Level: indent / 2, Text: bulletMarker.ReplaceAllString(line, "")})
		case hasBulletMarker(line):
			blocks = append(blocks, Block{Kind: BlockBullet, Text: bulletMarker.ReplaceAllString(line, "")})
		case numberedStart.MatchString(line):
			ordinal, _ := strconv.Atoi(numberedStart.FindStringSubmatch(line)[1])
			blocks = append(blocks, Block{Kind: BlockNumbered, Ordinal: ordinal, Text: numberedMarker.ReplaceAllString(line, "")})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: line})
		}
	}
	return blocks
}

// hasBulletMarker reports whether a trimmed line starts a bullet item.
func hasBulletMarker(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}
