package md2docx

// AlignCenter is the only non-default paragraph alignment the renderer emits.
const AlignCenter = "center"

// ParagraphFormat carries block-level layout for one paragraph. Spacing
// values are integers in twentieths of a point, the DOCX interchange unit;
// LineSpacing is 240 per single line height with rule "auto".
type ParagraphFormat struct {
	Alignment     string // "" = template default
	SpacingBefore int
	SpacingAfter  int
	LineSpacing   int
	IndentLeft    int
}

// RunStyle carries character-level formatting for one text run.
type RunStyle struct {
	Bold     bool
	FontName string
	Size     int // points
}

// ParagraphWriter receives the text runs of a single paragraph.
type ParagraphWriter interface {
	AddRun(text string, style RunStyle)
}

// DocumentBuilder is the rich-document surface the renderer writes to. The
// renderer is a pure consumer: it only appends paragraphs and page breaks,
// in order, and never revisits earlier content.
type DocumentBuilder interface {
	AddParagraph(format ParagraphFormat) ParagraphWriter
	AddPageBreak()
}
