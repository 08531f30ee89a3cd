package md2docx

import "strings"

// coverScanState tracks progress through the cover-letter segment.
type coverScanState int

const (
	statePreBody coverScanState = iota // before the salutation line
	stateInBody                        // accumulating body paragraphs
	stateDone                          // sign-off reached, scan finished
)

// Boundary literals for the cover-letter scan.
const (
	salutationPrefix = "Dear "
	signOffMarker    = "Kind regards"
	signOffLine      = "Kind regards,"
)

// ExtractBodyParagraphs isolates the prose between the salutation and the
// sign-off of the cover-letter segment. Title, recipient and rule lines
// (leading #, ** or ---) are discarded: the caller renders those blocks from
// its own metadata. Soft-wrapped lines within a paragraph are joined with a
// single space; a blank line completes the paragraph. The scan stops at the
// sign-off marker and ignores anything after it within the segment.
//
// There are no error conditions. A segment without a salutation yields zero
// paragraphs; a segment without a sign-off yields everything accumulated up
// to the end of input, including a paragraph still in progress.
func ExtractBodyParagraphs(coverLetter string) []string {
	var (
		paragraphs []string
		buffer     []string
		state      = statePreBody
	)

	flush := func() {
		if len(buffer) > 0 {
			paragraphs = append(paragraphs, strings.Join(buffer, " "))
			buffer = nil
		}
	}

	for _, line := range strings.Split(coverLetter, "\n") {
		// Structural lines belong to blocks rendered separately; they also
		// terminate any paragraph in progress.
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "**") || strings.HasPrefix(line, "---") {
			flush()
			continue
		}

		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, salutationPrefix) {
			// The salutation itself is dropped; the rendered greeting uses
			// the recipient name supplied by the caller.
			state = stateInBody
			continue
		}

		if strings.Contains(line, signOffMarker) || trimmed == signOffLine {
			flush()
			state = stateDone
			break
		}

		if state != stateInBody {
			continue
		}

		if trimmed != "" {
			buffer = append(buffer, trimmed)
		} else {
			flush()
		}
	}

	// A letter that ends mid-paragraph without a sign-off still yields the
	// pending paragraph.
	if state != stateDone {
		flush()
	}

	return paragraphs
}
