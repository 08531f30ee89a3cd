package md2docx

import (
	"time"

	"github.com/conorwade/go-md2docx/internal/dateutil"
)

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" → current date in YYYY-MM-DD format
//   - "auto:FORMAT" → current date in a custom format (e.g., "auto:DD/MM/YYYY")
//   - "auto:preset" → current date using a named preset (iso, european, us,
//     long, letter)
//   - any other value → returned unchanged (passthrough)
//
// The "letter" preset produces the full written date used at the top of a
// letter, e.g. "Monday 20 January 2026".
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	return dateutil.ResolveDate(value, t)
}
