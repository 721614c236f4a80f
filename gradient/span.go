package gradient

import (
	"fmt"

	"github.com/spectra-cli/spectra/style"
)

// Span is a half-open character range [Start, End) with an attached resolved style.
type Span struct {
	Start int
	End   int
	Style style.Style
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d) %s", s.Start, s.End, s.Style)
}

// Compress merges abutting spans that share an identical resolved style.
// Input spans must be contiguous, non-overlapping and in increasing order;
// the output preserves coverage, no two adjacent output spans are equal in
// style, and compressing twice is a no-op. An empty input is a caller bug.
func Compress(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}

	compressed := make([]Span, 0, len(spans))
	var current Span
	for i, span := range spans {
		if i == 0 {
			current = span
			continue
		}
		if span.Style.Equal(current.Style) {
			current.End = span.End
		} else {
			compressed = append(compressed, current)
			current = span
		}
	}
	compressed = append(compressed, current)
	return compressed
}
