package gradient

import (
	"fmt"

	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/style"
)

// Substring is a gradient between exactly one color pair, owning its own
// index origin. It is the degenerate single-segment case of Gradient and is
// used when building one piece of a larger composite; it shares the same
// interpolation and compression machinery.
type Substring struct {
	text  string
	start int
	spans []Span
}

// NewSubstring computes a single-pair gradient over the whole text, with span
// indices offset by startIndex into the enclosing container.
func NewSubstring(text string, startIndex int, colorStart, colorEnd color.Color, base style.Style) (*Substring, error) {
	sanitized, length, err := sanitize(text)
	if err != nil {
		return nil, err
	}
	if startIndex < 0 {
		return nil, fmt.Errorf("gradient: negative start index %d", startIndex)
	}

	spans := make([]Span, length)
	spanify(spans, startIndex, colorStart, colorEnd, base)

	return &Substring{
		text:  sanitized,
		start: startIndex,
		spans: Compress(spans),
	}, nil
}

// Text returns the sanitized substring text.
func (s *Substring) Text() string {
	return s.text
}

// StartIndex returns the substring's origin within the enclosing container.
func (s *Substring) StartIndex() int {
	return s.start
}

// Spans returns the compressed span list covering [StartIndex, StartIndex+len).
func (s *Substring) Spans() []Span {
	return s.spans
}
