// Package render is the terminal sink for computed gradients: it holds plain
// text with a flat list of non-overlapping styled spans and produces ANSI
// output, optionally wrapped to a width. Gradient computation never depends
// on this package; data flows one way into it.
package render

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spectra-cli/spectra/gradient"
)

// Text is a styled-text container: a plain string plus the compressed span
// list tiling it.
type Text struct {
	plain string
	spans []gradient.Span
}

// New constructs a container from plain text and a span list.
func New(plain string, spans []gradient.Span) *Text {
	return &Text{plain: plain, spans: spans}
}

// FromGradient adapts a computed gradient into a renderable container.
func FromGradient(g *gradient.Gradient) *Text {
	return New(g.Text(), g.Spans())
}

// Plain returns the unstyled text.
func (t *Text) Plain() string {
	return t.plain
}

// Spans returns the attached span list.
func (t *Text) Spans() []gradient.Span {
	return t.spans
}

// Styled converts the container back into gradient input, for layering
// another gradient over already-styled text.
func (t *Text) Styled() gradient.Styled {
	return gradient.Styled{Text: t.plain, Spans: t.spans}
}

// Render produces the ANSI string: each span's style applied to its slice of
// the text. Characters not covered by any span pass through unstyled.
func (t *Text) Render() string {
	runes := []rune(t.plain)

	var b strings.Builder
	cursor := 0
	for _, span := range t.spans {
		if span.Start >= len(runes) {
			break
		}
		if span.Start > cursor {
			b.WriteString(string(runes[cursor:span.Start]))
		}
		end := span.End
		if end > len(runes) {
			end = len(runes)
		}
		b.WriteString(span.Style.Render(string(runes[span.Start:end])))
		cursor = end
	}
	if cursor < len(runes) {
		b.WriteString(string(runes[cursor:]))
	}
	return b.String()
}

// RenderWrapped renders and word-wraps the output at the given column.
// Widths below one return the unwrapped rendering.
func (t *Text) RenderWrapped(width int) string {
	rendered := t.Render()
	if width < 1 {
		return rendered
	}
	return wordwrap.String(rendered, width)
}
