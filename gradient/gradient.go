// Package gradient implements smooth multi-color text gradients: it partitions
// a string into segments, interpolates a per-character color between anchor
// pairs, and compresses the result into a minimal set of styled spans.
package gradient

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/log"
	"github.com/spectra-cli/spectra/style"
	"github.com/spectra-cli/spectra/util"
)

// DefaultHues is the anchor-color count used when neither colors nor hues are given.
const DefaultHues = 3

// RainbowHues spans the full spectrum palette.
const RainbowHues = 10

// SampleBlock substitutes for every character in sample mode.
const SampleBlock = "█"

// Input is the tagged input accepted by New, resolved once at the construction boundary.
type Input interface {
	plain() string
}

// Plain is unstyled input text.
type Plain string

func (p Plain) plain() string { return string(p) }

// Styled is input text carrying prior styling. The computed gradient replaces
// the prior spans; the type exists so styled containers round-trip cleanly.
type Styled struct {
	Text  string
	Spans []Span
}

func (s Styled) plain() string { return s.Text }

// Options configures gradient construction. The zero value requests a
// three-hue gradient from the rotating default palette with a null base style.
type Options struct {
	// Colors are explicit anchor colors. When empty, anchors are drawn from
	// the rotating spectrum palette.
	Colors []color.Color

	// Hues is the anchor count for auto-generated palettes. Zero means DefaultHues.
	Hues int

	// Rainbow forces the full 10-hue spectrum.
	Rainbow bool

	// Invert reverses the direction of the auto-generated palette.
	Invert bool

	// Sample replaces every character with a full block, showing colors only.
	Sample bool

	// Style is the base style composed under every span.
	Style style.Style

	// Workers bounds optional parallel span computation. Values below two
	// select the sequential path; output is identical either way.
	Workers int
}

// Gradient is text with an eagerly computed, compressed gradient span list.
// Immutable once constructed; derive a new value to change text or colors.
type Gradient struct {
	text   string
	length int
	colors []color.Color
	base   style.Style
	spans  []Span
}

// New validates the input, resolves anchor colors and computes the compressed
// span list in one atomic step. No partially constructed value is observable.
func New(input Input, opts Options) (*Gradient, error) {
	text, length, err := sanitize(input.plain())
	if err != nil {
		return nil, err
	}

	colors, err := resolveColors(opts, length)
	if err != nil {
		return nil, err
	}

	ranges, err := Partition(length, len(colors)-1)
	if err != nil {
		return nil, fmt.Errorf("gradient: %w", err)
	}

	log.Debugf("gradient: %d characters across %s", length, util.Quantify(len(ranges), "segment", "segments"))

	spans := synthesize(ranges, colors, opts.Style, opts.Workers)

	if opts.Sample {
		text = strings.Repeat(SampleBlock, length)
	}

	return &Gradient{
		text:   text,
		length: length,
		colors: colors,
		base:   opts.Style,
		spans:  Compress(spans),
	}, nil
}

// sanitize strips control codes and measures the text in characters.
func sanitize(text string) (string, int, error) {
	cleaned := util.StripControlCodes(text)
	length := len([]rune(cleaned))
	if length == 0 {
		return "", 0, fmt.Errorf("gradient: %w", ErrEmptyText)
	}
	return cleaned, length, nil
}

// resolveColors produces the validated anchor list for the given options.
func resolveColors(opts Options, length int) ([]color.Color, error) {
	colors := opts.Colors

	if len(colors) == 0 {
		hues := opts.Hues
		if hues == 0 {
			hues = DefaultHues
		}
		if opts.Rainbow {
			hues = RainbowHues
		}
		if hues < 2 {
			return nil, fmt.Errorf("gradient: %w: %d hues", ErrInvalidHueCount, hues)
		}
		if hues > RainbowHues {
			hues = RainbowHues
		}
		colors = color.List(opts.Invert)[:hues]
	}

	if len(colors) < 2 {
		return nil, fmt.Errorf("gradient: %w: at least two colors required, got %d", ErrInvalidColorCount, len(colors))
	}
	if len(colors) >= length {
		return nil, fmt.Errorf("gradient: %w: %d colors for %d characters", ErrInvalidColorCount, len(colors), length)
	}

	return colors, nil
}

// synthesize emits one unit-width span per character, pairing each partition
// segment with its adjacent anchor colors. Segments are independent, so the
// work may be fanned out across workers; results land at their global index,
// preserving left-to-right order for the sequential compression that follows.
func synthesize(ranges []Range, colors []color.Color, base style.Style, workers int) []Span {
	length := ranges[len(ranges)-1].End
	spans := make([]Span, length)

	if workers < 2 {
		for i, r := range ranges {
			spanify(spans[r.Start:r.End], r.Start, colors[i], colors[i+1], base)
		}
		return spans
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, r := range ranges {
		wg.Add(1)
		sem <- struct{}{}
		go func(r Range, c1, c2 color.Color) {
			defer wg.Done()
			spanify(spans[r.Start:r.End], r.Start, c1, c2, base)
			<-sem
		}(r, colors[i], colors[i+1])
	}
	wg.Wait()

	return spans
}

// spanify fills dst with unit spans for a single segment. The i-th character
// uses blend parameter i/len, so the segment starts exactly at c1 and
// approaches, without reaching, c2.
func spanify(dst []Span, origin int, c1, c2 color.Color, base style.Style) {
	length := len(dst)
	for i := range dst {
		t := float64(i) / float64(length)
		blended := Interpolate(c1, c2, t)
		dst[i] = Span{
			Start: origin + i,
			End:   origin + i + 1,
			Style: base.Combine(style.Null().Foreground(blended)),
		}
	}
}

// Text returns the sanitized plain text.
func (g *Gradient) Text() string {
	return g.text
}

// Len returns the character count of the text.
func (g *Gradient) Len() int {
	return g.length
}

// Colors returns the anchor colors in gradient order.
func (g *Gradient) Colors() []color.Color {
	return g.colors
}

// Style returns the base style composed under every span.
func (g *Gradient) Style() style.Style {
	return g.base
}

// Spans returns the compressed span list tiling [0, Len).
func (g *Gradient) Spans() []Span {
	return g.spans
}

// Hues returns the number of anchor colors in use.
func (g *Gradient) Hues() int {
	return len(g.colors)
}
