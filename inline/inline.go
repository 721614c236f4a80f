// Package inline provides the implementation for the application's non-interactive,
// programmable execution mode: one gradient in, ANSI or JSON out.
package inline

import (
	"fmt"
	"os"

	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/gradient"
	"github.com/spectra-cli/spectra/log"
	"github.com/spectra-cli/spectra/palette"
	"github.com/spectra-cli/spectra/render"
	"github.com/spectra-cli/spectra/style"
)

// Run resolves the requested colors and style, computes the gradient, and
// writes it to the configured output.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	// Step 1: Resolve anchor colors from explicit tokens or a named palette.
	colors, err := resolveColors(options)
	if err != nil {
		return err
	}

	// Step 2: Parse the base style.
	base := style.Null()
	if raw, ok := options.Style.Get(); ok {
		base, err = style.Parse(raw)
		if err != nil {
			return err
		}
	}

	// Step 3: Compute the gradient.
	g, err := gradient.New(gradient.Plain(options.Text), gradient.Options{
		Colors:  colors,
		Hues:    options.Hues,
		Rainbow: options.Rainbow,
		Invert:  options.Invert,
		Sample:  options.Sample,
		Style:   base,
	})
	if err != nil {
		return err
	}

	log.Debugf("inline: %d spans for %d characters", len(g.Spans()), g.Len())

	// Step 4: Dispatch the result to the configured output writer.
	if options.Json {
		return writeJson(options.Out, g)
	}

	_, err = fmt.Fprintln(options.Out, render.FromGradient(g).RenderWrapped(options.Wrap))
	return err
}

func resolveColors(options *Options) ([]color.Color, error) {
	if len(options.ColorTokens) > 0 {
		colors := make([]color.Color, 0, len(options.ColorTokens))
		for _, token := range options.ColorTokens {
			c, err := color.Parse(token)
			if err != nil {
				return nil, err
			}
			colors = append(colors, c)
		}
		return colors, nil
	}

	if name, ok := options.Palette.Get(); ok {
		p, err := palette.ByName(name)
		if err != nil {
			return nil, err
		}
		return p.Colors, nil
	}

	// Anchors come from the rotating default palette.
	return nil, nil
}
