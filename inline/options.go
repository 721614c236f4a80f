package inline

import (
	"io"

	"github.com/samber/mo"
)

// Options encapsulates a single non-interactive gradient request.
type Options struct {
	// Text is the input to colorize.
	Text string

	// ColorTokens are explicit anchor colors (names, hex strings, rgb() tuples).
	ColorTokens []string

	// Palette selects a named palette when no explicit colors are given.
	Palette mo.Option[string]

	// Hues is the anchor count for auto-generated palettes; zero uses the default.
	Hues int

	Rainbow bool
	Invert  bool
	Sample  bool

	// Style is the base style string composed under every span.
	Style mo.Option[string]

	// Wrap is the output column; zero or negative disables wrapping here.
	Wrap int

	// Json switches the output from ANSI rendering to a structured document.
	Json bool

	// Out receives the output; defaults to stdout.
	Out io.Writer
}
