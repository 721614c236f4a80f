// Package color implements the RGB color value used by gradient computation,
// along with parsing from hex strings, rgb() tuples, and the named spectrum palette.
package color

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an immutable 8-bit RGB triple with the original input token retained for display.
// Two colors are equal iff their channels match; the retained name has no bearing on equality.
type Color struct {
	r, g, b uint8
	name    string
}

// FromRGB constructs a Color from explicit channel values. The display name is the hex token.
func FromRGB(r, g, b uint8) Color {
	c := Color{r: r, g: g, b: b}
	c.name = c.Hex()
	return c
}

// FromHex constructs a Color from a "#RRGGBB" or "#RGB" token.
func FromHex(token string) (Color, error) {
	parsed, err := colorful.Hex(strings.ToLower(token))
	if err != nil {
		return Color{}, &ParseError{Token: token}
	}
	r, g, b := parsed.RGB255()
	return Color{r: r, g: g, b: b, name: token}, nil
}

// Parse resolves an arbitrary color token: a palette name, a hex string,
// or an "rgb(r,g,b)" tuple. Unresolvable tokens yield a *ParseError
// carrying a closest-name suggestion.
func Parse(token string) (Color, error) {
	trimmed := strings.TrimSpace(token)

	if strings.HasPrefix(trimmed, "#") {
		return FromHex(trimmed)
	}

	if strings.HasPrefix(strings.ToLower(trimmed), "rgb(") {
		var r, g, b int
		if _, err := fmt.Sscanf(strings.ToLower(trimmed), "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return Color{}, &ParseError{Token: token}
		}
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			return Color{}, &ParseError{Token: token}
		}
		c := FromRGB(uint8(r), uint8(g), uint8(b))
		c.name = trimmed
		return c, nil
	}

	return ByName(trimmed)
}

// RGB returns the color's channel values.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Hex returns the color formatted as an uppercase "#RRGGBB" token.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// Name returns the display name: the original input token, or the hex token when constructed from channels.
func (c Color) Name() string {
	return c.name
}

// Equal reports channel-wise equality, ignoring display names.
func (c Color) Equal(other Color) bool {
	return c.r == other.r && c.g == other.g && c.b == other.b
}

// Lipgloss adapts the color for lipgloss-based terminal rendering.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

func (c Color) String() string {
	if c.name != "" && c.name != c.Hex() {
		return fmt.Sprintf("%s (%s)", c.name, c.Hex())
	}
	return c.Hex()
}
