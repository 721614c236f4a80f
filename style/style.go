// Package style implements the composable visual attribute set attached to gradient spans,
// plus a functional API for lipgloss-based CLI rendering.
package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spectra-cli/spectra/color"
)

// Style is an immutable set of visual attributes: an optional foreground color
// and typographic flags. The zero value is the null style.
type Style struct {
	fg     color.Color
	hasFg  bool
	bold   bool
	italic bool
	under  bool
	faint  bool
	strike bool
}

// Null returns the empty style.
func Null() Style {
	return Style{}
}

// Parse builds a Style from a whitespace-separated attribute string,
// e.g. "bold italic #ff00ff" or "underline magenta". The token "none"
// yields the null style. Unknown tokens are treated as color tokens.
func Parse(s string) (Style, error) {
	parsed := Style{}
	for _, token := range strings.Fields(strings.ToLower(s)) {
		switch token {
		case "none":
			return Null(), nil
		case "bold":
			parsed.bold = true
		case "italic":
			parsed.italic = true
		case "underline":
			parsed.under = true
		case "faint", "dim":
			parsed.faint = true
		case "strike", "strikethrough":
			parsed.strike = true
		default:
			c, err := color.Parse(token)
			if err != nil {
				return Style{}, fmt.Errorf("parse style %q: %w", s, err)
			}
			parsed.fg = c
			parsed.hasFg = true
		}
	}
	return parsed, nil
}

// Attribute setters return a derived style, leaving the receiver untouched.

func (s Style) Foreground(c color.Color) Style {
	s.fg = c
	s.hasFg = true
	return s
}

func (s Style) Bold(v bool) Style      { s.bold = v; return s }
func (s Style) Italic(v bool) Style    { s.italic = v; return s }
func (s Style) Underline(v bool) Style { s.under = v; return s }
func (s Style) Faint(v bool) Style     { s.faint = v; return s }
func (s Style) Strike(v bool) Style    { s.strike = v; return s }

// Fg returns the foreground color and whether one is set.
func (s Style) Fg() (color.Color, bool) {
	return s.fg, s.hasFg
}

// Combine layers other on top of the receiver: flags accumulate and
// other's foreground, when set, wins. Composition is associative.
func (s Style) Combine(other Style) Style {
	combined := s
	if other.hasFg {
		combined.fg = other.fg
		combined.hasFg = true
	}
	combined.bold = s.bold || other.bold
	combined.italic = s.italic || other.italic
	combined.under = s.under || other.under
	combined.faint = s.faint || other.faint
	combined.strike = s.strike || other.strike
	return combined
}

// Equal reports full attribute equality. Foreground colors compare by channels.
func (s Style) Equal(other Style) bool {
	if s.hasFg != other.hasFg {
		return false
	}
	if s.hasFg && !s.fg.Equal(other.fg) {
		return false
	}
	return s.bold == other.bold &&
		s.italic == other.italic &&
		s.under == other.under &&
		s.faint == other.faint &&
		s.strike == other.strike
}

// IsNull reports whether no attribute is set.
func (s Style) IsNull() bool {
	return s.Equal(Style{})
}

// Lipgloss adapts the style for terminal rendering.
func (s Style) Lipgloss() lipgloss.Style {
	gloss := lipgloss.NewStyle().
		Bold(s.bold).
		Italic(s.italic).
		Underline(s.under).
		Faint(s.faint).
		Strikethrough(s.strike)
	if s.hasFg {
		gloss = gloss.Foreground(s.fg.Lipgloss())
	}
	return gloss
}

// Render applies the style to a string, producing ANSI output.
func (s Style) Render(text string) string {
	return s.Lipgloss().Render(text)
}

func (s Style) String() string {
	if s.IsNull() {
		return "none"
	}
	var parts []string
	if s.bold {
		parts = append(parts, "bold")
	}
	if s.italic {
		parts = append(parts, "italic")
	}
	if s.under {
		parts = append(parts, "underline")
	}
	if s.faint {
		parts = append(parts, "faint")
	}
	if s.strike {
		parts = append(parts, "strike")
	}
	if s.hasFg {
		parts = append(parts, s.fg.Hex())
	}
	return strings.Join(parts, " ")
}
