// Package style implements the composable visual attribute set attached to gradient spans.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spectra-cli/spectra/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Render returns a stateless rendering function that applies the specified foreground color to a string.
func Render(c color.Color) func(string) string {
	return func(s string) string { return New().Foreground(c.Lipgloss()).Render(s) }
}

// Standard Text Transformation Helpers - these functions apply common typographic styles like bold or italics.
var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Tag returns a rendering function that encapsulates a string in a colored, padded tag block.
func Tag(fg, bg color.Color) func(string) string {
	return func(s string) string {
		return New().Foreground(fg.Lipgloss()).Background(bg.Lipgloss()).Padding(0, 1).Render(s)
	}
}
