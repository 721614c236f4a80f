// Package tui provides the interactive gradient preview interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spectra-cli/spectra/style"
)

// Options encapsulates the runtime configuration for the preview interface.
type Options struct {
	Text    string
	Hues    int
	Rainbow bool
	Invert  bool
	Style   style.Style
}

// Run initializes and executes the preview Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
