// Package tui provides the interactive gradient preview interface.
package tui

import "github.com/charmbracelet/bubbles/key"

// previewKeymap defines the keyboard interactions available in the preview.
type previewKeymap struct {
	quit,
	huesUp, huesDown,
	rainbow, invert, sample,
	reroll key.Binding
}

func newPreviewKeymap() *previewKeymap {
	return &previewKeymap{
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		huesUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "more hues"),
		),
		huesDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "fewer hues"),
		),
		rainbow: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "rainbow"),
		),
		invert: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "invert"),
		),
		sample: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "blocks"),
		),
		reroll: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "re-roll palette"),
		),
	}
}

// bindings returns the keymap in help display order.
func (k *previewKeymap) bindings() []key.Binding {
	return []key.Binding{k.huesUp, k.huesDown, k.rainbow, k.invert, k.sample, k.reroll, k.quit}
}
