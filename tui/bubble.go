// Package tui provides the interactive gradient preview interface.
package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/gradient"
	"github.com/spectra-cli/spectra/render"
	"github.com/spectra-cli/spectra/style"
	"github.com/spectra-cli/spectra/util"
)

// previewBubble holds the live preview state: the editable text, the current
// palette rotation, and the gradient parameters being adjusted.
type previewBubble struct {
	inputC textinput.Model
	helpC  help.Model
	keymap *previewKeymap

	hues    int
	rainbow bool
	invert  bool
	sample  bool
	start   int // palette rotation index
	base    style.Style

	width int
}

func newBubble(options *Options) *previewBubble {
	input := textinput.New()
	input.Placeholder = "Type something to colorize..."
	input.SetValue(options.Text)
	input.Focus()

	hues := options.Hues
	if hues < 2 {
		hues = gradient.DefaultHues
	}

	width, _, err := util.TerminalSize()
	if err != nil {
		width = 80
	}

	return &previewBubble{
		inputC:  input,
		helpC:   help.New(),
		keymap:  newPreviewKeymap(),
		hues:    hues,
		rainbow: options.Rainbow,
		invert:  options.Invert,
		start:   rand.Intn(len(color.Spectrum())),
		base:    options.Style,
		width:   width,
	}
}

func (b *previewBubble) Init() tea.Cmd {
	return textinput.Blink
}

func (b *previewBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.huesUp):
			if b.hues < gradient.RainbowHues {
				b.hues++
			}
			return b, nil
		case key.Matches(msg, b.keymap.huesDown):
			if b.hues > 2 {
				b.hues--
			}
			return b, nil
		case key.Matches(msg, b.keymap.rainbow):
			b.rainbow = !b.rainbow
			return b, nil
		case key.Matches(msg, b.keymap.invert):
			b.invert = !b.invert
			return b, nil
		case key.Matches(msg, b.keymap.sample):
			b.sample = !b.sample
			return b, nil
		case key.Matches(msg, b.keymap.reroll):
			b.start = rand.Intn(len(color.Spectrum()))
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

// colors returns the current anchor list from the rotation state.
func (b *previewBubble) colors() []color.Color {
	hues := b.hues
	if b.rainbow {
		hues = gradient.RainbowHues
	}
	return color.ListFrom(b.start, b.invert)[:hues]
}

func (b *previewBubble) View() string {
	var view strings.Builder

	title := style.Tag(color.White, color.Purple)("spectra preview")
	view.WriteString(title + "\n\n")
	view.WriteString(b.inputC.View() + "\n\n")

	anchors := b.colors()
	view.WriteString(b.preview(anchors) + "\n\n")
	view.WriteString(b.status(anchors) + "\n")
	view.WriteString(b.helpC.ShortHelpView(b.keymap.bindings()))

	return view.String()
}

// preview renders the gradient inside a bordered box, or the reason it
// cannot be computed yet.
func (b *previewBubble) preview(anchors []color.Color) string {
	boxWidth := util.Max(b.width-4, 20)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(boxWidth)

	g, err := gradient.New(gradient.Plain(b.inputC.Value()), gradient.Options{
		Colors: anchors,
		Sample: b.sample,
		Style:  b.base,
	})
	if err != nil {
		return box.Render(style.Faint(err.Error()))
	}

	return box.Render(render.FromGradient(g).RenderWrapped(boxWidth - 2))
}

// status shows the active hue count and a swatch per anchor color.
func (b *previewBubble) status(anchors []color.Color) string {
	var swatches strings.Builder
	for _, c := range anchors {
		swatches.WriteString(style.Render(c)("▇"))
	}

	return fmt.Sprintf("%s %s  %s",
		style.Faint(util.Quantify(len(anchors), "hue", "hues")),
		swatches.String(),
		style.Faint(fmt.Sprintf("invert=%t sample=%t", b.invert, b.sample)),
	)
}
