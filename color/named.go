package color

import (
	"sort"
	"strings"
)

// The 10-hue spectrum palette, ordered from magenta around to red.
// These supply default gradient anchors when the caller gives none.
var (
	Magenta   = named("magenta", 0xff, 0x00, 0xff)
	Violet    = named("violet", 0xaf, 0x00, 0xff)
	Purple    = named("purple", 0x5f, 0x00, 0xff)
	Blue      = named("blue", 0x00, 0x00, 0xff)
	LightBlue = named("lightblue", 0x00, 0x88, 0xff)
	Cyan      = named("cyan", 0x00, 0xff, 0xff)
	Lime      = named("lime", 0x00, 0xff, 0x00)
	Yellow    = named("yellow", 0xff, 0xff, 0x00)
	Orange    = named("orange", 0xff, 0x88, 0x00)
	Red       = named("red", 0xff, 0x00, 0x00)
)

// Additional named colors for base styles and CLI chrome.
var (
	White = named("white", 0xff, 0xff, 0xff)
	Black = named("black", 0x00, 0x00, 0x00)
	Gray  = named("gray", 0x80, 0x80, 0x80)
)

// registry maps lowercase names to their colors.
var registry = make(map[string]Color)

func named(name string, r, g, b uint8) Color {
	c := Color{r: r, g: g, b: b, name: name}
	registry[name] = c
	return c
}

// ByName resolves a color from the named registry, case-insensitively.
func ByName(name string) (Color, error) {
	if c, ok := registry[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return Color{}, &ParseError{Token: name, Suggestion: closestName(name)}
}

// Names returns all registered color names in lexicographic order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Spectrum returns the ordered 10-hue palette used for default gradient anchors.
func Spectrum() []Color {
	return []Color{Magenta, Violet, Purple, Blue, LightBlue, Cyan, Lime, Yellow, Orange, Red}
}
