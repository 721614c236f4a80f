// Package palette manages named collections of gradient anchor colors:
// the built-in sets and user-defined Lua palettes.
package palette

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/filesystem"
	"github.com/spectra-cli/spectra/palette/custom"
	"github.com/spectra-cli/spectra/where"
)

// Palette is a named, ordered list of anchor colors.
type Palette struct {
	Name   string
	Colors []color.Color
}

// Builtins returns the palettes shipped with the application.
func Builtins() []Palette {
	return []Palette{
		{Name: "spectrum", Colors: color.Spectrum()},
		{Name: "sunset", Colors: hexes("#5f00ff", "#ff00ff", "#ff8800", "#ffff00")},
		{Name: "ocean", Colors: hexes("#0000ff", "#0088ff", "#00ffff")},
		{Name: "ember", Colors: hexes("#ff0000", "#ff8800", "#ffff00")},
	}
}

// Customs loads every user-defined Lua palette from the palettes directory.
// A script that fails to load is skipped and reported in the error slice.
func Customs() (palettes []Palette, errs []error) {
	entries, err := filesystem.API().ReadDir(where.Palettes())
	if err != nil {
		return nil, []error{fmt.Errorf("read palettes directory: %w", err)}
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lua") {
			continue
		}
		path := filepath.Join(where.Palettes(), entry.Name())
		name, colors, err := custom.Load(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		palettes = append(palettes, Palette{Name: name, Colors: colors})
	}
	return palettes, errs
}

// ByName resolves a palette by name, preferring builtins over customs.
func ByName(name string) (Palette, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, p := range Builtins() {
		if p.Name == name {
			return p, nil
		}
	}

	customs, _ := Customs()
	for _, p := range customs {
		if strings.ToLower(p.Name) == name {
			return p, nil
		}
	}

	return Palette{}, fmt.Errorf("unknown palette %q", name)
}

func hexes(tokens ...string) []color.Color {
	return lo.Map(tokens, func(token string, _ int) color.Color {
		return lo.Must(color.FromHex(token))
	})
}
