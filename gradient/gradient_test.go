package gradient

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/style"
)

// fgOf extracts the resolved foreground of the span covering the given index.
func fgOf(spans []Span, index int) color.Color {
	for _, s := range spans {
		if index >= s.Start && index < s.End {
			fg, _ := s.Style.Fg()
			return fg
		}
	}
	return color.Color{}
}

func TestInterpolate(t *testing.T) {
	Convey("Interpolate", t, func() {
		Convey("t=0 should yield the start color exactly", func() {
			c := Interpolate(color.Red, color.Blue, 0)
			So(c.Equal(color.Red), ShouldBeTrue)
		})

		Convey("Channels should blend independently with floor truncation", func() {
			c := Interpolate(color.Red, color.Lime, 0.5)
			r, g, b := c.RGB()
			So(r, ShouldEqual, 127)
			So(g, ShouldEqual, 127)
			So(b, ShouldEqual, 0)
		})

		Convey("The result should carry its hex token as name", func() {
			c := Interpolate(color.Red, color.Lime, 0.5)
			So(c.Name(), ShouldEqual, "#7F7F00")
		})
	})
}

func TestNew(t *testing.T) {
	red := color.FromRGB(255, 0, 0)
	green := color.FromRGB(0, 255, 0)
	blue := color.FromRGB(0, 0, 255)

	Convey("Given the ten character three color scenario", t, func() {
		g, err := New(Plain("ABCDEFGHIJ"), Options{Colors: []color.Color{red, green, blue}})
		So(err, ShouldBeNil)

		Convey("Hues and segments should line up", func() {
			So(g.Hues(), ShouldEqual, 3)
			So(g.Len(), ShouldEqual, 10)
		})

		Convey("Character 0 should be exactly red", func() {
			So(fgOf(g.Spans(), 0).Equal(red), ShouldBeTrue)
		})

		Convey("Character 5 should be exactly green", func() {
			So(fgOf(g.Spans(), 5).Equal(green), ShouldBeTrue)
		})

		Convey("Compressed spans should tile the text with no gaps", func() {
			spans := g.Spans()
			So(len(spans), ShouldBeBetweenOrEqual, 2, 10)
			So(spans[0].Start, ShouldEqual, 0)
			for i := 1; i < len(spans); i++ {
				So(spans[i].Start, ShouldEqual, spans[i-1].End)
			}
			So(spans[len(spans)-1].End, ShouldEqual, 10)
		})

		Convey("No two adjacent spans should share a style", func() {
			spans := g.Spans()
			for i := 1; i < len(spans); i++ {
				So(spans[i].Style.Equal(spans[i-1].Style), ShouldBeFalse)
			}
		})
	})

	Convey("Endpoint exactness for a long two color gradient", t, func() {
		text := strings.Repeat("x", 300)
		g, err := New(Plain(text), Options{Colors: []color.Color{red, blue}})
		So(err, ShouldBeNil)

		So(fgOf(g.Spans(), 0).Equal(red), ShouldBeTrue)

		last := fgOf(g.Spans(), 299)
		lr, lg, lb := last.RGB()
		br, bg, bb := blue.RGB()
		So(int(br)-int(lr), ShouldBeBetweenOrEqual, 0, 1)
		So(int(bg)-int(lg), ShouldBeBetweenOrEqual, 0, 1)
		So(int(bb)-int(lb), ShouldBeBetweenOrEqual, 0, 1)
	})

	Convey("Validation", t, func() {
		Convey("Empty text should be rejected", func() {
			_, err := New(Plain(""), Options{})
			So(errors.Is(err, ErrEmptyText), ShouldBeTrue)
		})

		Convey("Text that sanitizes to empty should be rejected", func() {
			_, err := New(Plain("\x1b\x00\n"), Options{})
			So(errors.Is(err, ErrEmptyText), ShouldBeTrue)
		})

		Convey("A single color should be rejected", func() {
			_, err := New(Plain("hello"), Options{Colors: []color.Color{red}})
			So(errors.Is(err, ErrInvalidColorCount), ShouldBeTrue)
		})

		Convey("At least as many colors as characters should be rejected", func() {
			_, err := New(Plain("AB"), Options{Colors: []color.Color{red, blue}})
			So(errors.Is(err, ErrInvalidColorCount), ShouldBeTrue)
		})

		Convey("Hues below two should be rejected for auto palettes", func() {
			_, err := New(Plain("hello"), Options{Hues: 1})
			So(errors.Is(err, ErrInvalidHueCount), ShouldBeTrue)
		})
	})

	Convey("Auto-generated anchors", t, func() {
		Convey("Default hue count should apply", func() {
			g, err := New(Plain("a longer piece of text"), Options{})
			So(err, ShouldBeNil)
			So(g.Hues(), ShouldEqual, DefaultHues)
		})

		Convey("Requested hue count should apply", func() {
			g, err := New(Plain("a longer piece of text"), Options{Hues: 4})
			So(err, ShouldBeNil)
			So(g.Hues(), ShouldEqual, 4)
		})

		Convey("Rainbow should span the full spectrum", func() {
			g, err := New(Plain(strings.Repeat("spectrum ", 4)), Options{Rainbow: true})
			So(err, ShouldBeNil)
			So(g.Hues(), ShouldEqual, RainbowHues)
		})
	})

	Convey("Options", t, func() {
		Convey("Sample should replace glyphs with blocks", func() {
			g, err := New(Plain("hello"), Options{Colors: []color.Color{red, blue}, Sample: true})
			So(err, ShouldBeNil)
			So(g.Text(), ShouldEqual, strings.Repeat("█", 5))
			So(g.Len(), ShouldEqual, 5)
		})

		Convey("Base style should be composed under every span", func() {
			base := style.Null().Bold(true)
			g, err := New(Plain("hello"), Options{Colors: []color.Color{red, blue}, Style: base})
			So(err, ShouldBeNil)
			for _, s := range g.Spans() {
				So(s.Style.Equal(s.Style.Combine(base)), ShouldBeTrue)
			}
		})

		Convey("Parallel synthesis should match the sequential result", func() {
			text := strings.Repeat("parallel ", 20)
			colors := []color.Color{red, green, blue, color.Yellow, color.Cyan}
			sequential, err := New(Plain(text), Options{Colors: colors})
			So(err, ShouldBeNil)
			parallel, err := New(Plain(text), Options{Colors: colors, Workers: 4})
			So(err, ShouldBeNil)
			So(parallel.Spans(), ShouldResemble, sequential.Spans())
		})

		Convey("Styled input should contribute its plain text", func() {
			g, err := New(Styled{Text: "styled"}, Options{Colors: []color.Color{red, blue}})
			So(err, ShouldBeNil)
			So(g.Text(), ShouldEqual, "styled")
		})
	})
}

func TestNewSubstring(t *testing.T) {
	red := color.FromRGB(255, 0, 0)
	blue := color.FromRGB(0, 0, 255)

	Convey("NewSubstring", t, func() {
		Convey("Should offset spans by the start index", func() {
			s, err := NewSubstring("world", 5, red, blue, style.Null())
			So(err, ShouldBeNil)
			spans := s.Spans()
			So(spans[0].Start, ShouldEqual, 5)
			So(spans[len(spans)-1].End, ShouldEqual, 10)
			So(s.StartIndex(), ShouldEqual, 5)
		})

		Convey("Its first character should be exactly the start color", func() {
			s, err := NewSubstring("world", 0, red, blue, style.Null())
			So(err, ShouldBeNil)
			So(fgOf(s.Spans(), 0).Equal(red), ShouldBeTrue)
		})

		Convey("A single character resolves to the start color, never the end color", func() {
			// Segment length 1 means the only blend parameter is t=0.
			s, err := NewSubstring("A", 0, red, blue, style.Null())
			So(err, ShouldBeNil)
			So(fgOf(s.Spans(), 0).Equal(red), ShouldBeTrue)
			So(fgOf(s.Spans(), 0).Equal(blue), ShouldBeFalse)
		})

		Convey("Should reject empty text", func() {
			_, err := NewSubstring("", 0, red, blue, style.Null())
			So(errors.Is(err, ErrEmptyText), ShouldBeTrue)
		})

		Convey("Should reject a negative start index", func() {
			_, err := NewSubstring("text", -1, red, blue, style.Null())
			So(err, ShouldNotBeNil)
		})
	})
}
