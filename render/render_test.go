package render

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/gradient"
	"github.com/spectra-cli/spectra/style"
)

func TestText(t *testing.T) {
	red := color.FromRGB(255, 0, 0)
	blue := color.FromRGB(0, 0, 255)

	Convey("Given a gradient-backed container", t, func() {
		g, err := gradient.New(gradient.Plain("hello world"), gradient.Options{
			Colors: []color.Color{red, blue},
		})
		So(err, ShouldBeNil)
		text := FromGradient(g)

		Convey("Plain text should round-trip", func() {
			So(text.Plain(), ShouldEqual, "hello world")
		})

		Convey("Rendered output should contain every character in order", func() {
			rendered := text.Render()
			for _, r := range "hello world" {
				So(rendered, ShouldContainSubstring, string(r))
			}
		})

		Convey("Styled should expose the spans for re-layering", func() {
			styled := text.Styled()
			So(styled.Text, ShouldEqual, "hello world")
			So(styled.Spans, ShouldResemble, g.Spans())
		})
	})

	Convey("Uncovered regions pass through unstyled", t, func() {
		spans := []gradient.Span{{Start: 2, End: 4, Style: style.Null().Bold(true)}}
		text := New("abcdef", spans)
		rendered := text.Render()
		So(rendered, ShouldContainSubstring, "ab")
		So(rendered, ShouldContainSubstring, "ef")
	})

	Convey("RenderWrapped", t, func() {
		text := New(strings.Repeat("word ", 10), nil)

		Convey("Should wrap at the requested column", func() {
			wrapped := text.RenderWrapped(20)
			for _, line := range strings.Split(wrapped, "\n") {
				So(len(line), ShouldBeLessThanOrEqualTo, 20)
			}
		})

		Convey("Should pass through for non-positive widths", func() {
			So(text.RenderWrapped(0), ShouldEqual, text.Render())
		})
	})
}
