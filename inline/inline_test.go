package inline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spectra-cli/spectra/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		Convey("Should render explicit colors to the writer", func() {
			var out strings.Builder
			err := Run(&Options{
				Text:        "hello world",
				ColorTokens: []string{"red", "#0000ff"},
				Out:         &out,
			})
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "hello")
		})

		Convey("Should reject unknown color tokens", func() {
			err := Run(&Options{
				Text:        "hello",
				ColorTokens: []string{"blurple", "red"},
				Out:         &strings.Builder{},
			})
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject unknown palettes", func() {
			err := Run(&Options{
				Text:    "hello",
				Palette: mo.Some("nonexistent"),
				Out:     &strings.Builder{},
			})
			So(err, ShouldNotBeNil)
		})

		Convey("Should resolve named palettes", func() {
			var out strings.Builder
			err := Run(&Options{
				Text:    "a longer piece of text",
				Palette: mo.Some("ocean"),
				Out:     &out,
			})
			So(err, ShouldBeNil)
			So(out.String(), ShouldNotBeEmpty)
		})

		Convey("Should reject invalid base styles", func() {
			err := Run(&Options{
				Text:        "hello",
				ColorTokens: []string{"red", "blue"},
				Style:       mo.Some("bold nonsense"),
				Out:         &strings.Builder{},
			})
			So(err, ShouldNotBeNil)
		})

		Convey("Json mode should emit the structured document", func() {
			var out strings.Builder
			err := Run(&Options{
				Text:        "hello world",
				ColorTokens: []string{"red", "blue"},
				Style:       mo.Some("bold"),
				Json:        true,
				Out:         &out,
			})
			So(err, ShouldBeNil)

			var document Output
			So(json.Unmarshal([]byte(out.String()), &document), ShouldBeNil)
			So(document.Text, ShouldEqual, "hello world")
			So(document.Hues, ShouldEqual, 2)
			So(document.Colors, ShouldResemble, []string{"#FF0000", "#0000FF"})
			So(len(document.Spans), ShouldBeGreaterThanOrEqualTo, 2)
			So(document.Spans[0].Start, ShouldEqual, 0)
			So(document.Spans[len(document.Spans)-1].End, ShouldEqual, 11)
		})
	})
}
