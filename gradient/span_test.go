package gradient

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spectra-cli/spectra/color"
	"github.com/spectra-cli/spectra/style"
)

func unitSpans(styles ...style.Style) []Span {
	spans := make([]Span, len(styles))
	for i, s := range styles {
		spans[i] = Span{Start: i, End: i + 1, Style: s}
	}
	return spans
}

func TestCompress(t *testing.T) {
	red := style.Null().Foreground(color.Red)
	blue := style.Null().Foreground(color.Blue)

	Convey("Compress", t, func() {
		Convey("Should merge runs of identical styles", func() {
			spans := Compress(unitSpans(red, red, red, blue, blue))
			So(spans, ShouldHaveLength, 2)
			So(spans[0], ShouldResemble, Span{Start: 0, End: 3, Style: red})
			So(spans[1], ShouldResemble, Span{Start: 3, End: 5, Style: blue})
		})

		Convey("Should leave distinct neighbors untouched", func() {
			input := unitSpans(red, blue, red)
			So(Compress(input), ShouldResemble, input)
		})

		Convey("No two adjacent output spans should share a style", func() {
			spans := Compress(unitSpans(red, red, blue, blue, red, red))
			for i := 1; i < len(spans); i++ {
				So(spans[i].Style.Equal(spans[i-1].Style), ShouldBeFalse)
			}
		})

		Convey("Output should still tile the full range", func() {
			spans := Compress(unitSpans(red, red, blue, red, red, red, blue))
			So(spans[0].Start, ShouldEqual, 0)
			for i := 1; i < len(spans); i++ {
				So(spans[i].Start, ShouldEqual, spans[i-1].End)
			}
			So(spans[len(spans)-1].End, ShouldEqual, 7)
		})

		Convey("Should be idempotent", func() {
			once := Compress(unitSpans(red, red, blue, blue, blue, red))
			So(Compress(once), ShouldResemble, once)
		})

		Convey("Should pass a single span through unchanged", func() {
			single := unitSpans(red)
			So(Compress(single), ShouldResemble, single)
		})

		Convey("Full equality drives merging, not just color", func() {
			boldRed := red.Bold(true)
			spans := Compress(unitSpans(red, boldRed))
			So(spans, ShouldHaveLength, 2)
		})
	})
}
