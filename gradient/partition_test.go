package gradient

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPartition(t *testing.T) {
	Convey("Partition", t, func() {
		Convey("Should split evenly when possible", func() {
			ranges, err := Partition(10, 2)
			So(err, ShouldBeNil)
			So(ranges, ShouldHaveLength, 2)
			So(ranges[0], ShouldResemble, Range{Start: 0, End: 5})
			So(ranges[1], ShouldResemble, Range{Start: 5, End: 10})
		})

		Convey("Should put larger segments first when uneven", func() {
			ranges, err := Partition(10, 3)
			So(err, ShouldBeNil)
			So(ranges[0].Len(), ShouldEqual, 4)
			So(ranges[1].Len(), ShouldEqual, 3)
			So(ranges[2].Len(), ShouldEqual, 3)
		})

		Convey("Should tile the whole index range contiguously", func() {
			ranges, err := Partition(23, 7)
			So(err, ShouldBeNil)
			So(ranges[0].Start, ShouldEqual, 0)
			for i := 1; i < len(ranges); i++ {
				So(ranges[i].Start, ShouldEqual, ranges[i-1].End)
			}
			So(ranges[len(ranges)-1].End, ShouldEqual, 23)
		})

		Convey("Should give every segment at least one index", func() {
			ranges, err := Partition(7, 7)
			So(err, ShouldBeNil)
			for _, r := range ranges {
				So(r.Len(), ShouldEqual, 1)
			}
		})

		Convey("Should reject zero segments", func() {
			_, err := Partition(10, 0)
			So(errors.Is(err, ErrInvalidPartition), ShouldBeTrue)
		})

		Convey("Should reject more segments than indices", func() {
			_, err := Partition(3, 4)
			So(errors.Is(err, ErrInvalidPartition), ShouldBeTrue)
		})
	})
}
