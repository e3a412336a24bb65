package util

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "track", "tracks"), ShouldEqual, "1 track")
		So(Quantify(2, "track", "tracks"), ShouldEqual, "2 tracks")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/track.mp3"), ShouldEqual, "track")
		So(FileStem("track"), ShouldEqual, "track")
	})
}

func TestFormatTime(t *testing.T) {
	Convey("FormatTime", t, func() {
		So(FormatTime(0), ShouldEqual, "00:00")
		So(FormatTime(7*time.Second), ShouldEqual, "00:07")
		So(FormatTime(3*time.Minute+42*time.Second), ShouldEqual, "03:42")
		So(FormatTime(90*time.Minute), ShouldEqual, "90:00")

		Convey("Sub-second durations round to the nearest second", func() {
			So(FormatTime(1499*time.Millisecond), ShouldEqual, "00:01")
			So(FormatTime(1500*time.Millisecond), ShouldEqual, "00:02")
		})
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}
