package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestExpand(t *testing.T) {
	Convey("Expand", t, func() {
		Convey("Should resolve a leading tilde against the home directory", func() {
			home, err := os.UserHomeDir()
			So(err, ShouldBeNil)
			So(Expand("~/music/track.mp3"), ShouldEqual, filepath.Join(home, "music", "track.mp3"))
		})

		Convey("Should leave absolute paths untouched", func() {
			abs := filepath.Join(string(filepath.Separator), "tmp", "track.mp3")
			So(Expand(abs), ShouldEqual, abs)
		})

		Convey("Should absolutize relative paths", func() {
			wd, err := os.Getwd()
			So(err, ShouldBeNil)
			So(Expand("track.mp3"), ShouldEqual, filepath.Join(wd, "track.mp3"))
		})
	})
}
