package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tonearm-cli/tonearm/key"
)

func TestEngine(t *testing.T) {
	Convey("Engine", t, func() {
		Convey("Mpg123 describes the stock remote protocol", func() {
			e := Mpg123()
			So(e.Binary, ShouldEqual, "mpg123")
			So(e.RemoteArgs, ShouldResemble, []string{"-C"})
			So(e.QuietArgs, ShouldResemble, []string{"-q"})
			So(e.ToggleCommand, ShouldEqual, 's')
			So(e.QuitCommand, ShouldEqual, 'q')
		})

		Convey("args puts the file last, after every flag group", func() {
			e := Mpg123()
			e.ExtraArgs = []string{"--gapless"}

			So(e.args("/music/track.mp3"), ShouldResemble, []string{"-C", "-q", "--gapless", "/music/track.mp3"})
		})

		Convey("FromConfig overrides the binary and extra arguments only", func() {
			viper.Set(key.PlayerEngine, "mpg321")
			viper.Set(key.PlayerEngineArgs, []string{"-o", "alsa"})
			defer viper.Set(key.PlayerEngine, "")
			defer viper.Set(key.PlayerEngineArgs, []string{})

			e := FromConfig()
			So(e.Binary, ShouldEqual, "mpg321")
			So(e.ExtraArgs, ShouldResemble, []string{"-o", "alsa"})
			So(e.RemoteArgs, ShouldResemble, []string{"-C"})
			So(e.ToggleCommand, ShouldEqual, 's')
		})
	})
}
