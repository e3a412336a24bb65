package console

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tonearm-cli/tonearm/filesystem"
	"github.com/tonearm-cli/tonearm/key"
	"github.com/tonearm-cli/tonearm/player"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		Convey("Should refuse an empty queue", func() {
			err := Run(&Options{})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "nothing to play")
		})

		Convey("Should refuse when continue finds no history", func() {
			err := Run(&Options{Continue: true})
			So(err, ShouldNotBeNil)
		})

		Convey("Should surface a missing engine before touching the queue", func() {
			viper.Set(key.PlayerEngine, "tonearm-test-no-such-engine")
			defer viper.Set(key.PlayerEngine, "")

			err := Run(&Options{Tracks: []string{"track.mp3"}})

			var unavailable *player.EngineUnavailableError
			So(errors.As(err, &unavailable), ShouldBeTrue)
		})
	})
}

func TestStopwatch(t *testing.T) {
	Convey("Stopwatch", t, func() {
		watch := newStopwatch()

		Convey("Should advance while running", func() {
			time.Sleep(10 * time.Millisecond)
			So(watch.elapsed(), ShouldBeGreaterThan, 0)
		})

		Convey("Should freeze while paused", func() {
			watch.pause()
			frozen := watch.elapsed()
			time.Sleep(10 * time.Millisecond)
			So(watch.elapsed(), ShouldEqual, frozen)

			Convey("And advance again after resuming", func() {
				watch.resume()
				time.Sleep(10 * time.Millisecond)
				So(watch.elapsed(), ShouldBeGreaterThan, frozen)
			})
		})
	})
}
