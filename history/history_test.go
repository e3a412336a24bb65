package history

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tonearm-cli/tonearm/filesystem"
	"github.com/tonearm-cli/tonearm/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a played track", t, func() {
		path := "/music/albums/pelican - city of echoes.mp3"

		Convey("When saving the playback", func() {
			before, err := Get()
			So(err, ShouldBeNil)

			priorPlays := 0
			if existing, ok := before[path]; ok {
				priorPlays = existing.Plays
			}

			So(Save(path), ShouldBeNil)

			Convey("Then the track is recorded", func() {
				tracks, err := Get()
				So(err, ShouldBeNil)
				So(tracks[path], ShouldNotBeNil)
				So(tracks[path].Name, ShouldEqual, "pelican - city of echoes")
				So(tracks[path].Plays, ShouldEqual, priorPlays+1)
				So(tracks[path].LastPlayedAt.IsZero(), ShouldBeFalse)
			})

			Convey("And replaying increments the play counter", func() {
				So(Save(path), ShouldBeNil)
				tracks, err := Get()
				So(err, ShouldBeNil)
				So(tracks[path].Plays, ShouldEqual, priorPlays+2)
			})
		})

		Convey("When removing the record", func() {
			So(Save(path), ShouldBeNil)
			tracks, err := Get()
			So(err, ShouldBeNil)

			So(Remove(tracks[path]), ShouldBeNil)

			tracks, err = Get()
			So(err, ShouldBeNil)
			So(tracks[path], ShouldBeNil)
		})
	})
}

func TestEviction(t *testing.T) {
	Convey("Given a bounded history", t, func() {
		viper.Set(key.HistorySize, 2)
		defer viper.Set(key.HistorySize, 0)

		for _, path := range []string{"/music/a.mp3", "/music/b.mp3", "/music/c.mp3"} {
			So(Save(path), ShouldBeNil)
			time.Sleep(time.Millisecond)
		}

		Convey("The stalest record is evicted", func() {
			tracks, err := Get()
			So(err, ShouldBeNil)
			So(len(tracks), ShouldEqual, 2)
			So(tracks["/music/a.mp3"], ShouldBeNil)
			So(tracks["/music/b.mp3"], ShouldNotBeNil)
			So(tracks["/music/c.mp3"], ShouldNotBeNil)
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given saved playbacks", t, func() {
		So(Save("/music/russian circles - deficit.mp3"), ShouldBeNil)
		So(Save("/music/russian circles - deficit.mp3"), ShouldBeNil)
		So(Save("/music/mono - ashes in the snow.mp3"), ShouldBeNil)

		Convey("Search ranks by play count", func() {
			records, err := Search("")
			So(err, ShouldBeNil)
			So(len(records), ShouldBeGreaterThanOrEqualTo, 2)
			So(records[0].Name, ShouldEqual, "russian circles - deficit")
		})

		Convey("Search matches fuzzily on the name", func() {
			records, err := Search("ashes")
			So(err, ShouldBeNil)
			So(len(records), ShouldEqual, 1)
			So(records[0].Name, ShouldEqual, "mono - ashes in the snow")
		})

		Convey("Suggest returns the top match", func() {
			suggestion := Suggest("russian")
			So(suggestion.IsPresent(), ShouldBeTrue)
			So(suggestion.MustGet().Name, ShouldEqual, "russian circles - deficit")
		})

		Convey("Suggest is empty for an unmatched query", func() {
			So(Suggest("zzzzzz").IsAbsent(), ShouldBeTrue)
		})

		Convey("Last returns the most recent playback, not the most played", func() {
			last := Last()
			So(last.IsPresent(), ShouldBeTrue)
			So(last.MustGet().Name, ShouldEqual, "mono - ashes in the snow")
		})
	})
}
