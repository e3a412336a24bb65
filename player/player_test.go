package player

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tonearm-cli/tonearm/constant"
)

// recordingPipe stands in for an engine control pipe and records every byte.
type recordingPipe struct {
	mu    sync.Mutex
	bytes []byte
}

func (w *recordingPipe) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bytes = append(w.bytes, p...)
	return len(p), nil
}

func (w *recordingPipe) Close() error { return nil }

func (w *recordingPipe) recorded() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return string(w.bytes)
}

// fakeSession wires a Player to a recorded control pipe without spawning anything.
func fakeSession() (*Player, *recordingPipe) {
	pipe := &recordingPipe{}
	p := New(Mpg123())
	p.session = &session{stdin: pipe, done: make(chan struct{})}
	return p, pipe
}

func settled(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
		return false
	}
}

func TestIdleState(t *testing.T) {
	Convey("Given a player that never started playback", t, func() {
		p := New(Mpg123())

		Convey("It reports no activity", func() {
			So(p.IsPlaying(), ShouldBeFalse)
			So(p.Paused(), ShouldBeFalse)
			So(p.ExitCode().IsAbsent(), ShouldBeTrue)
		})

		Convey("Wait does not block", func() {
			So(settled(p.Wait()), ShouldBeTrue)
		})

		Convey("Pause and Resume report the missing playback", func() {
			var noPlayback *NoPlaybackError
			So(errors.As(p.Pause(), &noPlayback), ShouldBeTrue)
			So(errors.As(p.Resume(), &noPlayback), ShouldBeTrue)
		})

		Convey("Quit reports the missing playback", func() {
			err := p.Quit()
			var noPlayback *NoPlaybackError
			So(errors.As(err, &noPlayback), ShouldBeTrue)
		})
	})
}

func TestControlSurface(t *testing.T) {
	Convey("Given an active session", t, func() {
		p, pipe := fakeSession()

		Convey("Pause sends the toggle exactly once", func() {
			So(p.Pause(), ShouldBeNil)
			So(p.Pause(), ShouldBeNil)

			So(pipe.recorded(), ShouldEqual, "s")
			So(p.Paused(), ShouldBeTrue)
			So(p.IsPlaying(), ShouldBeTrue)
		})

		Convey("Resume mirrors the pause with a second toggle", func() {
			So(p.Pause(), ShouldBeNil)
			So(p.Resume(), ShouldBeNil)
			So(p.Resume(), ShouldBeNil)

			So(pipe.recorded(), ShouldEqual, "ss")
			So(p.Paused(), ShouldBeFalse)
		})

		Convey("Resume without a pause is inert", func() {
			So(p.Resume(), ShouldBeNil)
			So(pipe.recorded(), ShouldBeEmpty)
		})

		Convey("Controls fail once the session ended", func() {
			close(p.session.done)

			var noPlayback *NoPlaybackError
			So(errors.As(p.Pause(), &noPlayback), ShouldBeTrue)
			So(errors.As(p.Resume(), &noPlayback), ShouldBeTrue)
			So(pipe.recorded(), ShouldBeEmpty)
			So(p.IsPlaying(), ShouldBeFalse)
			So(p.Paused(), ShouldBeFalse)
		})

		Convey("Quit on an ended session returns without resending", func() {
			close(p.session.done)

			So(p.Quit(), ShouldBeNil)
			So(pipe.recorded(), ShouldBeEmpty)
		})
	})
}

func TestEngineUnavailable(t *testing.T) {
	Convey("Given an engine binary that does not exist", t, func() {
		engine := Mpg123()
		engine.Binary = "tonearm-test-no-such-engine"

		Convey("Available reports the typed error", func() {
			err := engine.Available()
			var unavailable *EngineUnavailableError
			So(errors.As(err, &unavailable), ShouldBeTrue)
			So(unavailable.Binary, ShouldEqual, engine.Binary)
		})

		Convey("Play refuses to spawn", func() {
			p := New(engine)
			err := p.Play("whatever.mp3")

			var unavailable *EngineUnavailableError
			So(errors.As(err, &unavailable), ShouldBeTrue)
			So(p.IsPlaying(), ShouldBeFalse)
		})
	})
}

// countingStub pretends to be an mpg123-style remote: it counts toggle bytes
// and reports the count as its exit code once told to quit.
const countingStub = `#!/bin/sh
toggles=0
while true; do
	c=$(head -c1)
	case "$c" in
	s) toggles=$((toggles + 1)) ;;
	q | "") exit "$toggles" ;;
	esac
done
`

const vanishingStub = `#!/bin/sh
exit 7
`

func stubEngine(t *testing.T, script string) Engine {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fakeengine")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	engine := Mpg123()
	engine.Binary = path
	return engine
}

func TestPlaybackLifecycle(t *testing.T) {
	if runtime.GOOS == constant.Windows {
		t.Skip("stub engine requires a POSIX shell")
	}

	Convey("Given a playback against a live engine process", t, func() {
		Convey("The full pause and resume cycle reaches the engine once per transition", func() {
			p := New(stubEngine(t, countingStub))
			So(p.Play("track.mp3"), ShouldBeNil)
			So(p.IsPlaying(), ShouldBeTrue)
			So(p.ExitCode().IsAbsent(), ShouldBeTrue)

			So(p.Pause(), ShouldBeNil)
			So(p.Pause(), ShouldBeNil)
			So(p.Resume(), ShouldBeNil)
			So(p.Resume(), ShouldBeNil)
			So(p.Pause(), ShouldBeNil)

			So(p.Quit(), ShouldBeNil)

			So(p.IsPlaying(), ShouldBeFalse)
			So(p.Paused(), ShouldBeFalse)

			// Three state transitions happened, so the engine saw three toggles.
			So(p.ExitCode().IsPresent(), ShouldBeTrue)
			So(p.ExitCode().MustGet(), ShouldEqual, 3)
		})

		Convey("A session ending on its own settles the state", func() {
			p := New(stubEngine(t, vanishingStub))
			So(p.Play("track.mp3"), ShouldBeNil)

			<-p.Wait()

			So(p.IsPlaying(), ShouldBeFalse)
			So(p.ExitCode().IsPresent(), ShouldBeTrue)
			So(p.ExitCode().MustGet(), ShouldEqual, 7)

			Convey("And a later quit is a harmless no-op", func() {
				So(p.Quit(), ShouldBeNil)
				So(p.ExitCode().MustGet(), ShouldEqual, 7)
			})
		})

		Convey("Starting a new playback replaces the active session", func() {
			p := New(stubEngine(t, countingStub))
			So(p.Play("first.mp3"), ShouldBeNil)
			So(p.Pause(), ShouldBeNil)

			So(p.Play("second.mp3"), ShouldBeNil)

			So(p.IsPlaying(), ShouldBeTrue)
			So(p.Paused(), ShouldBeFalse)
			So(p.ExitCode().IsAbsent(), ShouldBeTrue)

			So(p.Quit(), ShouldBeNil)

			// The replacement session saw no toggles; the first saw exactly one.
			So(p.ExitCode().MustGet(), ShouldEqual, 0)
		})

		Convey("Quit blocks until the engine is gone", func() {
			p := New(stubEngine(t, countingStub))
			So(p.Play("track.mp3"), ShouldBeNil)

			So(p.Quit(), ShouldBeNil)
			So(settled(p.Wait()), ShouldBeTrue)
		})
	})
}
