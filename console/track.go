package console

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/tonearm-cli/tonearm/color"
	"github.com/tonearm-cli/tonearm/history"
	"github.com/tonearm-cli/tonearm/icon"
	"github.com/tonearm-cli/tonearm/key"
	"github.com/tonearm-cli/tonearm/log"
	"github.com/tonearm-cli/tonearm/style"
	"github.com/tonearm-cli/tonearm/util"
)

// Control keys accepted while a track plays.
const (
	keyToggleSpace = ' '
	keyToggle      = 's'
	keyNext        = 'n'
	keyQuit        = 'q'
	keyInterrupt   = 0x03 // ctrl-c arrives as a byte in raw mode
)

// playCurrent plays the track at the current queue position and services the
// control keys until the engine terminates. It reports whether the queue
// should advance to the next track.
func (c *console) playCurrent() (bool, error) {
	path := c.tracks[c.index]
	name := util.FileStem(path)

	if viper.GetBool(key.HistorySaveOnPlay) {
		if err := history.Save(path); err != nil {
			log.Warnf("save history: %v", err)
		}
	}

	if err := c.player.Play(path); err != nil {
		return false, err
	}

	watch := newStopwatch()

	var tick <-chan time.Time
	if c.interactive {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		tick = ticker.C

		c.drawStatus(name, watch)
	} else {
		c.println(fmt.Sprintf("%s %s", icon.Get(icon.Note), name))
	}

	for {
		select {
		case <-c.player.Wait():
			return true, c.finish(name, watch)

		case b := <-c.keys:
			switch b {
			case keyToggleSpace, keyToggle:
				c.togglePause(watch)
				c.drawStatus(name, watch)

			case keyNext:
				_ = c.player.Quit()
				return true, c.finish(name, watch)

			case keyQuit, keyInterrupt:
				_ = c.player.Quit()
				return false, c.finish(name, watch)
			}

		case <-tick:
			if !c.player.Paused() {
				c.drawStatus(name, watch)
			}
		}
	}
}

// togglePause flips the engine's pause state and the elapsed stopwatch together.
func (c *console) togglePause(watch *stopwatch) {
	if c.player.Paused() {
		if err := c.player.Resume(); err != nil {
			log.Warnf("resume: %v", err)
			return
		}
		watch.resume()
		return
	}

	if err := c.player.Pause(); err != nil {
		log.Warnf("pause: %v", err)
		return
	}
	watch.pause()
}

// finish settles an ended session: it clears the status line and reports an
// engine failure as a warning instead of aborting the queue.
func (c *console) finish(name string, watch *stopwatch) error {
	c.clearStatus()

	code := 0
	if exit := c.player.ExitCode(); exit.IsPresent() {
		code = exit.MustGet()
	}

	if code != 0 {
		log.Errorf("engine exited with code %d for %s", code, name)
		c.println(fmt.Sprintf(
			"%s %s %s",
			style.Fg(color.Red)(icon.Get(icon.Fail)),
			name,
			style.Faint(fmt.Sprintf("(engine exited with code %d)", code)),
		))
		return nil
	}

	c.println(fmt.Sprintf(
		"%s %s %s",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		name,
		style.Faint(util.FormatTime(watch.elapsed())),
	))
	return nil
}

// drawStatus renders the transient now-playing line in place.
func (c *console) drawStatus(name string, watch *stopwatch) {
	if !c.interactive {
		return
	}

	stateIcon := icon.Get(icon.Play)
	if c.player.Paused() {
		stateIcon = icon.Get(icon.Pause)
	}

	position := ""
	if len(c.tracks) > 1 {
		position = style.Faint(fmt.Sprintf("[%d/%d] ", c.index+1, len(c.tracks)))
	}

	timer := ""
	if viper.GetBool(key.CliShowElapsed) {
		timer = " " + style.Fg(color.Cyan)(util.FormatTime(watch.elapsed()))
	}

	line := fmt.Sprintf("%s %s%s%s", stateIcon, position, style.Bold(name), timer)
	if c.width > 1 {
		line = style.New().MaxWidth(c.width - 1).Render(line)
	}

	fmt.Printf("\r\x1b[K%s", line)
}

// clearStatus wipes the transient now-playing line.
func (c *console) clearStatus() {
	if c.interactive {
		fmt.Print("\r\x1b[K")
	}
}
