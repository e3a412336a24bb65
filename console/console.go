// Package console implements the line-oriented playback interface driving the audio engine.
package console

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/tonearm-cli/tonearm/history"
	"github.com/tonearm-cli/tonearm/key"
	"github.com/tonearm-cli/tonearm/player"
	"github.com/tonearm-cli/tonearm/util"
	"golang.org/x/term"
)

// Options configures a playback run.
type Options struct {
	// Tracks is the ordered queue of file paths to hand to the engine.
	Tracks []string

	// Continue prepends the most recently played history entry to the queue.
	Continue bool
}

type console struct {
	player *player.Player
	tracks []string
	index  int
	width  int

	// interactive is set when stdin is a terminal switched to raw mode.
	interactive bool
	keys        <-chan byte
}

// Run plays the queue described by options, one engine process per track.
func Run(options *Options) error {
	tracks := options.Tracks

	if options.Continue {
		if last := history.Last(); last.IsPresent() {
			tracks = append([]string{last.MustGet().Path}, tracks...)
		}
	}

	if len(tracks) == 0 {
		return errors.New("nothing to play")
	}

	engine := player.FromConfig()
	if err := engine.Available(); err != nil {
		return err
	}

	c := &console{
		player: player.New(engine),
		tracks: tracks,
		width:  80,
	}

	if w, _, err := util.TerminalSize(); err == nil {
		c.width = w
	}

	if viper.GetBool(key.CliClearScreen) {
		util.ClearScreen()
	}

	keys, restore := rawKeys()
	defer restore()
	c.keys = keys
	c.interactive = keys != nil

	for c.index = 0; c.index < len(c.tracks); c.index++ {
		next, err := c.playCurrent()
		if err != nil {
			return err
		}
		if !next {
			break
		}
	}

	return nil
}

// rawKeys switches stdin to raw mode and streams single key bytes.
// A nil channel is returned when stdin is not a terminal; it never delivers.
func rawKeys() (<-chan byte, func()) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, func() {}
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, func() {}
	}

	keys := make(chan byte)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n > 0 {
				keys <- buf[0]
			}
		}
	}()

	return keys, func() { _ = term.Restore(fd, oldState) }
}

// println writes a full line, carriage-return terminated while the terminal is raw.
func (c *console) println(s string) {
	if c.interactive {
		fmt.Print(s + "\r\n")
	} else {
		fmt.Println(s)
	}
}
