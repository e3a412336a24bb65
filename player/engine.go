package player

import (
	"os/exec"

	"github.com/spf13/viper"
	"github.com/tonearm-cli/tonearm/key"
)

// Engine describes the invocation and stdin command protocol of an external audio engine.
//
// The engine is expected to read single-byte commands from its standard input
// for the whole lifetime of the playback process, the way mpg123 does in its
// remote control mode.
type Engine struct {
	// Binary is the executable name resolved against the PATH.
	Binary string

	// RemoteArgs enable the engine's stdin command reading.
	RemoteArgs []string

	// QuietArgs suppress the engine's console chatter.
	QuietArgs []string

	// ExtraArgs are user-supplied additions appended after the built-in flags.
	ExtraArgs []string

	// ToggleCommand flips the engine between playing and paused.
	ToggleCommand byte

	// QuitCommand makes the engine stop playback and terminate.
	QuitCommand byte
}

// Mpg123 returns the stock engine description: mpg123 reading single-byte
// commands from its control pipe (-C) with console output suppressed (-q).
func Mpg123() Engine {
	return Engine{
		Binary:        "mpg123",
		RemoteArgs:    []string{"-C"},
		QuietArgs:     []string{"-q"},
		ToggleCommand: 's',
		QuitCommand:   'q',
	}
}

// FromConfig returns the stock engine adjusted by the user's configuration.
// The command protocol is fixed; only the binary and extra arguments are configurable.
func FromConfig() Engine {
	e := Mpg123()
	if binary := viper.GetString(key.PlayerEngine); binary != "" {
		e.Binary = binary
	}
	e.ExtraArgs = viper.GetStringSlice(key.PlayerEngineArgs)
	return e
}

// Available reports whether the engine binary can be located on the PATH.
func (e Engine) Available() error {
	if _, err := exec.LookPath(e.Binary); err != nil {
		return &EngineUnavailableError{Binary: e.Binary, Err: err}
	}
	return nil
}

// args assembles the full argument vector for playing the given file.
// The path goes last so it can never be mistaken for a flag group.
func (e Engine) args(path string) []string {
	args := make([]string, 0, len(e.RemoteArgs)+len(e.QuietArgs)+len(e.ExtraArgs)+1)
	args = append(args, e.RemoteArgs...)
	args = append(args, e.QuietArgs...)
	args = append(args, e.ExtraArgs...)
	return append(args, path)
}
