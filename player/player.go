// Package player drives an external audio engine as a child process commanded
// over its standard input.
//
// One Player owns at most one live engine process at a time. The engine plays
// a single file per process and is steered with single-byte commands written
// to a pipe: toggle pause, quit. Decoding and audio output stay inside the
// engine; the Player only manages the process lifecycle.
package player

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/samber/mo"
	"github.com/tonearm-cli/tonearm/log"
)

// Player manages playback sessions of a single audio engine.
//
// All methods are safe for concurrent use. Pause, Resume and Quit address the
// session most recently started with Play.
type Player struct {
	engine Engine

	mu       sync.Mutex
	session  *session
	lastExit mo.Option[int]
	paused   bool
}

// New creates a Player for the given engine (does not start playback).
func New(engine Engine) *Player {
	return &Player{engine: engine}
}

// Play spawns a new engine process playing the given file.
//
// The path is handed to the engine untouched; an unreadable or undecodable
// file surfaces as a nonzero exit code, not as an error here. If a session is
// already active it is gracefully quit first. Play returns as soon as the
// process is running.
func (p *Player) Play(path string) error {
	if err := p.engine.Available(); err != nil {
		return err
	}

	// Starting over an active session replaces it. Competing Play calls may
	// interleave here, so stop until no live session remains.
	for {
		p.stop()

		p.mu.Lock()
		if p.session == nil || !p.session.active() {
			break
		}
		p.mu.Unlock()
	}
	defer p.mu.Unlock()

	cmd := exec.Command(p.engine.Binary, p.engine.args(path)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("engine control pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return &EngineUnavailableError{Binary: p.engine.Binary, Err: err}
	}

	// The engine settles its terminal handling only once the control pipe has
	// seen a write; an empty one suffices.
	_, _ = stdin.Write([]byte{})

	s := &session{cmd: cmd, stdin: stdin, done: make(chan struct{})}
	p.session = s
	p.lastExit = mo.None[int]()
	p.paused = false

	go p.monitor(s)

	log.Debugf("engine %s playing %s", p.engine.Binary, path)
	return nil
}

// monitor reaps the engine process and publishes its exit code.
// The code is recorded and the session marked done in one critical section, so
// an observer can never find the session ended with the code still missing.
func (p *Player) monitor(s *session) {
	err := s.cmd.Wait()

	code := 0
	if err != nil {
		code = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
	}

	p.mu.Lock()
	p.lastExit = mo.Some(code)
	p.paused = false
	close(s.done)
	p.mu.Unlock()

	log.Debugf("engine exited with code %d", code)
}

// Pause suspends the active session. Pausing an already paused session is a
// no-op, so the toggle command is never sent twice. Without an active session
// Pause fails with NoPlaybackError.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil || !p.session.active() {
		return &NoPlaybackError{}
	}

	if p.paused {
		return nil
	}

	if err := p.session.send(p.engine.ToggleCommand); err != nil {
		return err
	}

	p.paused = true
	return nil
}

// Resume continues a paused session. Resuming a session that is not paused is
// a no-op. Without an active session Resume fails with NoPlaybackError.
func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil || !p.session.active() {
		return &NoPlaybackError{}
	}

	if !p.paused {
		return nil
	}

	if err := p.session.send(p.engine.ToggleCommand); err != nil {
		return err
	}

	p.paused = false
	return nil
}

// Quit commands the engine to terminate and blocks until the process has been
// reaped. Quitting a session that already ended on its own is a no-op; the
// exit code stays observable through ExitCode.
func (p *Player) Quit() error {
	p.mu.Lock()
	s := p.session
	p.mu.Unlock()

	if s == nil {
		return &NoPlaybackError{}
	}

	p.shutdown(s)
	return nil
}

// stop gracefully ends any current session. Unlike Quit it treats the absence
// of a session as success.
func (p *Player) stop() {
	p.mu.Lock()
	s := p.session
	p.mu.Unlock()

	if s == nil {
		return
	}

	p.shutdown(s)
}

// shutdown asks the session's engine to quit and joins its monitor. The quit
// write error is discarded: a torn pipe means the engine is already going down.
func (p *Player) shutdown(s *session) {
	if s.active() {
		_ = s.send(p.engine.QuitCommand)
	}
	<-s.done
}

// IsPlaying reports whether an engine process is currently alive. It keeps
// reporting true while the session is paused.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session != nil && p.session.active()
}

// Paused reports whether the active session is suspended.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session != nil && p.session.active() && p.paused
}

// ExitCode returns the exit code of the most recently ended session. It is
// empty before the first session terminates and while a session is running.
func (p *Player) ExitCode() mo.Option[int] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastExit
}

// Wait returns a channel that is closed once the current session terminates.
// With no session started the returned channel is already closed.
func (p *Player) Wait() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		done := make(chan struct{})
		close(done)
		return done
	}

	return p.session.done
}
