package player

import (
	"fmt"
	"io"
	"os/exec"
)

// session is one spawned engine process together with its control pipe.
//
// The control pipe is the only channel into the engine: commands are single
// bytes, there is no acknowledgement, and nothing is ever read back.
type session struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	done  chan struct{} // closed by the monitor after the exit code is recorded
}

// send writes a single command byte to the engine's control pipe.
func (s *session) send(command byte) error {
	if _, err := s.stdin.Write([]byte{command}); err != nil {
		return fmt.Errorf("send %q to engine: %w", command, err)
	}
	return nil
}

// active reports whether the session's process has not been reaped yet.
func (s *session) active() bool {
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}
