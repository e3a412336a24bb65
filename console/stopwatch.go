package console

import "time"

// stopwatch accumulates wall time across pause gaps.
type stopwatch struct {
	accumulated time.Duration
	startedAt   time.Time
	running     bool
}

func newStopwatch() *stopwatch {
	return &stopwatch{startedAt: time.Now(), running: true}
}

func (s *stopwatch) pause() {
	if s.running {
		s.accumulated += time.Since(s.startedAt)
		s.running = false
	}
}

func (s *stopwatch) resume() {
	if !s.running {
		s.startedAt = time.Now()
		s.running = true
	}
}

func (s *stopwatch) elapsed() time.Duration {
	if !s.running {
		return s.accumulated
	}
	return s.accumulated + time.Since(s.startedAt)
}
