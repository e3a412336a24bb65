package player

import "fmt"

// EngineUnavailableError indicates the configured engine binary cannot be located on the PATH.
type EngineUnavailableError struct {
	Binary string
	Err    error
}

func (e *EngineUnavailableError) Error() string {
	return fmt.Sprintf("audio engine %q is not available: %v", e.Binary, e.Err)
}

func (e *EngineUnavailableError) Unwrap() error {
	return e.Err
}

// NoPlaybackError indicates a control command was issued before any playback was started.
type NoPlaybackError struct{}

func (e *NoPlaybackError) Error() string {
	return "no playback in progress"
}
