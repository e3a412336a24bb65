package history

import (
	"fmt"
	"time"

	"github.com/tonearm-cli/tonearm/util"
)

// PlayedTrack represents a single playback entry preserved in the user's history.
type PlayedTrack struct {
	Path         string    `json:"path"`
	Name         string    `json:"name"`
	Plays        int       `json:"plays"`
	LastPlayedAt time.Time `json:"last_played_at"`
}

func (p *PlayedTrack) encode() string {
	return p.Path
}

func (p *PlayedTrack) String() string {
	return fmt.Sprintf("%s : %s", p.Name, util.Quantify(p.Plays, "play", "plays"))
}

func newPlayedTrack(path string) *PlayedTrack {
	return &PlayedTrack{
		Path: path,
		Name: util.FileStem(path),
	}
}
