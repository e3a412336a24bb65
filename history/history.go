// Package history provides the implementation for tracking and persisting playback history.
package history

import (
	"time"

	"github.com/metafates/gache"
	"github.com/spf13/viper"
	"github.com/tonearm-cli/tonearm/filesystem"
	"github.com/tonearm-cli/tonearm/key"
	"github.com/tonearm-cli/tonearm/where"
	"golang.org/x/exp/slices"
)

// cacher provides an abstracted, disk-backed registry for playback records.
var cacher = gache.New[map[string]*PlayedTrack](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of historical playback records from the persistent store.
func Get() (map[string]*PlayedTrack, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*PlayedTrack), nil
	}
	return cached, nil
}

// Save persists a playback of the given track to the history registry.
// Repeat plays of the same path increment its play counter instead of duplicating the record.
func Save(path string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newPlayedTrack(path)
	if existing, exists := saved[record.encode()]; exists {
		record = existing
	}

	record.Plays++
	record.LastPlayedAt = time.Now()
	saved[record.encode()] = record

	evict(saved)

	return cacher.Set(saved)
}

// Remove permanently deletes a specific playback record from the history registry.
func Remove(track *PlayedTrack) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, track.encode())
	return cacher.Set(saved)
}

// evict trims the registry down to the configured size limit, discarding the stalest records first.
func evict(saved map[string]*PlayedTrack) {
	limit := viper.GetInt(key.HistorySize)
	if limit <= 0 || len(saved) <= limit {
		return
	}

	records := make([]*PlayedTrack, 0, len(saved))
	for _, record := range saved {
		records = append(records, record)
	}

	slices.SortFunc(records, func(a, b *PlayedTrack) int {
		return a.LastPlayedAt.Compare(b.LastPlayedAt)
	})

	for _, record := range records[:len(records)-limit] {
		delete(saved, record.encode())
	}
}
