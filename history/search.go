package history

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Search returns historical records fuzzily matching the partial input,
// most played first, recency breaking ties. An empty query matches everything.
func Search(q string) ([]*PlayedTrack, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	q = strings.TrimSpace(strings.ToLower(q))

	var records []*PlayedTrack
	for _, record := range saved {
		if q == "" || fuzzy.Match(q, strings.ToLower(record.Name)) || fuzzy.Match(q, strings.ToLower(record.Path)) {
			records = append(records, record)
		}
	}

	slices.SortFunc(records, func(a, b *PlayedTrack) int {
		if a.Plays != b.Plays {
			return b.Plays - a.Plays // Descending play count
		}
		return b.LastPlayedAt.Compare(a.LastPlayedAt)
	})

	return records, nil
}

// Suggest returns the single most relevant historical record for a partial input.
func Suggest(q string) mo.Option[*PlayedTrack] {
	records, err := Search(q)
	if err != nil || len(records) == 0 {
		return mo.None[*PlayedTrack]()
	}
	return mo.Some(records[0])
}

// Last returns the most recently played record, regardless of play count.
func Last() mo.Option[*PlayedTrack] {
	saved, err := Get()
	if err != nil || len(saved) == 0 {
		return mo.None[*PlayedTrack]()
	}

	return mo.Some(lo.MaxBy(lo.Values(saved), func(a, b *PlayedTrack) bool {
		return a.LastPlayedAt.After(b.LastPlayedAt)
	}))
}
