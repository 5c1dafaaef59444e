package reconcile

import "time"

// DefaultThresholdDays is the age after which a finished torrent may be pruned.
const DefaultThresholdDays = 30

// DefaultCategory is the label torrents must carry to be considered.
const DefaultCategory = "radarr"

// Retention decides whether a finished torrent is old enough to be pruned.
type Retention struct {
	// Days is the age threshold in whole days.
	Days int

	// Category restricts matches to torrents with this label. Empty disables the filter.
	Category string

	// Invert matches torrents younger than Days instead of older.
	Invert bool
}

// Match reports whether the torrent is a deletion candidate at now.
// Unfinished torrents never match. The boundary (age == Days) never matches
// in either direction.
func (r Retention) Match(t TorrentRecord, now time.Time) bool {
	age, finished := t.AgeDays(now)
	if !finished {
		return false
	}
	if r.Category != "" && t.Label != r.Category {
		return false
	}
	if r.Invert {
		return age < r.Days
	}
	return age > r.Days
}
