package reconcile

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Reconciler joins the torrent and media inventories and selects deletion candidates.
type Reconciler struct {
	torrents TorrentSource
	media    MediaSource

	// Category and Invert are applied to every FindDeletable call.
	Category string
	Invert   bool

	// Now returns the reference instant for age computation.
	Now func() time.Time
}

// NewReconciler creates a reconciler over the given sources with the default category filter.
func NewReconciler(torrents TorrentSource, media MediaSource) *Reconciler {
	return &Reconciler{
		torrents: torrents,
		media:    media,
		Category: DefaultCategory,
		Now:      time.Now,
	}
}

// FindDeletable fetches a fresh snapshot and returns the candidates selected by mode.
// A source failure returns an error wrapping ErrSourceUnavailable and no candidates.
// Zero candidates is a valid outcome and returns an empty, non-nil slice.
func (r *Reconciler) FindDeletable(ctx context.Context, thresholdDays int, mode Mode) ([]Candidate, error) {
	now := r.now()

	snap, err := LoadSnapshot(ctx, r.torrents, r.media, now)
	if err != nil {
		return nil, err
	}

	retention := Retention{
		Days:     thresholdDays,
		Category: r.Category,
		Invert:   r.Invert,
	}

	return Select(snap, retention, mode, now)
}

// Select applies the join strategy for mode to an already loaded snapshot.
func Select(snap *Snapshot, retention Retention, mode Mode, now time.Time) ([]Candidate, error) {
	switch mode {
	case ModeTorrent:
		return TorrentDriven(snap, retention, now), nil
	case ModeMedia:
		return MediaDriven(snap), nil
	case ModeCombined:
		// Not deduplicated. Torrent-driven names always exist in the torrent
		// inventory and media-driven names never do.
		combined := TorrentDriven(snap, retention, now)
		return append(combined, MediaDriven(snap)...), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

// TorrentDriven returns media backed by torrents that satisfy the retention predicate.
// The predicate is evaluated once per torrent; torrents without a media entry are dropped.
func TorrentDriven(snap *Snapshot, retention Retention, now time.Time) []Candidate {
	candidates := make([]Candidate, 0)

	for i := range snap.Torrents {
		torrent := snap.Torrents[i]
		if !retention.Match(torrent, now) {
			continue
		}
		media, ok := snap.Media[torrent.Name]
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{Media: media, Torrent: &torrent})
	}

	sortCandidates(candidates)
	return candidates
}

// MediaDriven returns media whose identifying name is absent from the torrent inventory.
func MediaDriven(snap *Snapshot) []Candidate {
	torrentNames := snap.TorrentNames()
	candidates := make([]Candidate, 0)

	for name, media := range snap.Media {
		if _, exists := torrentNames[name]; exists {
			continue
		}
		candidates = append(candidates, Candidate{Media: media})
	}

	sortCandidates(candidates)
	return candidates
}

// sortCandidates orders candidates by name for deterministic output.
func sortCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Media.Name < candidates[j].Media.Name
	})
}

func (r *Reconciler) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
