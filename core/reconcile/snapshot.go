package reconcile

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Snapshot holds both inventories fetched for a single reconciliation pass.
type Snapshot struct {
	// Torrents is every torrent in the download client.
	Torrents []TorrentRecord

	// Media is the media manager inventory indexed by identifying name.
	Media MediaIndex

	// Taken is when the snapshot was built.
	Taken time.Time
}

// TorrentNames returns the set of identifying names of all torrents.
func (s *Snapshot) TorrentNames() map[string]struct{} {
	names := make(map[string]struct{}, len(s.Torrents))
	for _, t := range s.Torrents {
		names[t.Name] = struct{}{}
	}
	return names
}

// LoadSnapshot queries both sources and returns a fresh snapshot.
// The queries share nothing, so they run concurrently; the first failure
// cancels the other and is returned wrapped in ErrSourceUnavailable.
func LoadSnapshot(ctx context.Context, torrents TorrentSource, media MediaSource, now time.Time) (*Snapshot, error) {
	var (
		torrentList []TorrentRecord
		mediaIndex  MediaIndex
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := torrents.ListAll(gctx)
		if err != nil {
			return sourceUnavailable(torrents.Name(), err)
		}
		torrentList = list
		return nil
	})

	g.Go(func() error {
		index, err := media.ListAll(gctx)
		if err != nil {
			return sourceUnavailable(media.Name(), err)
		}
		mediaIndex = index
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if mediaIndex == nil {
		mediaIndex = MediaIndex{}
	}

	return &Snapshot{
		Torrents: torrentList,
		Media:    mediaIndex,
		Taken:    now,
	}, nil
}
