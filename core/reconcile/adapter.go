package reconcile

import "context"

// TorrentSource is the download-client side of a reconciliation.
// Implementations live under feature/ (rtorrent, qbittorrent).
type TorrentSource interface {
	// Name returns a short identifier used in logs (e.g. "rtorrent").
	Name() string

	// ListAll returns every torrent known to the client, finished or not.
	// Transport and decoding failures should be returned as errors; the
	// reconciler tags them with ErrSourceUnavailable.
	ListAll(ctx context.Context) ([]TorrentRecord, error)

	// Remove erases the torrent identified by handle from the client.
	// Removing an already removed torrent should be treated as success.
	Remove(ctx context.Context, handle string) error
}

// MediaSource is the media-manager side of a reconciliation.
type MediaSource interface {
	// Name returns a short identifier used in logs (e.g. "radarr").
	Name() string

	// ListAll returns all downloaded media indexed by identifying name.
	// Implementations must skip records that have no identifying name.
	ListAll(ctx context.Context) (MediaIndex, error)
}
