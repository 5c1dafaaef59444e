package reconcile

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// TorrentRecord is a snapshot row from the download client.
type TorrentRecord struct {
	// Handle is the identifier the download client uses for removal (info hash).
	Handle string `json:"handle"`

	// Name is the identifying release name used as the join key.
	Name string `json:"name"`

	// Ratio is the upload/download ratio.
	Ratio float64 `json:"ratio"`

	// Label is the client-side category (e.g. "radarr").
	Label string `json:"label"`

	// Added is when the torrent was added to the client.
	Added time.Time `json:"added"`

	// Finished is when the download completed. Nil while still downloading.
	Finished *time.Time `json:"finished,omitempty"`

	// Trackers lists announce URLs.
	Trackers []string `json:"trackers,omitempty"`

	// Location is the content path on the seedbox.
	Location string `json:"location"`
}

// IsFinished reports whether the torrent has a completion timestamp.
func (t TorrentRecord) IsFinished() bool {
	return t.Finished != nil
}

// AgeDays returns the number of whole days elapsed since completion.
// The second value is false for unfinished torrents.
func (t TorrentRecord) AgeDays(now time.Time) (int, bool) {
	if t.Finished == nil {
		return 0, false
	}
	return int(now.Sub(*t.Finished) / (24 * time.Hour)), true
}

func (t TorrentRecord) String() string {
	finished := "<unfinished>"
	if t.Finished != nil {
		finished = t.Finished.Format(time.RFC3339)
	}
	return fmt.Sprintf("Torrent(name=%s, label=%s, finished=%s)", t.Name, t.Label, finished)
}

// MediaRecord is a snapshot row from the media manager.
type MediaRecord struct {
	// Name is the original release (scene) name, same key domain as TorrentRecord.Name.
	Name string `json:"name"`

	// Title is the movie title as shown by the media manager.
	Title string `json:"title,omitempty"`

	// Filename is the file path relative to BasePath.
	Filename string `json:"filename"`

	// BasePath is the movie folder.
	BasePath string `json:"base_path"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// Added is when the media manager imported the file.
	Added time.Time `json:"added"`
}

// FullPath joins the base path and filename.
func (m MediaRecord) FullPath() string {
	if m.BasePath == "" {
		return m.Filename
	}
	return path.Join(strings.TrimRight(m.BasePath, "/"), m.Filename)
}

// MediaIndex maps identifying names to media records.
type MediaIndex map[string]MediaRecord

// Names returns the index keys as a set.
func (idx MediaIndex) Names() map[string]struct{} {
	set := make(map[string]struct{}, len(idx))
	for name := range idx {
		set[name] = struct{}{}
	}
	return set
}

// Candidate is a media file that can be deleted, optionally backed by an aged-out torrent.
type Candidate struct {
	// Media is the on-disk file.
	Media MediaRecord `json:"media"`

	// Torrent is nil when the torrent no longer exists in the download client.
	Torrent *TorrentRecord `json:"torrent,omitempty"`
}

// HasTorrent reports whether the candidate is backed by a torrent in the client.
func (c Candidate) HasTorrent() bool {
	return c.Torrent != nil
}

func (c Candidate) String() string {
	return fmt.Sprintf("Movie(%s)", c.Media.Name)
}

// Mode selects the join strategy used by the Reconciler.
type Mode string

const (
	// ModeTorrent emits media backed by torrents that satisfy the retention predicate.
	ModeTorrent Mode = "torrent"
	// ModeMedia emits media whose torrent was already removed from the client.
	ModeMedia Mode = "media"
	// ModeCombined concatenates torrent-driven and media-driven results.
	ModeCombined Mode = "combined"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeTorrent:
		return ModeTorrent, nil
	case ModeMedia:
		return ModeMedia, nil
	case ModeCombined, "":
		return ModeCombined, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want torrent, media or combined)", s)
	}
}

// Phase is the state of a single run.
type Phase string

const (
	PhaseFetching    Phase = "fetching"
	PhaseReconciling Phase = "reconciling"
	PhaseReporting   Phase = "reporting"
	PhaseDeleting    Phase = "deleting"
	PhaseDone        Phase = "done"
)

// RemovalFailure records a removal the download client rejected.
type RemovalFailure struct {
	Candidate Candidate `json:"candidate"`
	Err       error     `json:"-"`
	Message   string    `json:"error"`
}

// ApplyResult is the outcome of one Executor.Apply call.
type ApplyResult struct {
	// DryRun mirrors the flag Apply was called with.
	DryRun bool `json:"dry_run"`

	// Removed lists locations that were (or, in dry-run, would have been) removed, in input order.
	Removed []string `json:"removed"`

	// Failed lists candidates whose removal was rejected.
	Failed []RemovalFailure `json:"failed"`

	// Unhandled lists media-only candidates. Deleting their files is left to the caller.
	Unhandled []Candidate `json:"unhandled"`

	// Calls is the number of removal calls issued against the download client.
	Calls int `json:"calls"`
}

// Summary aggregates a run for reporting.
type Summary struct {
	Candidates     int   `json:"candidates"`
	TorrentBacked  int   `json:"torrent_backed"`
	MediaOnly      int   `json:"media_only"`
	ReclaimedBytes int64 `json:"reclaimed_bytes"`
}

// Summarize computes aggregate counts for a candidate list.
func Summarize(candidates []Candidate) Summary {
	s := Summary{Candidates: len(candidates)}
	for _, c := range candidates {
		if c.HasTorrent() {
			s.TorrentBacked++
		} else {
			s.MediaOnly++
		}
		s.ReclaimedBytes += c.Media.Size
	}
	return s
}
