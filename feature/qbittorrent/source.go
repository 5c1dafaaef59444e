package qbittorrent

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"seedbox-mover/core/reconcile"
	"seedbox-mover/core/utils"

	qbt "github.com/autobrr/go-qbittorrent"
	"go.uber.org/zap"
)

// API is the subset of *qbt.Client used by Source.
type API interface {
	LoginCtx(ctx context.Context) error
	GetTorrentsCtx(ctx context.Context, o qbt.TorrentFilterOptions) ([]qbt.Torrent, error)
	DeleteTorrentsCtx(ctx context.Context, hashes []string, deleteFiles bool) error
}

// videoExtensions are stripped from single-file torrent names.
var videoExtensions = map[string]struct{}{
	".mkv": {}, ".mp4": {}, ".avi": {}, ".m4v": {}, ".ts": {}, ".wmv": {}, ".mov": {},
}

// Source reads and removes torrents through the qBittorrent Web API.
type Source struct {
	api         API
	deleteFiles bool
	logger      *zap.Logger

	mu       sync.Mutex
	loggedIn bool
}

// New creates a source for the Web UI at cfg.URL. No request is made until first use.
func New(cfg Config, logger *zap.Logger) (*Source, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("qbittorrent url is required")
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	client := qbt.NewClient(qbt.Config{
		Host:     cfg.URL,
		Username: cfg.Username,
		Password: cfg.Password,
		Timeout:  timeout,
	})
	return NewWithAPI(client, cfg.DeleteFiles, logger), nil
}

// NewWithAPI wraps an existing API client.
func NewWithAPI(api API, deleteFiles bool, logger *zap.Logger) *Source {
	return &Source{api: api, deleteFiles: deleteFiles, logger: logger}
}

// Name implements reconcile.TorrentSource.
func (s *Source) Name() string {
	return "qbittorrent"
}

// ListAll implements reconcile.TorrentSource.
func (s *Source) ListAll(ctx context.Context) ([]reconcile.TorrentRecord, error) {
	if err := s.login(ctx); err != nil {
		return nil, err
	}

	raw, err := s.api.GetTorrentsCtx(ctx, qbt.TorrentFilterOptions{Filter: qbt.TorrentFilterAll})
	if err != nil {
		return nil, fmt.Errorf("failed to list torrents: %w", err)
	}

	torrents := make([]reconcile.TorrentRecord, 0, len(raw))
	for _, t := range raw {
		torrents = append(torrents, toRecord(t))
	}

	s.logger.Debug("Listed torrents", zap.Int("count", len(torrents)))
	return torrents, nil
}

// Remove implements reconcile.TorrentSource.
func (s *Source) Remove(ctx context.Context, handle string) error {
	if err := s.login(ctx); err != nil {
		return err
	}
	if err := s.api.DeleteTorrentsCtx(ctx, []string{handle}, s.deleteFiles); err != nil {
		return fmt.Errorf("failed to delete torrent: %w", err)
	}
	s.logger.Info("Deleted torrent", zap.String("hash", handle), zap.Bool("delete_files", s.deleteFiles))
	return nil
}

func (s *Source) login(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loggedIn {
		return nil
	}
	if err := s.api.LoginCtx(ctx); err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}
	s.loggedIn = true
	return nil
}

func toRecord(t qbt.Torrent) reconcile.TorrentRecord {
	location := t.ContentPath
	if location == "" {
		location = path.Join(t.SavePath, t.Name)
	}

	var trackers []string
	if t.Tracker != "" {
		trackers = []string{t.Tracker}
	}

	var added time.Time
	if ts := utils.ToUnixTime(t.AddedOn); ts != nil {
		added = *ts
	}

	return reconcile.TorrentRecord{
		Handle:   t.Hash,
		Name:     releaseName(t.Name),
		Ratio:    t.Ratio,
		Label:    t.Category,
		Added:    added,
		Finished: utils.ToUnixTime(t.CompletionOn),
		Trackers: trackers,
		Location: location,
	}
}

// releaseName strips a video extension so single-file torrents join on the release name.
func releaseName(name string) string {
	ext := path.Ext(name)
	if _, ok := videoExtensions[strings.ToLower(ext)]; ok {
		return strings.TrimSuffix(name, ext)
	}
	return name
}
