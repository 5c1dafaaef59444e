package cmd

import (
	"context"
	"fmt"

	"seedbox-mover/core/config"
	"seedbox-mover/core/database"
	"seedbox-mover/core/logger"
	"seedbox-mover/core/reconcile"
	"seedbox-mover/core/storage"
	"seedbox-mover/feature/prune"
	"seedbox-mover/feature/qbittorrent"
	"seedbox-mover/feature/radarr"
	"seedbox-mover/feature/rtorrent"

	"go.uber.org/zap"
)

// deps bundles what every command builds from configuration.
type deps struct {
	cfg      *config.Config
	logger   *zap.Logger
	torrents reconcile.TorrentSource
	media    reconcile.MediaSource
	closers  []func() error
}

// newDeps loads and validates configuration, then builds the logger and both sources.
func newDeps() (*deps, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	d := &deps{cfg: cfg, logger: l}

	if d.torrents, err = d.torrentSource(); err != nil {
		return nil, err
	}
	if d.media, err = d.mediaSource(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func (d *deps) torrentSource() (reconcile.TorrentSource, error) {
	l := d.logger.With(zap.String("client", d.cfg.Client.Kind))

	switch d.cfg.Client.Kind {
	case config.ClientQBittorrent:
		return qbittorrent.New(d.cfg.QBittorrent, l)
	default:
		return rtorrent.New(d.cfg.Rtorrent, l)
	}
}

func (d *deps) mediaSource() (reconcile.MediaSource, error) {
	l := d.logger.With(zap.String("media", d.cfg.Radarr.Source))

	if d.cfg.Radarr.Source != radarr.SourceDatabase {
		return radarr.NewAPISource(d.cfg.Radarr, l)
	}

	db, err := database.Connect(d.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to radarr database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		d.closers = append(d.closers, sqlDB.Close)
	}
	return radarr.NewDBSource(db, l), nil
}

// archive returns the report archive, or nil when storage is disabled.
func (d *deps) archive(ctx context.Context) (*prune.Archive, error) {
	if !d.cfg.Storage.Enabled {
		return nil, nil
	}

	client, err := storage.NewClient(d.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	if err := storage.EnsureBucket(ctx, client, d.cfg.Storage.Bucket, d.cfg.Storage.Region); err != nil {
		return nil, err
	}
	return &prune.Archive{Client: client, Bucket: d.cfg.Storage.Bucket, Prefix: d.cfg.Storage.Prefix}, nil
}

func (d *deps) service(ctx context.Context) (*prune.Service, error) {
	archive, err := d.archive(ctx)
	if err != nil {
		return nil, err
	}
	return prune.NewService(d.torrents, d.media, d.cfg.Prune, archive, d.logger), nil
}

// Close releases database connections and flushes the logger.
func (d *deps) Close() {
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil {
			d.logger.Warn("Failed to close resource", zap.Error(err))
		}
	}
	_ = d.logger.Sync()
}
