package health

import (
	"context"
	"time"

	"seedbox-mover/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SchemaChecker reports missing columns of a database-backed source.
type SchemaChecker interface {
	CheckSchema() ([]string, error)
}

// SourceStatus is the probe result for one source.
type SourceStatus struct {
	Name    string        `json:"name"`
	Records int           `json:"records"`
	Latency time.Duration `json:"latency_ns"`
	Error   string        `json:"error,omitempty"`
}

// SchemaStatus is the result of a schema check.
type SchemaStatus struct {
	Missing []string `json:"missing"`
	Error   string   `json:"error,omitempty"`
}

// Report is the outcome of Check.
type Report struct {
	Healthy bool           `json:"healthy"`
	Sources []SourceStatus `json:"sources"`
	Schema  *SchemaStatus  `json:"schema,omitempty"`
}

// Service probes the configured sources.
type Service struct {
	torrents reconcile.TorrentSource
	media    reconcile.MediaSource
	logger   *zap.Logger
}

// NewService creates a new health service.
func NewService(torrents reconcile.TorrentSource, media reconcile.MediaSource, logger *zap.Logger) *Service {
	return &Service{torrents: torrents, media: media, logger: logger}
}

// Check lists both sources concurrently and, when the media source reads a
// database, verifies its schema. Failures are reported, never returned.
func (s *Service) Check(ctx context.Context) *Report {
	sources := make([]SourceStatus, 2)
	var g errgroup.Group

	g.Go(func() error {
		start := time.Now()
		list, err := s.torrents.ListAll(ctx)
		sources[0] = status(s.torrents.Name(), len(list), start, err)
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		index, err := s.media.ListAll(ctx)
		sources[1] = status(s.media.Name(), len(index), start, err)
		return nil
	})
	_ = g.Wait()

	report := &Report{Healthy: true, Sources: sources}
	for _, src := range sources {
		if src.Error != "" {
			report.Healthy = false
			s.logger.Warn("Source probe failed", zap.String("source", src.Name), zap.String("error", src.Error))
		}
	}

	if checker, ok := s.media.(SchemaChecker); ok {
		schema := &SchemaStatus{Missing: []string{}}
		missing, err := checker.CheckSchema()
		switch {
		case err != nil:
			schema.Error = err.Error()
			report.Healthy = false
		case len(missing) > 0:
			schema.Missing = missing
			report.Healthy = false
		}
		report.Schema = schema
	}

	return report
}

func status(name string, records int, start time.Time, err error) SourceStatus {
	st := SourceStatus{Name: name, Records: records, Latency: time.Since(start)}
	if err != nil {
		st.Records = 0
		st.Error = err.Error()
	}
	return st
}
