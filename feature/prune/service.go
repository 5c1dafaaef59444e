package prune

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seedbox-mover/core/metrics"
	"seedbox-mover/core/reconcile"
	"seedbox-mover/core/storage"
	"seedbox-mover/feature/report"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Request describes one prune run.
type Request struct {
	Days   int
	Mode   reconcile.Mode
	Invert bool
	DryRun bool
}

func (r Request) key() string {
	return fmt.Sprintf("%d|%s|%t|%t", r.Days, r.Mode, r.Invert, r.DryRun)
}

// Archive configures uploading run reports to object storage.
type Archive struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Service runs reconciliations against one torrent source and one media source.
type Service struct {
	torrents reconcile.TorrentSource
	media    reconcile.MediaSource
	cfg      Config
	archive  *Archive
	logger   *zap.Logger

	// Now overrides the clock, mainly for tests.
	Now func() time.Time

	group singleflight.Group
}

// NewService creates a new prune service. A nil archive disables uploads.
func NewService(torrents reconcile.TorrentSource, media reconcile.MediaSource, cfg Config, archive *Archive, logger *zap.Logger) *Service {
	return &Service{
		torrents: torrents,
		media:    media,
		cfg:      cfg,
		archive:  archive,
		logger:   logger,
		Now:      time.Now,
	}
}

// Defaults returns a request built from the configured policy.
func (s *Service) Defaults() (Request, error) {
	mode, err := reconcile.ParseMode(s.cfg.Mode)
	if err != nil {
		return Request{}, err
	}
	return Request{Days: s.cfg.Days, Mode: mode, Invert: s.cfg.Invert, DryRun: true}, nil
}

func (s *Service) reconciler(invert bool) *reconcile.Reconciler {
	r := reconcile.NewReconciler(s.torrents, s.media)
	r.Category = s.cfg.Category
	r.Invert = invert
	r.Now = s.Now
	return r
}

// Candidates lists deletion candidates without removing anything.
func (s *Service) Candidates(ctx context.Context, req Request) ([]reconcile.Candidate, reconcile.Summary, error) {
	candidates, err := s.reconciler(req.Invert).FindDeletable(ctx, req.Days, req.Mode)
	if err != nil {
		return nil, reconcile.Summary{}, err
	}
	return candidates, reconcile.Summarize(candidates), nil
}

// Run executes a prune. Concurrent runs with the same request share one execution.
func (s *Service) Run(ctx context.Context, req Request) (*reconcile.RunReport, error) {
	v, err, shared := s.group.Do(req.key(), func() (any, error) {
		return s.run(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Joined in-flight prune run", zap.String("key", req.key()))
	}
	return v.(*reconcile.RunReport), nil
}

func (s *Service) run(ctx context.Context, req Request) (*reconcile.RunReport, error) {
	start := time.Now()
	l := s.logger.With(
		zap.Int("days", req.Days),
		zap.String("mode", string(req.Mode)),
		zap.Bool("dry_run", req.DryRun),
	)

	rep, err := reconcile.Run(ctx, s.reconciler(req.Invert), reconcile.NewExecutor(s.torrents), reconcile.RunOptions{
		Days:   req.Days,
		Mode:   req.Mode,
		DryRun: req.DryRun,
		OnPhase: func(p reconcile.Phase) {
			l.Debug("Prune phase", zap.String("phase", string(p)))
		},
	})
	if err != nil {
		if errors.Is(err, reconcile.ErrSourceUnavailable) {
			metrics.RunFailuresTotal.Inc()
		}
		l.Error("Prune run failed", zap.Error(err))
		return nil, err
	}

	s.finish(ctx, l, rep, req.DryRun, start)
	return rep, nil
}

// Apply removes the candidates of a previously planned dry run, without
// fetching the inventories again. The returned report carries the live result.
func (s *Service) Apply(ctx context.Context, plan *reconcile.RunReport) *reconcile.RunReport {
	start := time.Now()
	l := s.logger.With(zap.Int("days", plan.Days), zap.String("mode", string(plan.Mode)), zap.Bool("dry_run", false))

	rep := *plan
	rep.Result = reconcile.NewExecutor(s.torrents).Apply(ctx, plan.Candidates, false)

	s.finish(ctx, l, &rep, false, start)
	return &rep
}

// finish runs the post-run side effects shared by Run and Apply.
func (s *Service) finish(ctx context.Context, l *zap.Logger, rep *reconcile.RunReport, dryRun bool, start time.Time) {
	for _, f := range rep.Result.Failed {
		l.Warn("Torrent removal failed", zap.String("name", f.Candidate.Media.Name), zap.Error(f.Err))
	}

	if file := s.cfg.listFile(dryRun); file != "" {
		if err := report.WriteList(file, rep.Result.Removed); err != nil {
			l.Error("Failed to write list file", zap.String("file", file), zap.Error(err))
		}
	}

	if s.archive != nil {
		if names, err := report.Archive(ctx, s.archive.Client, s.archive.Bucket, s.archive.Prefix, rep); err != nil {
			l.Error("Failed to archive report", zap.Error(err))
		} else {
			l.Debug("Archived report", zap.Strings("objects", names))
		}
	}

	metrics.ObserveRun(rep, time.Since(start).Seconds())
	l.Info("Prune run finished",
		zap.Int("candidates", rep.Summary.Candidates),
		zap.Int("removed", len(rep.Result.Removed)),
		zap.Int("failed", len(rep.Result.Failed)),
		zap.Duration("duration", time.Since(start)),
	)
}
