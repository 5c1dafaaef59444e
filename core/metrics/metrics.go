package metrics

import (
	"seedbox-mover/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seedbox_mover",
		Name:      "runs_total",
		Help:      "Total prune runs by mode and whether they were dry runs.",
	}, []string{"mode", "dry_run"})

	RunFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "seedbox_mover",
		Name:      "run_failures_total",
		Help:      "Total prune runs aborted by a source failure.",
	})

	RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "seedbox_mover",
		Name:      "run_duration_seconds",
		Help:      "Duration of prune runs in seconds.",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
	})

	Candidates = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "seedbox_mover",
		Name:      "candidates",
		Help:      "Candidates found by the last run, by kind.",
	}, []string{"kind"})

	ReclaimableBytes = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "seedbox_mover",
		Name:      "reclaimable_bytes",
		Help:      "Total size of media selected by the last run.",
	})

	RemovalsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "seedbox_mover",
		Name:      "removals_total",
		Help:      "Total torrents removed from the download client.",
	})

	RemovalFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "seedbox_mover",
		Name:      "removal_failures_total",
		Help:      "Total torrent removals rejected by the download client.",
	})
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		RunsTotal,
		RunFailuresTotal,
		RunDuration,
		Candidates,
		ReclaimableBytes,
		RemovalsTotal,
		RemovalFailuresTotal,
	)
}

// ObserveRun records the outcome of a completed run.
func ObserveRun(report *reconcile.RunReport, seconds float64) {
	dryRun := "false"
	if report.Result.DryRun {
		dryRun = "true"
	}
	RunsTotal.WithLabelValues(string(report.Mode), dryRun).Inc()
	RunDuration.Observe(seconds)

	Candidates.WithLabelValues("torrent").Set(float64(report.Summary.TorrentBacked))
	Candidates.WithLabelValues("media_only").Set(float64(report.Summary.MediaOnly))
	ReclaimableBytes.Set(float64(report.Summary.ReclaimedBytes))

	if !report.Result.DryRun {
		RemovalsTotal.Add(float64(len(report.Result.Removed)))
		RemovalFailuresTotal.Add(float64(len(report.Result.Failed)))
	}
}
