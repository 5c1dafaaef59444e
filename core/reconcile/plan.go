package reconcile

import (
	"context"
	"time"
)

// Executor applies (or simulates) the removal of deletion candidates.
type Executor struct {
	torrents TorrentSource
}

// NewExecutor creates an executor that removes torrents through source.
func NewExecutor(source TorrentSource) *Executor {
	return &Executor{torrents: source}
}

// Apply removes the torrent behind each torrent-backed candidate, unless dryRun is set.
//
// Removed lists every location that was, or in dry-run would have been, removed,
// in input order. Media-only candidates are collected in Unhandled and never
// trigger a removal call. A rejected removal is recorded in Failed and does not
// stop the remaining candidates. At most one removal call is issued per handle.
func (e *Executor) Apply(ctx context.Context, candidates []Candidate, dryRun bool) ApplyResult {
	result := ApplyResult{
		DryRun:    dryRun,
		Removed:   []string{},
		Failed:    []RemovalFailure{},
		Unhandled: []Candidate{},
	}

	seen := make(map[string]struct{}, len(candidates))

	for _, candidate := range candidates {
		if !candidate.HasTorrent() {
			result.Unhandled = append(result.Unhandled, candidate)
			continue
		}

		handle := candidate.Torrent.Handle
		if _, done := seen[handle]; done {
			continue
		}
		seen[handle] = struct{}{}

		if !dryRun {
			result.Calls++
			if err := e.torrents.Remove(ctx, handle); err != nil {
				wrapped := removalFailed(handle, err)
				result.Failed = append(result.Failed, RemovalFailure{
					Candidate: candidate,
					Err:       wrapped,
					Message:   wrapped.Error(),
				})
				continue
			}
		}

		result.Removed = append(result.Removed, candidate.Torrent.Location)
	}

	return result
}

// RunOptions controls a full find-and-apply pass.
type RunOptions struct {
	// Days is the retention threshold.
	Days int

	// Mode selects the join strategy.
	Mode Mode

	// DryRun skips removal calls.
	DryRun bool

	// OnPhase, when set, is called on every state transition.
	OnPhase func(Phase)
}

// RunReport is the outcome of Run.
type RunReport struct {
	Started    time.Time   `json:"started"`
	Days       int         `json:"days"`
	Mode       Mode        `json:"mode"`
	Candidates []Candidate `json:"candidates"`
	Summary    Summary     `json:"summary"`
	Result     ApplyResult `json:"result"`
}

// Run drives one pass: Fetching -> Reconciling -> (Reporting | Deleting) -> Done.
// Source failures abort before any removal is attempted.
func Run(ctx context.Context, r *Reconciler, e *Executor, opts RunOptions) (*RunReport, error) {
	phase := func(p Phase) {
		if opts.OnPhase != nil {
			opts.OnPhase(p)
		}
	}

	now := r.now()

	phase(PhaseFetching)
	snap, err := LoadSnapshot(ctx, r.torrents, r.media, now)
	if err != nil {
		return nil, err
	}

	phase(PhaseReconciling)
	retention := Retention{Days: opts.Days, Category: r.Category, Invert: r.Invert}
	candidates, err := Select(snap, retention, opts.Mode, now)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		phase(PhaseReporting)
	} else {
		phase(PhaseDeleting)
	}
	result := e.Apply(ctx, candidates, opts.DryRun)

	phase(PhaseDone)
	return &RunReport{
		Started:    now,
		Days:       opts.Days,
		Mode:       opts.Mode,
		Candidates: candidates,
		Summary:    Summarize(candidates),
		Result:     result,
	}, nil
}
