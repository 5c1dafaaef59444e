package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"seedbox-mover/core/reconcile"
	"seedbox-mover/core/reconcile/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func candidatesFixture() []reconcile.Candidate {
	old := torrent("Movie.2020", 45)
	older := torrent("Classic.1999", 400)
	return []reconcile.Candidate{
		{Media: media("Movie.2020", 2_000_000_000), Torrent: &old},
		{Media: media("Orphan.2019", 700_000_000)},
		{Media: media("Classic.1999", 4_000_000_000), Torrent: &older},
	}
}

// TestApply_DryRun tests that a dry run issues no removal calls.
func TestApply_DryRun(t *testing.T) {
	ts := new(mocks.TorrentSource)
	exec := reconcile.NewExecutor(ts)

	result := exec.Apply(context.Background(), candidatesFixture(), true)

	assert.True(t, result.DryRun)
	assert.Equal(t, []string{"/downloads/Movie.2020", "/downloads/Classic.1999"}, result.Removed)
	assert.Equal(t, 0, result.Calls)
	assert.Empty(t, result.Failed)
	require.Len(t, result.Unhandled, 1)
	assert.Equal(t, "Orphan.2019", result.Unhandled[0].Media.Name)
	ts.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

// TestApply_DryRunMatchesLive tests that dry and live runs report the same locations.
func TestApply_DryRunMatchesLive(t *testing.T) {
	ts := new(mocks.TorrentSource)
	ts.On("Remove", mock.Anything, mock.Anything).Return(nil)
	exec := reconcile.NewExecutor(ts)

	dry := exec.Apply(context.Background(), candidatesFixture(), true)
	live := exec.Apply(context.Background(), candidatesFixture(), false)

	assert.Equal(t, dry.Removed, live.Removed)
	assert.Equal(t, 2, live.Calls)
	ts.AssertCalled(t, "Remove", mock.Anything, "hash-Movie.2020")
	ts.AssertCalled(t, "Remove", mock.Anything, "hash-Classic.1999")
	ts.AssertNumberOfCalls(t, "Remove", 2)
}

// TestApply_RemovalFailureContinues tests that a rejected removal doesn't stop the run.
func TestApply_RemovalFailureContinues(t *testing.T) {
	ts := new(mocks.TorrentSource)
	ts.On("Remove", mock.Anything, "hash-Movie.2020").Return(errors.New("fault: no such torrent"))
	ts.On("Remove", mock.Anything, "hash-Classic.1999").Return(nil)
	exec := reconcile.NewExecutor(ts)

	result := exec.Apply(context.Background(), candidatesFixture(), false)

	assert.Equal(t, []string{"/downloads/Classic.1999"}, result.Removed)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "Movie.2020", result.Failed[0].Candidate.Media.Name)
	assert.True(t, errors.Is(result.Failed[0].Err, reconcile.ErrRemovalFailed))
	assert.Contains(t, result.Failed[0].Message, "no such torrent")
	assert.Equal(t, 2, result.Calls)
}

// TestApply_OneCallPerHandle tests that duplicate handles are removed once.
func TestApply_OneCallPerHandle(t *testing.T) {
	ts := new(mocks.TorrentSource)
	ts.On("Remove", mock.Anything, "hash-Movie.2020").Return(nil)
	exec := reconcile.NewExecutor(ts)

	tr := torrent("Movie.2020", 45)
	candidates := []reconcile.Candidate{
		{Media: media("Movie.2020", 1), Torrent: &tr},
		{Media: media("Movie.2020", 1), Torrent: &tr},
	}

	result := exec.Apply(context.Background(), candidates, false)

	assert.Equal(t, 1, result.Calls)
	assert.Len(t, result.Removed, 1)
	ts.AssertNumberOfCalls(t, "Remove", 1)
}

// TestApply_OrphanIsUnhandled covers a media-only candidate.
func TestApply_OrphanIsUnhandled(t *testing.T) {
	ts := new(mocks.TorrentSource)
	exec := reconcile.NewExecutor(ts)

	result := exec.Apply(context.Background(), []reconcile.Candidate{{Media: media("Orphan.2019", 1)}}, false)

	assert.Empty(t, result.Removed)
	assert.Len(t, result.Unhandled, 1)
	assert.Equal(t, 0, result.Calls)
	ts.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

// TestRun_Phases tests the phase sequence for dry and live runs.
func TestRun_Phases(t *testing.T) {
	tests := []struct {
		name   string
		dryRun bool
		want   []reconcile.Phase
	}{
		{
			name:   "Dry run reports",
			dryRun: true,
			want:   []reconcile.Phase{reconcile.PhaseFetching, reconcile.PhaseReconciling, reconcile.PhaseReporting, reconcile.PhaseDone},
		},
		{
			name:   "Live run deletes",
			dryRun: false,
			want:   []reconcile.Phase{reconcile.PhaseFetching, reconcile.PhaseReconciling, reconcile.PhaseDeleting, reconcile.PhaseDone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ts, _ := newReconciler(
				[]reconcile.TorrentRecord{torrent("Movie.2020", 45)},
				reconcile.MediaIndex{
					"Movie.2020":  media("Movie.2020", 2_000_000_000),
					"Orphan.2019": media("Orphan.2019", 1),
				},
			)
			ts.On("Remove", mock.Anything, "hash-Movie.2020").Return(nil)

			var phases []reconcile.Phase
			report, err := reconcile.Run(context.Background(), r, reconcile.NewExecutor(ts), reconcile.RunOptions{
				Days:    30,
				Mode:    reconcile.ModeCombined,
				DryRun:  tt.dryRun,
				OnPhase: func(p reconcile.Phase) { phases = append(phases, p) },
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, phases)
			assert.Equal(t, 2, report.Summary.Candidates)
			assert.Equal(t, int64(2_000_000_001), report.Summary.ReclaimedBytes)
			assert.Equal(t, []string{"/downloads/Movie.2020"}, report.Result.Removed)
		})
	}
}

// TestRun_SourceFailureAbortsBeforeDeleting tests that no removal happens after a fetch failure.
func TestRun_SourceFailureAbortsBeforeDeleting(t *testing.T) {
	ts := new(mocks.TorrentSource)
	ms := new(mocks.MediaSource)
	ts.On("ListAll", mock.Anything).Return([]reconcile.TorrentRecord{torrent("Movie.2020", 45)}, nil)
	ms.On("ListAll", mock.Anything).Return(nil, errors.New("401 unauthorized"))

	r := reconcile.NewReconciler(ts, ms)

	var phases []reconcile.Phase
	report, err := reconcile.Run(context.Background(), r, reconcile.NewExecutor(ts), reconcile.RunOptions{
		Days:    30,
		Mode:    reconcile.ModeTorrent,
		OnPhase: func(p reconcile.Phase) { phases = append(phases, p) },
	})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, reconcile.ErrSourceUnavailable)
	assert.Equal(t, []reconcile.Phase{reconcile.PhaseFetching}, phases)
	ts.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
