package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyizhak/saw-monte-carlo/perm"
)

// TestRunTour_Errors covers every caller-contract sentinel.
func TestRunTour_Errors(t *testing.T) {
	stats := perm.NewStats(10)

	_, err := perm.RunTour(-1, stats, perm.DefaultOptions(), nil)
	assert.ErrorIs(t, err, perm.ErrNegativeLength)

	_, err = perm.RunTour(5, nil, perm.DefaultOptions(), nil)
	assert.ErrorIs(t, err, perm.ErrNilStats)

	_, err = perm.RunTour(11, stats, perm.DefaultOptions(), nil)
	assert.ErrorIs(t, err, perm.ErrStatsLength)

	bad := perm.DefaultOptions()
	bad.Policy = perm.CloneThreshold
	bad.CMinus = 0.5
	bad.CPlus = 0.5
	_, err = perm.RunTour(5, stats, bad, nil)
	assert.ErrorIs(t, err, perm.ErrBadThresholds)

	bad = perm.DefaultOptions()
	bad.Policy = perm.Policy(99)
	_, err = perm.RunTour(5, stats, bad, nil)
	assert.ErrorIs(t, err, perm.ErrUnknownPolicy)
}

// TestRunTour_DegenerateL0 pins the base case: every L=0 tour
// terminates immediately at the origin with weight exactly 1, under
// both policies.
func TestRunTour_DegenerateL0(t *testing.T) {
	for _, policy := range []perm.Policy{perm.CloneStochastic, perm.CloneThreshold} {
		opts := perm.DefaultOptions()
		opts.Policy = policy

		stats := perm.NewStats(0)
		for i := 0; i < 20; i++ {
			w, err := perm.RunTour(0, stats, opts, nil)
			require.NoError(t, err)
			assert.Equal(t, 1.0, w, "L=0 tour weight under policy %d", policy)
		}
		assert.Equal(t, int64(20), stats.Visits(0))
	}
}

// TestRunTour_LengthOne: no 1-step walk can trap or meaningfully clone,
// so every tour returns exactly c_1 = 4.
func TestRunTour_LengthOne(t *testing.T) {
	stats := perm.NewStats(1)
	for i := 0; i < 50; i++ {
		w, err := perm.RunTour(1, stats, perm.DefaultOptions(), nil)
		require.NoError(t, err)
		assert.Equal(t, 4.0, w, "a single growth step always has branching 4")
	}
}

// TestRunTour_WeightNonNegative: every tour weight must be ≥ 0.
func TestRunTour_WeightNonNegative(t *testing.T) {
	for _, policy := range []perm.Policy{perm.CloneStochastic, perm.CloneThreshold} {
		opts := perm.DefaultOptions()
		opts.Policy = policy

		stats := perm.NewStats(40)
		rng := testRNG(7)
		for i := 0; i < 200; i++ {
			w, err := perm.RunTour(40, stats, opts, rng)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, w, 0.0)
		}
	}
}

// TestRunTour_StatsMonotone: the visit count at length 0 grows by
// exactly one per tour (the root is always visited once), and deeper
// lengths never record more visits than... their parent spawned.
// Visits at length n+1 can exceed visits at n through enrichment, so
// only the root behavior is exact.
func TestRunTour_StatsMonotone(t *testing.T) {
	stats := perm.NewStats(20)
	rng := testRNG(11)

	const tours = 100
	for i := 0; i < tours; i++ {
		_, err := perm.RunTour(20, stats, perm.DefaultOptions(), rng)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(tours), stats.Visits(0), "root records exactly one visit per tour")
	assert.Equal(t, float64(tours), stats.WeightSum(0), "root always carries weight 1")
}

// TestRunTour_SharedStatsSequence: passing one Stats through many tours
// is the intended lifetime; a persistent accumulator must keep working
// after an explicit Reset (new estimation run).
func TestRunTour_SharedStatsSequence(t *testing.T) {
	stats := perm.NewStats(10)
	rng := testRNG(5)

	for i := 0; i < 30; i++ {
		_, err := perm.RunTour(10, stats, perm.DefaultOptions(), rng)
		require.NoError(t, err)
	}
	firstRun := stats.Visits(0)

	stats.Reset()
	_, err := perm.RunTour(10, stats, perm.DefaultOptions(), rng)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Visits(0), "after Reset the accumulator starts a fresh run")
	assert.Equal(t, int64(30), firstRun)
}
