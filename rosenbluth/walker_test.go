package rosenbluth_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyizhak/saw-monte-carlo/lattice"
	"github.com/hyizhak/saw-monte-carlo/rosenbluth"
)

// TestExtend_FirstStepBranching verifies the opening move from a fresh
// origin: all four neighbors are free, so the branching factor is 4 and
// the weight of a one-step walk becomes 4.
func TestExtend_FirstStepBranching(t *testing.T) {
	occ := lattice.NewOccupancy(2)
	occ.Add(lattice.Origin)

	next, branching, trapped := rosenbluth.Extend(lattice.Origin, occ, rand.New(rand.NewSource(7)))
	require.False(t, trapped, "origin step can never trap")
	assert.Equal(t, 4, branching, "all 4 initial moves are unobstructed")
	assert.True(t, occ.Has(next), "chosen site must be recorded in the occupancy")
	assert.Equal(t, 2, occ.Len(), "occupancy size must equal walk length + 1")
}

// TestExtend_Trapped builds the smallest trap — a position whose four
// neighbors are all occupied — and checks the zero-value outcome.
func TestExtend_Trapped(t *testing.T) {
	pos := lattice.Origin
	occ := lattice.NewOccupancy(5)
	occ.Add(pos)
	for _, m := range lattice.Moves {
		occ.Add(pos.Add(m))
	}

	next, branching, trapped := rosenbluth.Extend(pos, occ, rand.New(rand.NewSource(1)))
	assert.True(t, trapped, "fully surrounded position must trap")
	assert.Equal(t, 0, branching)
	assert.Equal(t, pos, next, "trapped step must not move")
	assert.Equal(t, 5, occ.Len(), "trapped step must leave the occupancy untouched")
}

// TestExtend_FiltersOccupied pins the candidate filtering: with the +x
// neighbor occupied, branching drops to 3 and +x is never chosen.
func TestExtend_FiltersOccupied(t *testing.T) {
	blocked := lattice.Coord{X: 1, Y: 0}
	for seed := int64(1); seed <= 32; seed++ {
		occ := lattice.NewOccupancy(3)
		occ.Add(lattice.Origin)
		occ.Add(blocked)

		next, branching, trapped := rosenbluth.Extend(lattice.Origin, occ, rand.New(rand.NewSource(seed)))
		require.False(t, trapped)
		assert.Equal(t, 3, branching)
		assert.NotEqual(t, blocked, next, "occupied site must never be selected (seed %d)", seed)
	}
}

// TestGrow_ShortWalks checks exact weights where no trapping is possible:
// a 1-step walk always has weight 4, a 2-step walk always 4·3 = 12.
func TestGrow_ShortWalks(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		assert.Equal(t, 4.0, rosenbluth.Grow(1, rng), "c_1 weight is deterministic")
		assert.Equal(t, 12.0, rosenbluth.Grow(2, rng), "c_2 weight is deterministic")
	}

	assert.Equal(t, 1.0, rosenbluth.Grow(0, rng), "zero-length walk has weight 1")
}

// TestGrow_WeightNonNegative samples long walks and requires every
// weight to be ≥ 0 (trapped walks report exactly 0).
func TestGrow_WeightNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		assert.GreaterOrEqual(t, rosenbluth.Grow(60, rng), 0.0)
	}
}

// TestEstimateCL_Errors covers the caller-contract sentinels.
func TestEstimateCL_Errors(t *testing.T) {
	_, err := rosenbluth.EstimateCL(-1, 10, 42)
	assert.ErrorIs(t, err, rosenbluth.ErrNegativeLength)

	_, err = rosenbluth.EstimateCL(5, 0, 42)
	assert.ErrorIs(t, err, rosenbluth.ErrNoTrials)
}

// TestEstimateCL_ExactShortLengths uses lengths where no walk can trap,
// so the estimator is exact for any trial count: c_0=1, c_1=4, c_2=12.
func TestEstimateCL_ExactShortLengths(t *testing.T) {
	for _, tc := range []struct {
		L    int
		want float64
	}{
		{0, 1}, {1, 4}, {2, 12},
	} {
		got, err := rosenbluth.EstimateCL(tc.L, 500, 42)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "estimate for L=%d must be exact", tc.L)
	}
}

// TestEstimateCL_Deterministic requires bit-identical estimates from
// identical seeds and differing estimates from different seeds.
func TestEstimateCL_Deterministic(t *testing.T) {
	a, err := rosenbluth.EstimateCL(20, 2000, 42)
	require.NoError(t, err)
	b, err := rosenbluth.EstimateCL(20, 2000, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the estimate exactly")

	c, err := rosenbluth.EstimateCL(20, 2000, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should diverge at this sample size")
}

// TestEstimateCL_NearExactReference checks statistical accuracy against
// the exact value c_5 = 284 within a generous tolerance.
func TestEstimateCL_NearExactReference(t *testing.T) {
	got, err := rosenbluth.EstimateCL(5, 200000, 42)
	require.NoError(t, err)
	assert.InEpsilon(t, 284.0, got, 0.05, "Rosenbluth estimate of c_5 within 5%%")
}
