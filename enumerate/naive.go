// Package enumerate — the naive unweighted Monte Carlo estimator.
package enumerate

import (
	"math"
	"math/rand"

	"github.com/hyizhak/saw-monte-carlo/lattice"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0,
// matching the RNG policy of the sampler packages.
const defaultRNGSeed int64 = 1

// EstimateCL estimates c_L the naive way: draw trials uniform random
// walks of length L, take the fraction that happen to be self-avoiding
// and scale it by 4^L (the number of unconstrained walks).
//
// The self-avoiding fraction decays exponentially in L, so the
// estimator degrades quickly with length; it exists as the illustrative
// baseline the weighted samplers improve upon.
//
// Policy: seed==0 ⇒ deterministic default stream.
//
// Returns ErrNegativeLength when L < 0 and ErrNoTrials when trials < 1.
//
// Complexity: O(trials·L) time, O(L) memory.
func EstimateCL(L, trials int, seed int64) (float64, error) {
	if L < 0 {
		return 0, ErrNegativeLength
	}
	if trials < 1 {
		return 0, ErrNoTrials
	}

	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	var (
		rng  = rand.New(rand.NewSource(s))
		hits int64
		i    int
	)
	for i = 0; i < trials; i++ {
		if randomWalkSelfAvoids(L, rng) {
			hits++
		}
	}

	return float64(hits) / float64(trials) * math.Pow(4, float64(L)), nil
}

// randomWalkSelfAvoids draws one uniform random walk of length L and
// reports whether it never revisits a site. The occupancy doubles as
// the visited-set check, so no walk slice is materialized.
func randomWalkSelfAvoids(L int, rng *rand.Rand) bool {
	var (
		occ  = lattice.NewOccupancy(L + 1)
		pos  = lattice.Origin
		step int
	)
	occ.Add(pos)

	for step = 0; step < L; step++ {
		pos = pos.Add(lattice.Moves[rng.Intn(len(lattice.Moves))])
		if occ.Has(pos) {
			return false
		}
		occ.Add(pos)
	}

	return true
}
