// Package rosenbluth — the weighted growth walker.
//
// Extend is the single-step primitive shared with package perm;
// Grow and EstimateCL compose it into the vanilla Rosenbluth method.
package rosenbluth

import (
	"math/rand"

	"github.com/hyizhak/saw-monte-carlo/lattice"
)

// Extend attempts one Rosenbluth growth step from pos.
//
// It enumerates the four axis neighbors of pos, discards occupied ones,
// and reports the number of free candidates as the branching factor.
// If no candidate remains the walk is trapped: Extend returns
// trapped=true and leaves occ untouched. Otherwise one candidate is
// chosen uniformly via rng, marked in occ, and returned as the new
// position. The caller multiplies its running weight by branching.
//
// Complexity: O(1) — four occupancy probes, one random draw.
func Extend(pos lattice.Coord, occ lattice.Occupancy, rng *rand.Rand) (next lattice.Coord, branching int, trapped bool) {
	var buf [4]lattice.Coord
	cands := occ.FreeNeighbors(pos, buf[:0])
	if len(cands) == 0 {
		return pos, 0, true
	}

	next = cands[rng.Intn(len(cands))]
	occ.Add(next)

	return next, len(cands), false
}

// Grow performs one L-step Rosenbluth walk from the origin and returns
// its final importance weight. The weight starts at 1, is multiplied by
// the branching factor at every step, and collapses to 0 if the walk
// traps before reaching L steps.
//
// Complexity: O(L) time, O(L) memory.
func Grow(L int, rng *rand.Rand) float64 {
	var (
		pos       = lattice.Origin
		occ       = lattice.NewOccupancy(L + 1)
		weight    = 1.0
		branching int
		trapped   bool
		step      int
	)
	occ.Add(pos)

	for step = 0; step < L; step++ {
		pos, branching, trapped = Extend(pos, occ, rng)
		if trapped {
			return 0
		}
		weight *= float64(branching)
	}

	return weight
}

// EstimateCL estimates the self-avoiding-walk count c_L by averaging
// the final weight of trials independent Rosenbluth walks of length L.
//
// Policy: seed==0 ⇒ deterministic default stream (see rng.go).
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

	var (
		rng   = rngFromSeed(seed)
		total float64
		i     int
	)
	for i = 0; i < trials; i++ {
		total += Grow(L, rng)
	}

	return total / float64(trials), nil
}
