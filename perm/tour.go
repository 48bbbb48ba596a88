// Package perm — the work-stack tour engine.
//
// A tour is a depth-first traversal of the branching growth process.
// Recursion is replaced by an explicit frame stack so the depth is
// bounded by heap, not goroutine stack; the occupancy is a single
// shared arena maintained by paired enter/leave frames (push a site on
// entering a branch, pop it on leaving), so clones never copy it.
package perm

import (
	"math"
	"math/rand"

	"github.com/hyizhak/saw-monte-carlo/lattice"
)

// frameKind distinguishes growth-node frames from occupancy-undo frames.
type frameKind uint8

const (
	// frameEnter processes a growth node: occupy the site, record
	// statistics, apply population control, push children.
	frameEnter frameKind = iota
	// frameLeave releases the site occupied by the matching enter frame.
	frameLeave
)

// frame is one continuation of the tour traversal.
type frame struct {
	kind   frameKind
	n      int           // current walk length at this node
	pos    lattice.Coord // site occupied by this node
	weight float64       // importance weight carried into this node
}

// RunTour executes one PERM tour: a full traversal starting at the
// origin with weight 1 and a fresh occupancy holding only the origin.
// It returns the summed weight of every branch that reached length L.
// Trapped and pruned branches contribute zero; they are outcomes, not
// errors.
//
// stats is shared across all tours of one estimation run and mutated by
// every node; pass the same Stats to consecutive RunTour calls for the
// standard adaptive behavior, or a persistent one to carry corrections
// across runs.
//
// A nil rng selects the deterministic default stream (seed==0 policy).
//
// Returns ErrNegativeLength, ErrNilStats, ErrStatsLength, or an
// Options sentinel on contract violations.
//
// Complexity: O(L·B) time for B surviving branches; O(L+B) stack memory.
func RunTour(L int, stats *Stats, opts Options, rng *rand.Rand) (float64, error) {
	if L < 0 {
		return 0, ErrNegativeLength
	}
	if stats == nil {
		return 0, ErrNilStats
	}
	if stats.MaxLength() < L {
		return 0, ErrStatsLength
	}
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	var (
		occ   = lattice.NewOccupancy(L + 1)
		stack = make([]frame, 0, 2*(L+1))
		total float64
		buf   [4]lattice.Coord
	)
	stack = append(stack, frame{kind: frameEnter, n: 0, pos: lattice.Origin, weight: 1})

	var (
		f           frame
		cands       []lattice.Coord
		copies      int
		childWeight float64
		i           int
	)
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.kind == frameLeave {
			occ.Remove(f.pos)
			continue
		}

		// Enter: occupy the site and schedule its release after the
		// whole subtree below it has unwound.
		occ.Add(f.pos)
		stack = append(stack, frame{kind: frameLeave, pos: f.pos})

		stats.Record(f.n, f.weight)

		if f.n == L {
			// Completed branch: its weight is one sample for c_L.
			total += f.weight
			continue
		}

		cands = occ.FreeNeighbors(f.pos, buf[:0])
		if len(cands) == 0 {
			// Trapped branch: contributes an implicit zero.
			continue
		}

		copies, childWeight = controlDecision(f.n, f.weight, len(cands), stats, opts, rng)
		for i = 0; i < copies; i++ {
			// Each clone picks its own neighbor; duplicates are allowed
			// and diverge at the next level.
			stack = append(stack, frame{
				kind:   frameEnter,
				n:      f.n + 1,
				pos:    cands[rng.Intn(len(cands))],
				weight: childWeight,
			})
		}
	}

	return total, nil
}

// controlDecision applies the configured population-control policy at a
// node of length n carrying weight w with a free candidates. It returns
// how many clones continue and the weight each clone carries to length
// n+1. copies==0 means the branch is pruned.
//
// Both policies redistribute weight without changing its expectation:
// E[copies·childWeight] equals the plain Rosenbluth continuation w·a.
//
// Complexity: O(1).
func controlDecision(n int, w float64, a int, stats *Stats, opts Options, rng *rand.Rand) (copies int, childWeight float64) {
	if opts.Policy == CloneThreshold {
		return thresholdDecision(n, w, a, stats, opts, rng)
	}

	return stochasticDecision(n, w, a, stats, rng)
}

// stochasticDecision implements unbiased randomized rounding against
// the running average at the current length (which includes the node's
// own just-recorded visit, so history always exists; the fallback to w
// is a guard for externally prepared Stats).
func stochasticDecision(n int, w float64, a int, stats *Stats, rng *rand.Rand) (copies int, childWeight float64) {
	target, ok := stats.Average(n)
	if !ok || target <= 0 {
		target = w
	}

	ratio := w / target
	copies = int(math.Floor(ratio))
	if rng.Float64() < ratio-math.Floor(ratio) {
		copies++
	}

	// Clones restart from the average, scaled by the Rosenbluth factor;
	// E[copies]·target·a == w·a, so no weight is created or destroyed.
	return copies, target * float64(a)
}

// thresholdDecision implements the clone/kill band policy: enrich above
// cPlus·avg, kill-or-double below cMinus·avg, continue unchanged in
// between. The average is taken at the next length, where the candidate
// weight w·a will be recorded; with no history yet the weight continues
// uncorrected.
func thresholdDecision(n int, w float64, a int, stats *Stats, opts Options, rng *rand.Rand) (copies int, childWeight float64) {
	newWeight := w * float64(a)

	avg, ok := stats.Average(n + 1)
	if !ok {
		return 1, newWeight
	}

	var (
		wPlus  = opts.CPlus * avg
		wMinus = opts.CMinus * avg
	)
	switch {
	case newWeight > wPlus:
		// Enrichment: split the weight evenly among the clones.
		copies = int(math.Floor(newWeight / wPlus))
		if copies < 1 {
			copies = 1
		}
		return copies, newWeight / float64(copies)
	case newWeight < wMinus:
		// Pruning: kill half the low-weight branches, double the rest.
		if rng.Float64() < 0.5 {
			return 0, 0
		}
		return 1, 2 * newWeight
	default:
		return 1, newWeight
	}
}
