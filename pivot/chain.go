// Package pivot — the persistent chain state and the propose/validate/
// accept protocol.
package pivot

import (
	"math/rand"

	"github.com/hyizhak/saw-monte-carlo/lattice"
)

// Chain is the state of one pivot Markov chain: a fixed-length walk,
// the occupancy shadowing it, and acceptance bookkeeping. A Chain has
// exactly one logical owner; it is not safe for concurrent use.
type Chain struct {
	walk lattice.Walk
	occ  lattice.Occupancy

	steps    int64 // total proposals, accepted or not
	accepted int64 // accepted proposals

	scratch []lattice.Coord // transformed sites inserted so far, for rollback
}

// NewChain returns a chain of length n in its initial state, the
// straight walk (0,0), (1,0), …, (n,0). Returns ErrChainTooShort for
// n < 1.
// Complexity: O(n) time and memory.
func NewChain(n int) (*Chain, error) {
	if n < 1 {
		return nil, ErrChainTooShort
	}

	w := lattice.Straight(n)

	return &Chain{
		walk:    w,
		occ:     lattice.OccupancyOf(w),
		scratch: make([]lattice.Coord, 0, n/2+1),
	}, nil
}

// Len returns the chain length n (the walk holds n+1 sites).
// Complexity: O(1).
func (c *Chain) Len() int {
	return len(c.walk) - 1
}

// Walk returns a copy of the current walk; the chain's own state stays
// private to the accept protocol.
// Complexity: O(n).
func (c *Chain) Walk() lattice.Walk {
	w := make(lattice.Walk, len(c.walk))
	copy(w, c.walk)

	return w
}

// Steps returns the number of proposals made so far.
func (c *Chain) Steps() int64 {
	return c.steps
}

// Accepted returns the number of accepted proposals so far.
func (c *Chain) Accepted() int64 {
	return c.accepted
}

// Step makes one pivot proposal and reports whether it was accepted.
//
// The pivot index p is uniform on [0, n] and the symmetry uniform over
// the 8-element group; both draws happen on every call so the decision
// sequence is a pure function of the rng stream. Proposals at p==0 or
// p==n cannot change the walk and are rejected outright — still one
// Markov step. Otherwise the shorter sub-chain is transformed about
// the pivot site and validated incrementally against the occupancy;
// the first collision rolls the occupancy back and keeps the prior
// state untouched.
//
// A nil rng selects the deterministic default stream (seed==0 policy).
//
// Complexity: O(min(p, n−p)) time, O(1) extra memory.
func (c *Chain) Step(rng *rand.Rand) bool {
	if rng == nil {
		rng = rngFromSeed(0)
	}
	var (
		n   = len(c.walk) - 1
		p   = rng.Intn(n + 1)
		sym = lattice.Symmetry(rng.Intn(lattice.GroupOrder))
	)

	return c.propose(p, sym)
}

// propose applies the pivot proposal (p, sym) to the chain, updating
// attempt/acceptance bookkeeping. Split from Step so that tests can
// drive specific proposals without steering the rng stream.
func (c *Chain) propose(p int, sym lattice.Symmetry) bool {
	c.steps++

	n := len(c.walk) - 1
	if p == 0 || p == n {
		// Endpoint pivots are guaranteed no-ops for every symmetry.
		return false
	}

	// Transform the shorter side: [0,p) when the left part is smaller,
	// (p,n] otherwise. Cost is bounded by n/2.
	var lo, hi int
	if p < n-p {
		lo, hi = 0, p
	} else {
		lo, hi = p+1, n+1
	}

	var (
		pivot = c.walk[p]
		i     int
	)
	// Phase 1: the old sub-chain leaves the occupancy.
	for i = lo; i < hi; i++ {
		c.occ.Remove(c.walk[i])
	}

	// Phase 2: transformed sites enter one at a time; the first
	// collision — against the fixed portion or an already-inserted
	// transformed site — aborts and rolls back.
	c.scratch = c.scratch[:0]
	var t lattice.Coord
	for i = lo; i < hi; i++ {
		t = sym.About(pivot, c.walk[i])
		if c.occ.Has(t) {
			c.rollback(lo, hi)
			return false
		}
		c.occ.Add(t)
		c.scratch = append(c.scratch, t)
	}

	// Phase 3: commit — the transformed sites become the walk.
	for i = lo; i < hi; i++ {
		c.walk[i] = c.scratch[i-lo]
	}
	c.accepted++

	return true
}

// rollback discards the transformed sites inserted so far and restores
// the original sub-chain [lo, hi) into the occupancy, returning the
// chain to its pre-proposal state.
// Complexity: O(hi−lo).
func (c *Chain) rollback(lo, hi int) {
	var i int
	for i = range c.scratch {
		c.occ.Remove(c.scratch[i])
	}
	for i = lo; i < hi; i++ {
		c.occ.Add(c.walk[i])
	}
}

// Observe returns the number of free forward moves at the walk's
// terminal end: of the three lattice directions excluding the immediate
// backward step, how many lead to an unoccupied site.
// Complexity: O(1).
func (c *Chain) Observe() int {
	var (
		n    = len(c.walk) - 1
		last = c.walk[n]
		back = c.walk[n-1].Sub(last) // unit step back onto the previous site
		free int
		m    lattice.Coord
	)
	for _, m = range lattice.Moves {
		if m == back {
			continue
		}
		if !c.occ.Has(last.Add(m)) {
			free++
		}
	}

	return free
}
