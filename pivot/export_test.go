// Test-bridge (white-box) for the proposal engine.
//
// Purpose:
//   - Expose the unexported propose kernel to pivot_test ONLY, so the
//     deterministic pivot scenarios (fixed index + fixed symmetry) can
//     be driven without steering the rng stream.
//
// The file is test-only by the _test.go suffix; the production API is
// unchanged.
package pivot

import "github.com/hyizhak/saw-monte-carlo/lattice"

// Propose_TestOnly forwards to the private propose kernel.
func (c *Chain) Propose_TestOnly(p int, sym lattice.Symmetry) bool {
	return c.propose(p, sym)
}
