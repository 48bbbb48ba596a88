// Package perm - deterministic RNG policy.
//
// Same contract as every stochastic package in this module:
//   - seed==0 ⇒ fixed default seed, so zero-value configs stay reproducible.
//   - No time-based sources anywhere; same seed ⇒ identical tours.
//
// math/rand.Rand is NOT goroutine-safe; do not share one across goroutines.
package perm

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
