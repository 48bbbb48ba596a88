// Package pivot — the chain-run driver.
package pivot

// Run drives one pivot chain of length n for a fixed number of
// attempts and returns the mean free-forward-move observable over the
// post-burn-in attempts — the connective-constant estimate at this
// chain length.
//
// The first burnIn proposals equilibrate the chain and record nothing;
// after that every proposal, accepted or not, contributes exactly one
// observation of the current state.
//
// Policy: seed==0 ⇒ deterministic default stream (see rng.go).
//
// Returns ErrChainTooShort (n < 1), ErrNegativeBurnIn (burnIn < 0) or
// ErrNoSamples (attempts ≤ burnIn).
//
// Complexity: O(attempts·n/2) time, O(n) memory.
func Run(n, attempts, burnIn int, seed int64) (float64, error) {
	chain, err := NewChain(n)
	if err != nil {
		return 0, err
	}
	if burnIn < 0 {
		return 0, ErrNegativeBurnIn
	}
	if attempts <= burnIn {
		return 0, ErrNoSamples
	}

	var (
		rng     = rngFromSeed(seed)
		sum     int64
		samples int64
		i       int
	)
	for i = 0; i < attempts; i++ {
		chain.Step(rng)
		if i >= burnIn {
			sum += int64(chain.Observe())
			samples++
		}
	}

	return float64(sum) / float64(samples), nil
}
