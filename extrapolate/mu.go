// Package extrapolate — the μ(∞) driver.
package extrapolate

import "github.com/hyizhak/saw-monte-carlo/pivot"

// Mu estimates the infinite-length connective constant: one pivot run
// per chain length, then a linear fit of the mean observable against
// 1/length. The intercept is μ(∞); perLength holds the raw finite-size
// estimates in the order of lengths.
//
// Each length n runs n·opts.AttemptsPerUnit proposals after deriving
// its own seed stream from opts.Seed, so the estimate is reproducible
// and independent of length ordering.
//
// Returns ErrFewPoints (fewer than two lengths), ErrBadAttempts, or a
// forwarded pivot sentinel (ErrChainTooShort, ErrNegativeBurnIn,
// ErrNoSamples).
//
// Complexity: O(Σ attempts·n/2) time.
func Mu(lengths []int, opts Options) (muInf float64, perLength []float64, err error) {
	if len(lengths) < 2 {
		return 0, nil, ErrFewPoints
	}
	if opts.AttemptsPerUnit < 1 {
		return 0, nil, ErrBadAttempts
	}

	seed := opts.Seed
	if seed == 0 {
		seed = defaultRNGSeed
	}

	var (
		xs = make([]float64, len(lengths))
		ys = make([]float64, len(lengths))
		mu float64
		i  int
		n  int
	)
	for i, n = range lengths {
		mu, err = pivot.Run(n, n*opts.AttemptsPerUnit, opts.BurnIn, deriveSeed(seed, uint64(i)))
		if err != nil {
			// Chain-level contract violations surface unchanged.
			return 0, nil, err
		}
		xs[i] = 1 / float64(n)
		ys[i] = mu
	}

	_, muInf, err = Fit(xs, ys)
	if err != nil {
		// Distinct lengths give distinct 1/n values, so only duplicated
		// lengths can land here.
		return 0, nil, err
	}

	return muInf, ys, nil
}
