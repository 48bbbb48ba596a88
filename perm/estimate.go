// Package perm — the estimation driver.
package perm

// EstimateCL estimates the self-avoiding-walk count c_L by running
// tours independent PERM tours against one fresh Stats accumulator and
// dividing the total completed weight by the number of tours — not by
// the number of completed branches: tours that die everywhere
// contribute an implicit zero.
//
// Policy: seed==0 ⇒ deterministic default stream (see rng.go).
//
// Returns ErrNegativeLength, ErrNoTours, or an Options sentinel on
// contract violations.
//
// Complexity: O(tours·L·B) time, O(L) memory.
func EstimateCL(L, tours int, opts Options, seed int64) (float64, error) {
	if L < 0 {
		return 0, ErrNegativeLength
	}
	if tours < 1 {
		return 0, ErrNoTours
	}
	if err := opts.validate(); err != nil {
		return 0, err
	}

	var (
		stats = NewStats(L)
		rng   = rngFromSeed(seed)
		total float64
		w     float64
		err   error
		i     int
	)
	for i = 0; i < tours; i++ {
		// Inputs were validated above; RunTour cannot fail here.
		w, err = RunTour(L, stats, opts, rng)
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total / float64(tours), nil
}
