// Package pivot defines the sentinel errors of the chain sampler.
package pivot

import "errors"

// Sentinel errors for sampler entry points. Rejected pivot moves are
// ordinary false results, never errors.
var (
	// ErrChainTooShort indicates a chain length below 1; the terminal
	// observable needs at least one step.
	ErrChainTooShort = errors.New("pivot: chain length must be at least 1")

	// ErrNegativeBurnIn indicates a burn-in count below zero.
	ErrNegativeBurnIn = errors.New("pivot: burn-in must be non-negative")

	// ErrNoSamples indicates the attempt count does not exceed the
	// burn-in, so the observable average would be undefined.
	ErrNoSamples = errors.New("pivot: attempt count must exceed burn-in")
)
