// Package enumerate defines the sentinel errors of the baseline
// utilities.
package enumerate

import "errors"

// Sentinel errors for enumeration and reference lookups.
var (
	// ErrNegativeLength indicates a walk length below zero.
	ErrNegativeLength = errors.New("enumerate: length must be non-negative")

	// ErrNoTrials indicates a non-positive trial count.
	ErrNoTrials = errors.New("enumerate: trial count must be positive")

	// ErrUnknownLength indicates no exact walk count is tabulated for
	// the requested length.
	ErrUnknownLength = errors.New("enumerate: no exact value tabulated for this length")
)
