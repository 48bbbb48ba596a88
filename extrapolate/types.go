// Package extrapolate defines sentinel errors and the Options struct
// for the finite-size extrapolation driver.
package extrapolate

import "errors"

// Sentinel errors for the regression and the driver.
var (
	// ErrLengthMismatch indicates x and y slices of differing length.
	ErrLengthMismatch = errors.New("extrapolate: x and y must have the same length")

	// ErrFewPoints indicates fewer than two data points or chain lengths.
	ErrFewPoints = errors.New("extrapolate: at least two points are required")

	// ErrDegenerateFit indicates all x values coincide, leaving the
	// slope undefined.
	ErrDegenerateFit = errors.New("extrapolate: x values must not all coincide")

	// ErrBadAttempts indicates a non-positive attempts-per-unit budget.
	ErrBadAttempts = errors.New("extrapolate: attempts per unit length must be positive")
)

// Options configures the Mu driver.
//
// AttemptsPerUnit – pivot attempts per unit of chain length; a chain of
// length n runs n·AttemptsPerUnit proposals, keeping the effective
// sample count comparable across lengths.
// BurnIn          – equilibration proposals discarded at every length.
// Seed            – base seed; per-length streams are derived from it.
type Options struct {
	AttemptsPerUnit int
	BurnIn          int
	Seed            int64
}

// DefaultOptions returns the conventional driver configuration:
// 2000 attempts per unit length with a 10000-proposal burn-in.
func DefaultOptions() Options {
	return Options{
		AttemptsPerUnit: 2000,
		BurnIn:          10000,
		Seed:            0,
	}
}
