// Package perm defines sentinel errors, the population-control policy
// enum, and the Options struct for the PERM estimator.
package perm

import "errors"

// Sentinel errors for PERM entry points. Domain outcomes (trapped or
// pruned branches) are zero-weight values, never errors.
var (
	// ErrNegativeLength indicates a target walk length below zero.
	ErrNegativeLength = errors.New("perm: target length must be non-negative")

	// ErrNoTours indicates a non-positive tour count; the estimator
	// average would be undefined.
	ErrNoTours = errors.New("perm: tour count must be positive")

	// ErrNilStats indicates RunTour was handed a nil statistics accumulator.
	ErrNilStats = errors.New("perm: stats must be non-nil")

	// ErrStatsLength indicates the statistics accumulator does not cover
	// every length 0..L of the requested tour.
	ErrStatsLength = errors.New("perm: stats must cover lengths 0..L")

	// ErrBadThresholds indicates the clone/kill thresholds violate
	// 0 < cMinus < cPlus.
	ErrBadThresholds = errors.New("perm: thresholds must satisfy 0 < cMinus < cPlus")

	// ErrUnknownPolicy indicates Options.Policy is not a declared policy.
	ErrUnknownPolicy = errors.New("perm: unknown population-control policy")
)

// Policy selects the population-control strategy applied at every
// growth node. The two families tune variance differently and are not
// numerically equivalent; neither is canonical, so both are exposed.
type Policy int

const (
	// CloneStochastic applies unbiased randomized rounding of the
	// weight-to-average ratio: copies = floor(R) plus one more with
	// probability frac(R); zero copies prunes the branch.
	CloneStochastic Policy = iota

	// CloneThreshold applies clone/kill bands around the local average:
	// enrich above cPlus·avg, kill-or-double below cMinus·avg.
	CloneThreshold
)

// Options configures a PERM run.
//
// Policy – population-control strategy (CloneStochastic or CloneThreshold).
// CMinus – lower threshold multiplier; used by CloneThreshold only.
// CPlus  – upper threshold multiplier; used by CloneThreshold only.
//
// CMinus/CPlus must satisfy 0 < CMinus < CPlus when Policy is
// CloneThreshold; they are ignored by CloneStochastic.
type Options struct {
	Policy Policy
	CMinus float64
	CPlus  float64
}

// DefaultOptions returns the canonical configuration:
// CloneStochastic policy with the conventional threshold pair
// (cMinus=0.2, cPlus=3.0) prefilled for callers switching to
// CloneThreshold.
func DefaultOptions() Options {
	return Options{
		Policy: CloneStochastic,
		CMinus: 0.2,
		CPlus:  3.0,
	}
}

// validate checks option consistency; thresholds are only enforced for
// the policy that reads them.
// Complexity: O(1).
func (o Options) validate() error {
	switch o.Policy {
	case CloneStochastic:
		return nil
	case CloneThreshold:
		if o.CMinus <= 0 || o.CPlus <= o.CMinus {
			return ErrBadThresholds
		}
		return nil
	default:
		return ErrUnknownPolicy
	}
}
