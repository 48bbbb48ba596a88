// Package rosenbluth defines the sentinel errors of the growth walker.
package rosenbluth

import "errors"

// Sentinel errors for estimator entry points. Domain outcomes (trapped
// walks) are values, not errors; only caller-contract violations fail.
var (
	// ErrNegativeLength indicates a target walk length below zero.
	ErrNegativeLength = errors.New("rosenbluth: target length must be non-negative")

	// ErrNoTrials indicates a non-positive trial count; the estimator
	// average would be undefined.
	ErrNoTrials = errors.New("rosenbluth: trial count must be positive")
)
