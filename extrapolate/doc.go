// Package extrapolate turns finite-length pivot estimates into an
// infinite-length connective-constant estimate.
//
// What:
//
//   - Fit: ordinary least-squares line through (x, y) points.
//   - Mu: run the pivot sampler at several chain lengths, regress the
//     mean observable against 1/length, and read μ(∞) off the
//     intercept — finite-size corrections enter at first order in 1/n,
//     so the linear fit removes the leading error term.
//
// Errors (sentinel):
//
//   - ErrLengthMismatch: x and y slices differ in length.
//   - ErrFewPoints: fewer than two points (or chain lengths) supplied.
//   - ErrDegenerateFit: all x values coincide; the slope is undefined.
//   - ErrBadAttempts: non-positive attempts-per-unit budget.
//   - Chain-level sentinels from package pivot are forwarded as-is.
//
// Complexity:
//
//   - Fit: O(k) for k points.
//   - Mu: dominated by the pivot runs — O(Σ attempts·n/2).
//
// Determinism: per-length seeds are derived from Options.Seed with a
// SplitMix64 mix, so the whole extrapolation is reproducible from one
// seed.
package extrapolate
