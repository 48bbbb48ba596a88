// Package enumerate provides the exact and naive baselines the Monte
// Carlo estimators are validated against.
//
// What:
//
//   - Count: exact recursive enumeration of all self-avoiding walks of
//     length L (c_5 = 284 is the canonical cross-check oracle).
//   - EstimateCL: the naive unweighted estimator — sample uniform
//     random walks and scale the self-avoiding fraction by 4^L.
//   - Exact: tabulated exact values of c_L for L = 0..71.
//   - Deviation: relative error of an estimate against the table.
//
// Why:
//
//   - Every sophisticated sampler in this module (rosenbluth, perm,
//     pivot) needs a ground truth at small lengths; this package is
//     that ground truth and the illustrative baseline the biased
//     samplers improve upon.
//
// Errors (sentinel):
//
//   - ErrNegativeLength: length L < 0.
//   - ErrNoTrials: trial count < 1.
//   - ErrUnknownLength: no tabulated exact value for the requested
//     length — unlike the samplers' domain outcomes, this fails loudly.
//
// Complexity:
//
//   - Count: exponential, O(c_L) visited nodes; practical for L ≲ 20.
//   - EstimateCL: O(trials·L) time; the self-avoiding fraction decays
//     exponentially, so useful only at small L.
//   - Exact, Deviation: O(1).
package enumerate
