// Package rosenbluth grows self-avoiding walks step by step with the
// Rosenbluth bias and estimates the walk count c_L from the resulting
// importance weights.
//
// What:
//
//   - Extend: one biased growth step — enumerate free neighbors, report
//     the branching factor, move to a uniformly chosen free site.
//   - Grow: drive Extend for L steps from the origin, multiplying the
//     running weight by the branching factor at each step; a trapped
//     walk yields weight 0.
//   - EstimateCL: average Grow's final weight over many independent
//     trials — an unbiased estimator of c_L, because the per-step weight
//     factor exactly cancels the non-uniform selection probability.
//
// Why:
//
//   - Uniformly sampled random walks almost never stay self-avoiding at
//     useful lengths; the Rosenbluth bias keeps every attempt alive
//     until it is genuinely trapped and corrects the bias by weight.
//   - The Extend primitive is reused verbatim as the growth step of the
//     pruned-enriched sampler in package perm.
//
// Outcomes vs errors:
//
//   - A trapped walk (no free neighbor) is an expected, frequent outcome
//     and is reported as a value (trapped=true, weight 0), never as an
//     error.
//
// Errors (sentinel):
//
//   - ErrNegativeLength: target length L < 0.
//   - ErrNoTrials: trial count < 1 (the estimator would divide by zero).
//
// Complexity:
//
//   - Extend: O(1) — four occupancy probes.
//   - Grow: O(L) time, O(L) memory for the occupancy.
//   - EstimateCL: O(trials·L) time, O(L) memory per trial.
//
// Determinism: same seed ⇒ identical walks and identical estimate.
package rosenbluth
