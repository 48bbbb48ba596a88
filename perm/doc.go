// Package perm implements the Pruned-Enriched Rosenbluth Method (PERM)
// for estimating the self-avoiding-walk count c_L.
//
// What:
//
//   - Stats: per-length running accumulators (visit counts and weight
//     sums for lengths 0..L) driving the population-control decisions.
//     Explicitly owned by the caller — reuse it across tours within one
//     estimation run, reset it (or allocate a fresh one) between runs.
//   - RunTour: one complete tour — a root-to-completion traversal of the
//     branching growth process, returning the summed weight of every
//     branch that reached the target length.
//   - EstimateCL: N tours against a fresh Stats; the estimate is the
//     total completed weight divided by N (dead branches contribute an
//     implicit zero).
//
// Population control (selectable via Options.Policy):
//
//   - CloneStochastic: compare the branch weight against the running
//     average at the current length; randomized rounding of the ratio
//     decides how many clones continue (0 ⇒ pruned). Clones restart
//     from the average weight, so weight is redistributed, never
//     created — the estimator expectation is untouched.
//   - CloneThreshold: classic clone/kill bands W± = cPlus/cMinus times
//     the local average at the next length. Weight above W+ splits
//     evenly among floor(w/W+) clones; weight below W− survives a coin
//     flip with doubled weight; anything between continues unchanged.
//     Defaults cMinus=0.2, cPlus=3.0.
//
// The traversal is an explicit work stack, not recursion: target
// lengths in the hundreds (or thousands) cannot exhaust the goroutine
// stack. A single occupancy arena is shared by the whole tour; sites
// are pushed on entering a branch and popped on leaving it, so cloning
// never copies the occupancy.
//
// Outcomes vs errors:
//
//   - Trapped branches and pruned branches are expected, frequent
//     outcomes — zero contributions, never errors.
//
// Errors (sentinel):
//
//   - ErrNegativeLength: target length L < 0.
//   - ErrNoTours: tour count < 1.
//   - ErrNilStats: RunTour received a nil Stats.
//   - ErrStatsLength: Stats does not cover lengths 0..L.
//   - ErrBadThresholds: cMinus/cPlus not 0 < cMinus < cPlus.
//   - ErrUnknownPolicy: Options.Policy is not a declared policy.
//
// Complexity:
//
//   - RunTour: O(L·B) time where B is the (policy-bounded) branch count;
//     O(L + B) memory for the work stack, O(L) for the occupancy arena.
//   - EstimateCL: O(tours·L·B) time.
//
// Determinism: same seed ⇒ identical branching decisions and identical
// estimate.
package perm
