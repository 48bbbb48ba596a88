// Package pivot samples fixed-length self-avoiding walks with the
// pivot Markov chain and estimates the connective constant μ from an
// end-of-chain observable.
//
// What:
//
//   - Chain: the persistent sampler state — one n-step walk plus the
//     occupancy set shadowing it. Created as the straight walk
//     (0,0)…(n,0); mutated only by accepted pivot moves.
//   - Step: one Markov step — pick a pivot index and a lattice symmetry
//     uniformly, transform the shorter sub-chain about the pivot site,
//     accept iff the result is self-avoiding. Rejected proposals leave
//     the state bit-identical; both outcomes count as one attempt.
//   - Observe: of the three lattice directions at the walk's end that
//     do not step straight back, how many lead to a free site (0..3).
//   - Run: burn-in attempts for equilibration, then one observation per
//     attempt; the mean observable estimates μ at this chain length.
//
// Why:
//
//   - Growth samplers lose statistics exponentially with length; the
//     pivot chain mutates a single walk globally and equilibrates in
//     few accepted moves, making long chains affordable.
//   - Transforming the shorter side bounds the per-move cost by n/2 —
//     part of the algorithm's amortized-cost contract, not merely an
//     optimization.
//
// Validation is incremental: the old sub-chain's sites leave the
// occupancy, transformed sites enter one at a time, and the first
// collision rolls everything back. A rejected pivot is an expected,
// frequent outcome — a false return, never an error.
//
// Errors (sentinel):
//
//   - ErrChainTooShort: chain length n < 1 (the observable needs a
//     last step).
//   - ErrNegativeBurnIn: burn-in below zero.
//   - ErrNoSamples: attempt count does not exceed burn-in, leaving
//     nothing to average.
//
// Complexity:
//
//   - Step: O(min(p, n−p)) ≤ O(n/2) time, O(1) extra memory
//     (scratch buffers live on the Chain).
//   - Observe: O(1) — three occupancy probes.
//   - Run: O(attempts·n/2) time, O(n) memory.
//
// Determinism: same seed and n ⇒ bit-identical accept/reject sequences
// and identical estimates.
package pivot
