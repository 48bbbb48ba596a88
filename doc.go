// Package saw estimates combinatorial and geometric properties of
// self-avoiding walks (SAWs) on the 2D square lattice with Monte Carlo
// methods of increasing sophistication.
//
// 🚀 What is saw-monte-carlo?
//
//	A pure-Go library for the two classic SAW observables — the walk
//	count c_L and the connective constant μ — built from:
//	  • lattice/     — shared geometry: sites, moves, the 8-element
//	    symmetry group, occupancy sets
//	  • enumerate/   — exact counts, the naive estimator, and the
//	    published c_L reference table (validation oracles)
//	  • rosenbluth/  — the biased growth walker and the vanilla
//	    Rosenbluth estimator of c_L
//	  • perm/        — the Pruned-Enriched Rosenbluth Method with two
//	    selectable population-control policies
//	  • pivot/       — the pivot Markov chain over fixed-length walks
//	    with an end-of-chain μ observable
//	  • extrapolate/ — finite-size extrapolation of pivot estimates
//	    to the infinite-length μ
//
// ✨ Why this library?
//
//   - Deterministic by contract — every sampler reproduces bit-identical
//     results from a seed; no time-based randomness anywhere
//   - Outcomes, not exceptions — trapped walks, pruned branches and
//     rejected pivots are values; only caller-contract violations error
//   - Hot-path discipline — O(1) occupancy probes, shorter-side pivot
//     transforms, a work-stack PERM engine with an undo-log occupancy
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII example — one pivot move of a 4-step chain about p=2:
//
//	before:  ●──●──●──●──●        after rot90:  ●──●──●
//	        (0,0)      (4,0)                          │
//	                                                  ●
//	                                                  │
//	                                                  ●  (2,2)
//
// Estimating c_10 three ways and μ by extrapolation:
//
//	exact, _ := enumerate.Count(10)                              // 44100
//	naive, _ := enumerate.EstimateCL(10, 200000, 42)             // crude
//	ros, _   := rosenbluth.EstimateCL(10, 200000, 42)            // better
//	cl, _    := perm.EstimateCL(10, 200000, perm.DefaultOptions(), 42)
//	mu, _, _ := extrapolate.Mu([]int{50, 100, 200}, extrapolate.DefaultOptions())
//
// Dive into each package's doc.go for contracts, complexity notes, and
// the exact population-control and pivot protocols.
package saw
