// Package perm — per-length running statistics.
//
// Stats is the shared memory of a PERM estimation run: every node of
// every tour records its length and weight here, and every
// population-control decision reads the local running average back.
// It is an explicit, caller-owned value — never package state — so
// runs are reentrant and the reuse-vs-reset lifetime policy belongs to
// the caller.
package perm

// Stats accumulates, for each walk length 0..L, the number of visits
// ("tours" through that length) and the summed weight observed there.
type Stats struct {
	visits    []int64
	weightSum []float64
}

// NewStats returns a zeroed accumulator covering lengths 0..L.
// For L < 0 it covers only length 0.
// Complexity: O(L) memory.
func NewStats(L int) *Stats {
	if L < 0 {
		L = 0
	}

	return &Stats{
		visits:    make([]int64, L+1),
		weightSum: make([]float64, L+1),
	}
}

// MaxLength returns the largest length the accumulator covers.
// Complexity: O(1).
func (s *Stats) MaxLength() int {
	return len(s.visits) - 1
}

// Record adds one visit of weight w at length n.
// Complexity: O(1).
func (s *Stats) Record(n int, w float64) {
	s.visits[n]++
	s.weightSum[n] += w
}

// Visits returns the visit count recorded at length n.
// Complexity: O(1).
func (s *Stats) Visits(n int) int64 {
	return s.visits[n]
}

// WeightSum returns the summed weight recorded at length n.
// Complexity: O(1).
func (s *Stats) WeightSum(n int) float64 {
	return s.weightSum[n]
}

// Average returns the running average weight at length n and whether
// any history exists there; callers fall back to their own weight when
// ok is false (no history ⇒ no correction).
// Complexity: O(1).
func (s *Stats) Average(n int) (avg float64, ok bool) {
	if n < 0 || n >= len(s.visits) || s.visits[n] == 0 {
		return 0, false
	}

	return s.weightSum[n] / float64(s.visits[n]), true
}

// Reset zeroes all accumulators in place, starting a new estimation
// run without reallocating.
// Complexity: O(L).
func (s *Stats) Reset() {
	var i int
	for i = range s.visits {
		s.visits[i] = 0
		s.weightSum[i] = 0
	}
}
