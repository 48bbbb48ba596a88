// Package extrapolate - per-length seed derivation.
//
// The driver runs one pivot chain per length; each gets an independent
// deterministic stream derived from the base seed, so reordering or
// subsetting the lengths never correlates the chains.
package extrapolate

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using the canonical SplitMix64 finalizer; small input
// changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
