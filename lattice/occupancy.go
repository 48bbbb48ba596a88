// Package lattice — occupancy set over lattice sites.
//
// Occupancy mirrors the set of sites currently held by a walk and
// answers collision queries in O(1) expected time. Both growth samplers
// and the pivot chain rely on the invariant that the occupancy always
// equals the exact site set of the walk it shadows.
package lattice

// Occupancy is a set of occupied lattice sites.
type Occupancy map[Coord]struct{}

// NewOccupancy returns an empty occupancy with capacity for n sites.
// Complexity: O(1) amortized.
func NewOccupancy(n int) Occupancy {
	if n < 0 {
		n = 0
	}

	return make(Occupancy, n)
}

// Has reports whether site c is occupied.
// Complexity: O(1) expected.
func (o Occupancy) Has(c Coord) bool {
	_, ok := o[c]
	return ok
}

// Add marks site c as occupied.
// Complexity: O(1) expected.
func (o Occupancy) Add(c Coord) {
	o[c] = struct{}{}
}

// Remove clears site c. Removing an absent site is a no-op.
// Complexity: O(1) expected.
func (o Occupancy) Remove(c Coord) {
	delete(o, c)
}

// Len returns the number of occupied sites.
// Complexity: O(1).
func (o Occupancy) Len() int {
	return len(o)
}

// FreeNeighbors appends to buf every unoccupied axis neighbor of pos,
// in the canonical Moves order, and returns the extended slice.
// Passing a reused buf[:0] keeps the hot path allocation-free.
// Complexity: O(1) — exactly four probes.
func (o Occupancy) FreeNeighbors(pos Coord, buf []Coord) []Coord {
	var (
		m Coord
		c Coord
	)
	for _, m = range Moves {
		c = pos.Add(m)
		if !o.Has(c) {
			buf = append(buf, c)
		}
	}

	return buf
}

// OccupancyOf builds the occupancy shadowing walk w.
// Complexity: O(n) time and memory.
func OccupancyOf(w Walk) Occupancy {
	o := NewOccupancy(len(w))
	var c Coord
	for _, c = range w {
		o.Add(c)
	}

	return o
}
