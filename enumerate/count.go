// Package enumerate — exact recursive enumeration.
package enumerate

import "github.com/hyizhak/saw-monte-carlo/lattice"

// Count returns the exact number of self-avoiding walks of length L on
// the square lattice, by depth-first enumeration from the origin.
// Returns ErrNegativeLength for L < 0.
//
// Complexity: proportional to the number of walks visited — roughly
// c_L ≈ μ^L — so this is practical for L ≲ 20 and is intended as a
// validation oracle, not a production counter.
func Count(L int) (int64, error) {
	if L < 0 {
		return 0, ErrNegativeLength
	}

	occ := lattice.NewOccupancy(L + 1)
	occ.Add(lattice.Origin)

	return countFrom(L, lattice.Origin, occ), nil
}

// countFrom counts completions of a partial walk ending at pos with
// remaining steps to take. The occupancy is maintained by push/pop
// around each recursive descent.
func countFrom(remaining int, pos lattice.Coord, occ lattice.Occupancy) int64 {
	if remaining == 0 {
		return 1
	}

	var (
		total int64
		m     lattice.Coord
		next  lattice.Coord
	)
	for _, m = range lattice.Moves {
		next = pos.Add(m)
		if occ.Has(next) {
			continue
		}
		occ.Add(next)
		total += countFrom(remaining-1, next, occ)
		occ.Remove(next)
	}

	return total
}
