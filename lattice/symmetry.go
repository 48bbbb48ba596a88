// Package lattice — the point-symmetry group of the square lattice.
//
// The eight isometries fixing a lattice site are the four rotations by
// multiples of 90° and the four axis/diagonal reflections. They act on
// relative offsets (dx, dy); About anchors the action at a pivot site.
package lattice

// Symmetry identifies one of the eight point symmetries of the square
// lattice. The zero value is the identity.
type Symmetry int

const (
	// Identity maps (x, y) to (x, y).
	Identity Symmetry = iota
	// Rotate90 rotates (x, y) by 90° counterclockwise: (−y, x).
	Rotate90
	// Rotate180 rotates (x, y) by 180°: (−x, −y).
	Rotate180
	// Rotate270 rotates (x, y) by 270° counterclockwise: (y, −x).
	Rotate270
	// ReflectX reflects (x, y) across the x-axis: (x, −y).
	ReflectX
	// ReflectY reflects (x, y) across the y-axis: (−x, y).
	ReflectY
	// ReflectDiag reflects (x, y) across the line y = x: (y, x).
	ReflectDiag
	// ReflectAntidiag reflects (x, y) across the line y = −x: (−y, −x).
	ReflectAntidiag

	// GroupOrder is the number of symmetries; valid Symmetry values are
	// 0 .. GroupOrder-1, suitable for uniform random selection.
	GroupOrder = 8
)

// Apply maps the relative offset d through the symmetry.
// Unknown Symmetry values act as the identity.
// Complexity: O(1).
func (s Symmetry) Apply(d Coord) Coord {
	switch s {
	case Rotate90:
		return Coord{X: -d.Y, Y: d.X}
	case Rotate180:
		return Coord{X: -d.X, Y: -d.Y}
	case Rotate270:
		return Coord{X: d.Y, Y: -d.X}
	case ReflectX:
		return Coord{X: d.X, Y: -d.Y}
	case ReflectY:
		return Coord{X: -d.X, Y: d.Y}
	case ReflectDiag:
		return Coord{X: d.Y, Y: d.X}
	case ReflectAntidiag:
		return Coord{X: -d.Y, Y: -d.X}
	default:
		return d
	}
}

// About applies the symmetry to c anchored at the pivot site:
// pivot + s(c − pivot). Pivot-anchored application is the primitive of
// the pivot-move sampler.
// Complexity: O(1).
func (s Symmetry) About(pivot, c Coord) Coord {
	return pivot.Add(s.Apply(c.Sub(pivot)))
}

// String returns a short stable name for the symmetry.
func (s Symmetry) String() string {
	switch s {
	case Identity:
		return "identity"
	case Rotate90:
		return "rot90"
	case Rotate180:
		return "rot180"
	case Rotate270:
		return "rot270"
	case ReflectX:
		return "reflectX"
	case ReflectY:
		return "reflectY"
	case ReflectDiag:
		return "reflectDiag"
	case ReflectAntidiag:
		return "reflectAntidiag"
	default:
		return "unknown"
	}
}
