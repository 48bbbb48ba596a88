// Package lattice defines the core value types shared by all samplers:
// lattice sites, unit moves, and the walk sequence.
package lattice

// Coord is a single site on the 2D square lattice ℤ².
// It is an immutable value type: equality and map hashing are by value.
type Coord struct {
	X, Y int
}

// Add returns the site c + d (componentwise).
// Complexity: O(1).
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the relative offset c − d (componentwise).
// Complexity: O(1).
func (c Coord) Sub(d Coord) Coord {
	return Coord{X: c.X - d.X, Y: c.Y - d.Y}
}

// Origin is the conventional walk start site (0,0).
var Origin = Coord{X: 0, Y: 0}

// Moves lists the four axis-aligned unit steps of the square lattice,
// in the fixed order +x, −x, +y, −y. The order is part of the package
// contract: samplers index into it, so reordering would change every
// seeded decision sequence.
var Moves = [4]Coord{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}

// Walk is an ordered sequence of lattice sites. A walk of n steps holds
// n+1 sites; Walk[0] is the origin by convention for chain samplers.
type Walk []Coord

// SelfAvoiding reports whether no site appears twice in w.
// Complexity: O(n) time, O(n) memory.
func (w Walk) SelfAvoiding() bool {
	seen := make(map[Coord]struct{}, len(w))
	var (
		c  Coord
		ok bool
	)
	for _, c = range w {
		if _, ok = seen[c]; ok {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}

// Straight returns the trivial n-step walk (0,0), (1,0), …, (n,0).
// For n < 0 it returns the zero-step walk containing only the origin.
// Complexity: O(n) time and memory.
func Straight(n int) Walk {
	if n < 0 {
		n = 0
	}
	w := make(Walk, n+1)
	var i int
	for i = 0; i <= n; i++ {
		w[i] = Coord{X: i, Y: 0}
	}

	return w
}
