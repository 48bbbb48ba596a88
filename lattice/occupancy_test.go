package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyizhak/saw-monte-carlo/lattice"
)

// TestOccupancy_Basics covers Has/Add/Remove/Len semantics.
func TestOccupancy_Basics(t *testing.T) {
	occ := lattice.NewOccupancy(4)
	c := lattice.Coord{X: 1, Y: -1}

	assert.False(t, occ.Has(c), "fresh occupancy must be empty")
	assert.Equal(t, 0, occ.Len())

	occ.Add(c)
	assert.True(t, occ.Has(c))
	assert.Equal(t, 1, occ.Len())

	occ.Add(c) // idempotent
	assert.Equal(t, 1, occ.Len(), "double Add must not grow the set")

	occ.Remove(c)
	assert.False(t, occ.Has(c))
	assert.Equal(t, 0, occ.Len())

	occ.Remove(c) // removing an absent site is a no-op
	assert.Equal(t, 0, occ.Len())
}

// TestOccupancy_FreeNeighbors checks the canonical order and the
// filtering of occupied sites.
func TestOccupancy_FreeNeighbors(t *testing.T) {
	occ := lattice.NewOccupancy(4)
	occ.Add(lattice.Origin)

	// All four neighbors of the origin are free on an otherwise empty lattice.
	free := occ.FreeNeighbors(lattice.Origin, nil)
	require.Len(t, free, 4)
	assert.Equal(t, []lattice.Coord{
		{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	}, free, "neighbors must come back in Moves order")

	// Occupying two neighbors removes exactly those candidates.
	occ.Add(lattice.Coord{X: 1, Y: 0})
	occ.Add(lattice.Coord{X: 0, Y: -1})
	free = occ.FreeNeighbors(lattice.Origin, free[:0])
	assert.Equal(t, []lattice.Coord{{X: -1, Y: 0}, {X: 0, Y: 1}}, free)
}

// TestOccupancyOf verifies the shadow-set invariant: the occupancy of a
// walk holds exactly the walk's sites.
func TestOccupancyOf(t *testing.T) {
	w := lattice.Straight(5)
	occ := lattice.OccupancyOf(w)

	require.Equal(t, len(w), occ.Len(), "occupancy size must equal walk length + 1")
	for _, c := range w {
		assert.True(t, occ.Has(c), "site (%d,%d) must be occupied", c.X, c.Y)
	}
}

// TestWalk_SelfAvoiding covers both outcomes.
func TestWalk_SelfAvoiding(t *testing.T) {
	assert.True(t, lattice.Straight(10).SelfAvoiding())

	loop := lattice.Walk{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0},
	}
	assert.False(t, loop.SelfAvoiding(), "closed loop revisits the origin")
}

// TestStraight pins the shape of the initial chain state.
func TestStraight(t *testing.T) {
	w := lattice.Straight(3)
	require.Len(t, w, 4)
	assert.Equal(t, lattice.Walk{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
	}, w)

	assert.Len(t, lattice.Straight(-2), 1, "negative n collapses to the origin walk")
}
