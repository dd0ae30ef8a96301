package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/astar"
	"github.com/katalvlaran/gridnav/grid"
)

// chebyshev is the 8-connected ring distance between two cells.
func chebyshev(a, b grid.Cell) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		return dy
	}
	return dx
}

// ------------------------------------------------------------------------
// NearestWalkable
// ------------------------------------------------------------------------

func TestNearestWalkable_SelfWalkable(t *testing.T) {
	g := openGrid(t, 4, 4)
	p := finder(t, g)

	c, ok := p.NearestWalkable(2, 2)
	require.True(t, ok)
	assert.Equal(t, grid.Cell{X: 2, Y: 2}, c, "walkable query cell is its own answer")

	// Fractional queries round first.
	c, ok = p.NearestWalkable(2.4, 1.6)
	require.True(t, ok)
	assert.Equal(t, grid.Cell{X: 2, Y: 2}, c)
}

func TestNearestWalkable_BlockedCenter(t *testing.T) {
	g := openGrid(t, 3, 3)
	g.SetWalkable(1, 1, false)
	p := finder(t, g)

	c, ok := p.NearestWalkable(1, 1)
	require.True(t, ok)
	assert.Equal(t, 1, chebyshev(c, grid.Cell{X: 1, Y: 1}), "answer must come from the first ring")
	// North is first in the fixed direction order.
	assert.Equal(t, grid.Cell{X: 1, Y: 0}, c)
}

// TestNearestWalkable_MinimalRing blocks everything within one ring of the
// query and verifies the answer against a brute-force scan.
func TestNearestWalkable_MinimalRing(t *testing.T) {
	g := openGrid(t, 5, 5)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			g.SetWalkable(x, y, false)
		}
	}
	p := finder(t, g)
	query := grid.Cell{X: 2, Y: 2}

	c, ok := p.NearestWalkable(2, 2)
	require.True(t, ok)
	require.True(t, g.IsWalkable(c.X, c.Y))

	best := 1 << 30
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if g.IsWalkable(x, y) {
				if d := chebyshev(grid.Cell{X: x, Y: y}, query); d < best {
					best = d
				}
			}
		}
	}
	assert.Equal(t, best, chebyshev(c, query), "returned cell must be at minimal ring distance")
}

func TestNearestWalkable_NoneExists(t *testing.T) {
	g, err := grid.From2D([][]bool{
		{false, false},
		{false, false},
	})
	require.NoError(t, err)
	p := finder(t, g)

	_, ok := p.NearestWalkable(0, 0)
	assert.False(t, ok, "a grid with zero walkable cells has no answer")
}

func TestNearestWalkable_OutOfBounds(t *testing.T) {
	g := openGrid(t, 3, 3)
	p := finder(t, g)

	// Just outside: the expansion reaches the grid edge.
	c, ok := p.NearestWalkable(-1, 1)
	require.True(t, ok)
	assert.True(t, g.IsWalkable(c.X, c.Y))
	assert.Equal(t, 1, chebyshev(c, grid.Cell{X: -1, Y: 1}))

	// Far outside: the neighborhood never touches the grid.
	_, ok = p.NearestWalkable(100, 100)
	assert.False(t, ok)
}

// ------------------------------------------------------------------------
// RouteNear
// ------------------------------------------------------------------------

func TestRouteNear_DirectWhenPossible(t *testing.T) {
	g := openGrid(t, 5, 5)
	p := finder(t, g)

	direct, err := p.FindPath(0, 0, 4, 4)
	require.NoError(t, err)
	routed, err := p.RouteNear(0, 0, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, direct, routed, "walkable goals must route exactly like FindPath")
}

// TestRouteNear_GoalBlocked routes to the nearest walkable cell and appends
// the true, unvalidated destination as one final waypoint.
func TestRouteNear_GoalBlocked(t *testing.T) {
	g := openGrid(t, 5, 5)
	g.SetWalkable(4, 4, false)
	p := finder(t, g)

	path, err := p.RouteNear(0, 0, 4.3, 3.9)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(path), 2)

	last := path[len(path)-1]
	assert.Equal(t, astar.Waypoint{X: 4.3, Y: 3.9}, last, "true destination must be the final hop")

	// Everything before the final hop is a validated route.
	assertValidPath(t, g, 0, 0, path[:len(path)-1])
	prev := path[len(path)-2]
	assert.True(t, g.IsWalkable(int(prev.X), int(prev.Y)), "second-to-last waypoint must be walkable")
}

func TestRouteNear_StartBlockedNotRecovered(t *testing.T) {
	g := openGrid(t, 3, 3)
	g.SetWalkable(0, 0, false)
	p := finder(t, g)

	path, err := p.RouteNear(0, 0, 2, 2)
	assert.ErrorIs(t, err, astar.ErrStartBlocked)
	assert.Nil(t, path)
}

func TestRouteNear_DisconnectedGoalRegion(t *testing.T) {
	// A wall splits the grid; the goal side is walkable but unreachable, and
	// its nearest walkable cell is itself, so recovery cannot help.
	g := openGrid(t, 5, 5)
	for y := 0; y < 5; y++ {
		g.SetWalkable(2, y, false)
	}
	p := finder(t, g)

	path, err := p.RouteNear(0, 2, 4, 2)
	assert.ErrorIs(t, err, astar.ErrNoPath, "recovery must surface the original failure")
	assert.Nil(t, path)
}
