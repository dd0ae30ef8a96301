// Package grid defines core types, constants, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridnav.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the requested grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Movement costs for one step between adjacent cells.
const (
	// CardinalCost is the cost of a horizontal or vertical step.
	CardinalCost = 1.0
	// DiagonalCost is the cost of a diagonal step (√2).
	DiagonalCost = math.Sqrt2
)

// Cell identifies a single grid cell by its integer coordinates.
type Cell struct {
	X, Y int
}

// Step is one reachable move from a cell: the target coordinates and the
// cost of moving there under the 8-directional movement model.
type Step struct {
	X, Y int
	Cost float64
}

// direction describes one of the eight movement directions. Diagonal
// directions record the two cardinal offsets they pass between, so that
// adjacency checks can forbid corner cutting.
type direction struct {
	dx, dy   int
	cost     float64
	diagonal bool
}

// directions lists the eight moves in clockwise order starting north.
// The ordering is load-bearing for determinism: Neighbors and the BFS in
// astar.NearestWalkable visit candidates in exactly this sequence.
var directions = [8]direction{
	{dx: 0, dy: -1, cost: CardinalCost},                  // N
	{dx: 1, dy: -1, cost: DiagonalCost, diagonal: true},  // NE
	{dx: 1, dy: 0, cost: CardinalCost},                   // E
	{dx: 1, dy: 1, cost: DiagonalCost, diagonal: true},   // SE
	{dx: 0, dy: 1, cost: CardinalCost},                   // S
	{dx: -1, dy: 1, cost: DiagonalCost, diagonal: true},  // SW
	{dx: -1, dy: 0, cost: CardinalCost},                  // W
	{dx: -1, dy: -1, cost: DiagonalCost, diagonal: true}, // NW
}

// Offsets returns the eight (dx, dy) neighbor offsets in the fixed
// clockwise-from-north order used throughout gridnav.
func Offsets() [8][2]int {
	var out [8][2]int
	for i, d := range directions {
		out[i] = [2]int{d.dx, d.dy}
	}

	return out
}
