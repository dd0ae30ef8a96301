package grid

// Grid is a fixed-size, mutable-content walkability map. Dimensions are set
// at construction and never change; cell content may be toggled in place via
// SetWalkable as the scene layout evolves.
//
// Every accessor is bounds-checked: out-of-bounds reads report "not
// walkable" and out-of-bounds writes are silently ignored, so callers never
// branch on bounds separately and layout generators may emit coordinates
// slightly outside the grid without error.
//
// Grid is not safe for concurrent mutation; callers must serialize
// SetWalkable against in-flight queries.
type Grid struct {
	width, height int
	cells         [][]bool // indexed [y][x]
}

// New constructs a Grid of the given dimensions with every cell walkable.
// Returns ErrEmptyGrid unless width > 0 and height > 0.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]bool, height)
	for y := 0; y < height; y++ {
		row := make([]bool, width)
		for x := range row {
			row[x] = true
		}
		cells[y] = row
	}

	return &Grid{width: width, height: height, cells: cells}, nil
}

// From2D constructs a Grid from a non-empty, rectangular boolean matrix
// indexed [row=y][col=x], where true marks a walkable cell.
// It deep-copies the input so later mutation of the source slice has no effect.
// Returns ErrEmptyGrid if the matrix has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(walkable [][]bool) (*Grid, error) {
	if len(walkable) == 0 || len(walkable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walkable), len(walkable[0])
	for _, row := range walkable {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], walkable[y])
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsWalkable reports whether (x, y) is in bounds and walkable.
// Out-of-bounds coordinates are always "not walkable", never an error.
// Complexity: O(1).
func (g *Grid) IsWalkable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x]
}

// SetWalkable updates the walkability of (x, y). Out-of-bounds writes are
// a no-op: layout rasterizers may compute footprints that overhang the grid.
// Complexity: O(1).
func (g *Grid) SetWalkable(x, y int, walkable bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = walkable
}

// Neighbors returns the walkable cells reachable in one step from (x, y),
// each tagged with its movement cost, in the fixed clockwise-from-north
// direction order.
//
// Cardinal steps cost CardinalCost; diagonal steps cost DiagonalCost and
// are offered only when both flanking cardinal cells are independently
// walkable. This forbids cutting across a wall corner even when the
// diagonal target itself is open.
//
// Complexity: O(1) — at most 8 candidates.
func (g *Grid) Neighbors(x, y int) []Step {
	steps := make([]Step, 0, 8)
	for _, d := range directions {
		nx, ny := x+d.dx, y+d.dy
		if !g.IsWalkable(nx, ny) {
			continue
		}
		if d.diagonal && !(g.IsWalkable(x+d.dx, y) && g.IsWalkable(x, y+d.dy)) {
			continue
		}
		steps = append(steps, Step{X: nx, Y: ny, Cost: d.cost})
	}

	return steps
}
