// Package astar implements A* shortest-path search over a walkability grid
// with an octile heuristic and a deterministic open-list ordering.
package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridnav/grid"
)

// Pathfinder answers path queries against exactly one grid. It holds a
// non-owning reference: the caller that built the grid may mutate it between
// queries (never concurrently with one). A Pathfinder keeps no state across
// calls — open and closed sets are local to each FindPath invocation — so a
// single instance serves the grid for its whole lifetime.
type Pathfinder struct {
	grid *grid.Grid
	opts Options
}

// New constructs a Pathfinder bound to g.
// Returns ErrNilGrid if g is nil.
func New(g *grid.Grid, opts ...Option) (*Pathfinder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Pathfinder{grid: g, opts: cfg}, nil
}

// FindPath computes the cheapest walkable route between two positions.
//
// Inputs may be fractional (agents stand at sub-tile offsets); they are
// rounded to the nearest integer to obtain the cells searched, while the
// original fractional destination is substituted back into the final
// waypoint so the caller arrives at the precise position it asked for.
//
// Returns:
//
//   - ErrStartBlocked if the rounded start cell is blocked or out of bounds.
//   - ErrGoalBlocked if the rounded goal cell is blocked or out of bounds.
//   - ErrNoPath if no walkable route connects the two cells, or the
//     cheapest route exceeds Options.MaxCost.
//   - A one-element Path {endX, endY} when both positions round to the
//     same cell.
//   - Otherwise the minimum-cost Path, excluding the start cell, ending
//     at {endX, endY}.
//
// On every failure the returned Path is nil.
//
// Complexity: O(V log V) time with V = W×H cells, O(V) memory.
func (p *Pathfinder) FindPath(startX, startY, endX, endY float64) (Path, error) {
	start := roundCell(startX, startY)
	goal := roundCell(endX, endY)

	if !p.grid.IsWalkable(start.X, start.Y) {
		return nil, ErrStartBlocked
	}
	if !p.grid.IsWalkable(goal.X, goal.Y) {
		return nil, ErrGoalBlocked
	}
	if start == goal {
		return Path{{X: endX, Y: endY}}, nil
	}

	r := &runner{
		grid:    p.grid,
		goal:    goal,
		maxCost: p.opts.MaxCost,
		gScore:  map[grid.Cell]float64{start: 0},
		parent:  make(map[grid.Cell]grid.Cell),
		closed:  make(map[grid.Cell]bool),
	}
	r.push(start, 0)

	cells, ok := r.search(start)
	if !ok {
		return nil, ErrNoPath
	}

	path := make(Path, len(cells))
	for i, c := range cells {
		path[i] = Waypoint{X: float64(c.X), Y: float64(c.Y)}
	}
	path[len(path)-1] = Waypoint{X: endX, Y: endY}

	return path, nil
}

// roundCell maps a fractional query position to its grid cell.
func roundCell(x, y float64) grid.Cell {
	return grid.Cell{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// runner holds the mutable state of a single A* execution.
type runner struct {
	grid    *grid.Grid              // read-only during the search
	goal    grid.Cell               // target cell
	maxCost float64                 // f cap from Options.MaxCost
	gScore  map[grid.Cell]float64   // best known cost from start
	parent  map[grid.Cell]grid.Cell // predecessor on the cheapest route
	closed  map[grid.Cell]bool      // finalized cells, never revisited
	open    openPQ                  // min-heap on f, then h, then insertion
	seq     int                     // insertion counter for the tie-break
}

// push inserts a cell into the open list with the given accumulated cost.
// Lazy decrease-key: stale duplicates stay in the heap and are skipped on
// pop via the closed set.
func (r *runner) push(c grid.Cell, g float64) {
	h := Octile(c.X, c.Y, r.goal.X, r.goal.Y)
	heap.Push(&r.open, &openItem{cell: c, g: g, h: h, f: g + h, seq: r.seq})
	r.seq++
}

// search runs the main A* loop.
//
// Loop termination:
//
//   - success when the popped cell is the goal;
//   - failure when the open list empties, or the cheapest remaining f
//     exceeds maxCost (nothing better can follow under a consistent
//     heuristic).
func (r *runner) search(start grid.Cell) ([]grid.Cell, bool) {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)

		// Skip stale duplicates left behind by lazy decrease-key.
		if r.closed[item.cell] {
			continue
		}
		if item.f > r.maxCost {
			break
		}
		if item.cell == r.goal {
			return r.reconstruct(start), true
		}
		r.closed[item.cell] = true
		r.relax(item.cell)
	}

	return nil, false
}

// relax attempts to improve the recorded cost of every walkable neighbor of
// u. Neighbor enumeration (including the corner-cutting rule for diagonals)
// is delegated to grid.Neighbors.
func (r *runner) relax(u grid.Cell) {
	for _, s := range r.grid.Neighbors(u.X, u.Y) {
		v := grid.Cell{X: s.X, Y: s.Y}
		if r.closed[v] {
			continue
		}
		tentative := r.gScore[u] + s.Cost
		if best, seen := r.gScore[v]; seen && tentative >= best {
			continue
		}
		r.gScore[v] = tentative
		r.parent[v] = u
		r.push(v, tentative)
	}
}

// reconstruct walks parent pointers from the goal back to start, reverses
// the chain, and drops the start cell.
func (r *runner) reconstruct(start grid.Cell) []grid.Cell {
	var chain []grid.Cell
	for at := r.goal; at != start; at = r.parent[at] {
		chain = append(chain, at)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}

// openItem is one entry of the open list: a cell plus its g, h, and f
// scores, and the insertion sequence number used as the final tie-break.
type openItem struct {
	cell grid.Cell
	g    float64
	h    float64
	f    float64
	seq  int
}

// openPQ is a min-heap of *openItem. Ordering is the documented
// deterministic rule: lower f first, ties broken by lower h (prefer nodes
// closer to the goal), then by earlier insertion.
type openPQ []*openItem

// Len returns the number of items in the heap.
func (pq openPQ) Len() int { return len(pq) }

// Less orders by f, then h, then insertion sequence.
func (pq openPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *openItem.
func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

// Pop removes and returns the last element; container/heap has already
// moved the minimum there.
func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
