package astar

import (
	"errors"

	"github.com/katalvlaran/gridnav/grid"
)

// NearestWalkable returns the walkable cell closest to the given (possibly
// fractional) position, measured in 8-connected BFS ring distance.
//
// The query position is rounded to a cell first; if that cell is walkable it
// is returned immediately. Otherwise the search expands ring by ring over
// the full 8-neighborhood — no corner-cutting restriction applies, since
// this is a proximity search rather than a route — and returns the first
// walkable cell encountered.
//
// The second return value is false when the bounded expansion exhausts
// without finding a walkable cell: the grid has no walkable cells, or the
// query lies so far outside the grid that its neighborhood never touches it.
//
// Complexity: O(W×H) time and memory worst case.
func (p *Pathfinder) NearestWalkable(x, y float64) (grid.Cell, bool) {
	start := roundCell(x, y)
	if p.grid.IsWalkable(start.X, start.Y) {
		return start, true
	}

	offsets := grid.Offsets()
	visited := map[grid.Cell]bool{start: true}
	queue := []grid.Cell{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			v := grid.Cell{X: u.X + d[0], Y: u.Y + d[1]}
			if visited[v] || !p.grid.InBounds(v.X, v.Y) {
				continue
			}
			if p.grid.IsWalkable(v.X, v.Y) {
				return v, true
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}

	return grid.Cell{}, false
}

// RouteNear is the tolerant variant of FindPath for destinations that may
// round into blocked cells (a seat computed inside a furniture footprint,
// a doorway on a wall tile).
//
// If the direct query fails with ErrGoalBlocked or ErrNoPath, RouteNear
// reroutes to the nearest walkable cell and appends the true destination as
// one final extra waypoint. That last hop is NOT validated for walkability —
// a deliberate precision/simplicity trade-off — so the routing guarantees
// end at the second-to-last waypoint.
//
// ErrStartBlocked is never recovered; an agent standing inside a wall is a
// caller bug. The original failure is returned when no recovery is possible.
func (p *Pathfinder) RouteNear(startX, startY, endX, endY float64) (Path, error) {
	path, err := p.FindPath(startX, startY, endX, endY)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, ErrGoalBlocked) && !errors.Is(err, ErrNoPath) {
		return nil, err
	}

	near, ok := p.NearestWalkable(endX, endY)
	if !ok {
		return nil, err
	}
	path, nearErr := p.FindPath(startX, startY, float64(near.X), float64(near.Y))
	if nearErr != nil {
		return nil, err
	}

	return append(path, Waypoint{X: endX, Y: endY}), nil
}
