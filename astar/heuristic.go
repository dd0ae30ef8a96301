package astar

// octileWeight is the diagonal correction term of the octile distance,
// √2 − 1 truncated to three decimals. The truncated constant is part of the
// cost model contract: it keeps the heuristic admissible (it slightly
// underestimates) while reproducing the reference tie behavior.
const octileWeight = 0.414

// Octile returns the octile distance between two cells: the exact cost of
// the cheapest route on an empty grid under the 1 / √2 movement model,
// estimated as max(|dx|,|dy|) + octileWeight·min(|dx|,|dy|).
//
// Octile is admissible and consistent for grid.CardinalCost and
// grid.DiagonalCost, which makes A* return minimum-cost paths.
// Complexity: O(1).
func Octile(x0, y0, x1, y1 int) float64 {
	dx, dy := x1-x0, y1-y0
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		dx, dy = dy, dx
	}

	return float64(dx) + octileWeight*float64(dy)
}
