// Package grid provides a bounds-safe walkability map for tile scenes and
// the 8-directional movement model built on top of it.
//
// What:
//
//   - Grid wraps a rectangular [][]bool matrix (true = walkable) with fixed
//     dimensions and mutable content.
//   - Out-of-bounds reads degrade to "not walkable"; out-of-bounds writes are
//     silent no-ops. The search loop above stays branch-free on the common path.
//   - Neighbors enumerates one-step moves: four cardinal (cost 1) and four
//     diagonal (cost √2), with corner cutting forbidden — a diagonal is offered
//     only when both flanking cardinal cells are open.
//
// Why:
//
//   - Scene routing: furniture and building footprints rasterized to blocked
//     cells, floors and roads walkable.
//   - Foundation for astar.Pathfinder, which consumes Neighbors verbatim.
//
// Complexity:
//
//   - New / From2D: O(W×H) time and memory.
//   - InBounds / IsWalkable / SetWalkable: O(1).
//   - Neighbors: O(1) (at most 8 candidates).
//
// Errors:
//
//   - ErrEmptyGrid: requested grid has no rows or no columns.
//   - ErrNonRectangular: input rows have differing lengths.
//
// Thread safety:
//
//   - A Grid may be mutated between queries but never concurrently with one;
//     synchronize externally if sharing across goroutines.
package grid
