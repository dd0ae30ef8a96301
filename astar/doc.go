// Package astar provides A* shortest-path search over a grid.Grid, plus a
// BFS-based nearest-walkable recovery for destinations that land on
// blocked cells.
//
// Overview:
//
//   - Pathfinder binds to exactly one grid (explicit construction, no
//     ambient state) and is stateless across calls: each query allocates
//     its own open list, closed set, and score maps.
//   - FindPath searches over integer cells with an octile heuristic while
//     accepting fractional endpoints — queries are rounded for the search
//     and the precise fractional destination is restored in the final
//     waypoint.
//   - The open list is a min-heap keyed on f = g + h with a deterministic
//     tie-break: lower h first, then earliest insertion. Identical queries
//     always return identical paths.
//   - NearestWalkable expands ring by ring from the rounded query cell and
//     returns the closest walkable cell in 8-connected step distance.
//   - RouteNear composes the two: route to the nearest walkable cell, then
//     append the true destination as one final, unvalidated waypoint.
//
// Failure modes are distinct sentinel errors rather than a single empty
// result:
//
//   - ErrStartBlocked: rounded start cell blocked or out of bounds.
//   - ErrGoalBlocked:  rounded goal cell blocked or out of bounds.
//   - ErrNoPath:       valid endpoints in disconnected regions, or the
//     cheapest route exceeds the WithMaxCost cap.
//
// Every failure also yields a nil Path, so callers that only test for
// emptiness retain the classic "empty path == no path" convenience.
//
// Performance and complexity:
//
//   - FindPath: O(V log V) time, O(V) memory, V = W×H (lazy decrease-key:
//     duplicates are pushed and stale entries skipped on pop).
//   - NearestWalkable: O(V) time and memory.
//
// Determinism:
//
//   - The heuristic uses the truncated constant 0.414 (√2 − 1 ≈ 0.4142…);
//     still admissible, so paths are minimum-cost, and tie patterns are
//     stable across runs.
//
// Thread safety:
//
//   - A Pathfinder may serve many goroutines only if the underlying grid is
//     not mutated meanwhile; synchronize grid mutation externally.
//
// See also:
//
//   - grid.Grid: the walkability map and 8-directional movement model.
//   - motion.Cursor: the standard consumer of a returned Path.
package astar
