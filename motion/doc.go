// Package motion implements the standard consumer contract for paths
// produced by astar: a cursor that advances one index over the waypoint
// list per animation tick, moving at fixed speed × elapsed time, snapping
// to each waypoint within a small epsilon, and deriving one of eight
// compass facings from the movement delta for sprite orientation.
//
// The cursor is deliberately dumb — it does not re-validate walkability.
// Paths built with astar.RouteNear may end with one unvalidated waypoint,
// and the cursor walks it like any other; that caveat belongs to the
// routing contract, not to playback.
//
// Thread safety: a Cursor belongs to a single agent and a single goroutine.
package motion
