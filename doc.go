// Package gridnav is a small toolkit for routing agents across tile grids —
// walkability maps, 8-directional A* search, and the plumbing around them.
//
// 🚀 What is gridnav?
//
//	A focused library that brings together:
//		• grid/   — bounds-safe walkability grids with an 8-directional movement model
//		• astar/  — A* shortest paths with an octile heuristic + nearest-walkable recovery
//		• layout/ — YAML scene layouts rasterized into grids, with live file reload
//		• motion/ — a waypoint cursor implementing the standard path-consumer contract
//
// ✨ Why choose gridnav?
//
//   - Corner-safe diagonals – a diagonal step is only offered when both flanking
//     cardinal cells are open, so agents never clip wall corners
//   - Deterministic searches – the open list breaks f-ties by h, then insertion order
//   - Fractional endpoints – queries accept sub-tile coordinates and the returned
//     path still arrives at the precise, non-grid-aligned destination
//   - Pure Go core – grid/ and astar/ have no third-party dependencies
//
// Quick ASCII example:
//
//	. . . . .
//	. . # . .      '#' marks a blocked cell; an avatar at the top-left
//	. . . . .      routes to the bottom-right around it, never cutting
//	. . . . .      the corners adjacent to '#'.
//	. . . . .
//
// Dive into each package's doc.go for contracts, complexity notes and errors.
//
//	go get github.com/katalvlaran/gridnav
package gridnav
