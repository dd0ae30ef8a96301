// Package layout turns scene descriptions into walkability grids.
//
// What:
//
//   - Layout is a small YAML schema: grid dimensions plus rectangular
//     "footprints" (furniture, buildings) that block movement.
//   - Grid rasterizes a layout into a fresh grid.Grid; Apply re-rasterizes
//     onto an existing grid in place so bound pathfinders see the change.
//   - Watcher reloads a layout file on every save via fsnotify, with
//     debouncing and atomic-rename tolerance.
//
// Why:
//
//   - The dashboard edits office and city layouts at runtime; scenes should
//     pick up the new floor plan without a restart.
//   - Footprints overhanging the grid are ignored rather than rejected —
//     layout generators may emit coordinates slightly outside the scene.
//
// Errors:
//
//   - ErrBadDimensions: layout width or height is not positive.
//   - Decode and filesystem errors are wrapped with file context.
//
// Thread safety:
//
//   - Watcher channels may be consumed from any goroutine; applying a
//     reloaded layout to a shared grid must still be serialized against
//     in-flight path queries.
package layout
