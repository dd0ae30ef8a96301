// Package motion advances agents along computed paths at fixed speed.
package motion

import (
	"math"

	"github.com/katalvlaran/gridnav/astar"
)

// snapEpsilon is the distance below which the cursor snaps onto its current
// waypoint and advances to the next one.
const snapEpsilon = 1e-3

// Facing is one of the eight compass directions an agent can face while
// moving, derived from its movement delta. Used to pick sprite and bone
// orientation.
type Facing int

// Compass facings, clockwise from north.
const (
	FacingN Facing = iota
	FacingNE
	FacingE
	FacingSE
	FacingS
	FacingSW
	FacingW
	FacingNW
)

// facingNames indexes String by Facing value.
var facingNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the compass abbreviation of f, or "?" for out-of-range values.
func (f Facing) String() string {
	if f < 0 || int(f) >= len(facingNames) {
		return "?"
	}

	return facingNames[f]
}

// facingOf maps a movement delta to the nearest of the eight compass
// facings. Y grows southward (screen coordinates).
func facingOf(dx, dy float64) Facing {
	// atan2 measured from east, counter-clockwise; octant rounding puts
	// each facing at the center of its 45° sector.
	angle := math.Atan2(dy, dx)
	octant := int(math.Round(angle/(math.Pi/4))) & 7

	// octant 0 = E, 1 = SE, … counter 2 = S under screen coordinates.
	byOctant := [...]Facing{FacingE, FacingSE, FacingS, FacingSW, FacingW, FacingNW, FacingN, FacingNE}

	return byOctant[octant]
}

// Cursor walks a position along a Path at fixed speed: each Advance moves
// speed×dt toward the current waypoint, snaps when within snapEpsilon, and
// steps the waypoint index forward. Facing is recomputed from the movement
// delta on every Advance.
//
// A Cursor owns its path slice; the pathfinder that produced it is done
// with it.
type Cursor struct {
	path   astar.Path
	index  int
	x, y   float64
	speed  float64
	facing Facing
}

// NewCursor creates a cursor at the given start position.
// Speed is in tiles per second (or per whatever unit dt uses); a
// non-positive speed produces a cursor that never moves.
func NewCursor(path astar.Path, startX, startY, speed float64) *Cursor {
	return &Cursor{path: path, x: startX, y: startY, speed: speed, facing: FacingS}
}

// Done reports whether the whole path has been consumed.
func (c *Cursor) Done() bool { return c.index >= len(c.path) }

// Position returns the cursor's current fractional position.
func (c *Cursor) Position() (x, y float64) { return c.x, c.y }

// Facing returns the direction of the most recent movement.
func (c *Cursor) Facing() Facing { return c.facing }

// Advance moves the cursor by speed×dt toward the current waypoint and
// reports whether the path is now fully consumed. Movement never overshoots:
// a tick that would pass a waypoint stops on it, and the remainder is spent
// on the next tick.
func (c *Cursor) Advance(dt float64) bool {
	if c.Done() {
		return true
	}

	target := c.path[c.index]
	dx, dy := target.X-c.x, target.Y-c.y
	dist := math.Hypot(dx, dy)
	if dist <= snapEpsilon {
		c.x, c.y = target.X, target.Y
		c.index++

		return c.Done()
	}

	c.facing = facingOf(dx, dy)
	step := c.speed * dt
	if step >= dist {
		c.x, c.y = target.X, target.Y
		c.index++
	} else if step > 0 {
		c.x += dx / dist * step
		c.y += dy / dist * step
	}

	return c.Done()
}
