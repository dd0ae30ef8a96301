// Package astar defines core types, configuration options, and sentinel
// errors for grid A* pathfinding.
package astar

import (
	"errors"
	"math"
)

// Sentinel errors returned by Pathfinder operations.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartBlocked indicates the rounded start cell is out of bounds
	// or not walkable.
	ErrStartBlocked = errors.New("astar: start cell is blocked or out of bounds")

	// ErrGoalBlocked indicates the rounded goal cell is out of bounds
	// or not walkable.
	ErrGoalBlocked = errors.New("astar: goal cell is blocked or out of bounds")

	// ErrNoPath indicates both endpoints are valid but no walkable route
	// connects them.
	ErrNoPath = errors.New("astar: no walkable path between start and goal")

	// ErrBadMaxCost indicates MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Waypoint is one point of a returned path. Coordinates are grid-aligned
// integers for every waypoint except possibly the last, which preserves the
// caller's exact fractional destination.
type Waypoint struct {
	X, Y float64
}

// Path is an ordered sequence of waypoints from the first step after the
// start up to and including the destination. The start position itself is
// never included. A one-element Path means "already at destination".
//
// On any FindPath failure the Path is nil, so callers that only test for
// emptiness keep the classic "empty list == no path" behavior; callers that
// care inspect the sentinel error instead.
type Path []Waypoint

// CostFrom returns the total travel cost of the path when walked from the
// given start position: the sum of Euclidean lengths of all segments.
// Returns 0 for an empty path.
func (p Path) CostFrom(startX, startY float64) float64 {
	var total float64
	px, py := startX, startY
	for _, w := range p {
		total += math.Hypot(w.X-px, w.Y-py)
		px, py = w.X, w.Y
	}

	return total
}

// Options configures Pathfinder behavior.
//
// MaxCost – cap on f = g + h; nodes whose estimate exceeds the cap are not
// explored and the search reports ErrNoPath. Must be ≥ 0.
// Default is +Inf (no cap).
type Options struct {
	MaxCost float64
}

// Option is a functional option for configuring a Pathfinder.
type Option func(*Options)

// WithMaxCost caps the total path cost the search is willing to consider.
// Queries whose cheapest route would exceed the cap fail with ErrNoPath.
// Must pass a non-negative value; negative values cause ErrBadMaxCost.
// Default (if not set) is +Inf (no cap).
func WithMaxCost(c float64) Option {
	return func(o *Options) {
		if c < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = c
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - MaxCost: +Inf (no cost cap; explore the whole grid if needed).
func DefaultOptions() Options {
	return Options{
		MaxCost: math.Inf(1),
	}
}
