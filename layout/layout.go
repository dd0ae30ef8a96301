// Package layout loads scene layouts and rasterizes their footprints onto
// walkability grids.
package layout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridnav/grid"
)

// ErrBadDimensions indicates a layout with non-positive width or height.
var ErrBadDimensions = errors.New("layout: width and height must be positive")

// Footprint is one axis-aligned rectangle of blocked cells — a desk, a
// bookshelf, a building. Coordinates are in tiles; the rectangle covers
// [X, X+W) × [Y, Y+H). Parts overhanging the grid are ignored.
type Footprint struct {
	Name string `yaml:"name"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
}

// Layout describes a tile scene: grid dimensions plus the footprints that
// block movement. Everything not covered by a footprint is walkable.
//
// Example document:
//
//	width: 12
//	height: 8
//	blocked:
//	  - {name: desk, x: 2, y: 3, w: 3, h: 1}
//	  - {name: shelf, x: 0, y: 0, w: 1, h: 5}
type Layout struct {
	Width   int         `yaml:"width"`
	Height  int         `yaml:"height"`
	Blocked []Footprint `yaml:"blocked"`
}

// Parse decodes a YAML layout from r.
// Returns ErrBadDimensions if width or height is not positive.
func Parse(r io.Reader) (*Layout, error) {
	var l Layout
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return nil, ErrBadDimensions
	}

	return &l, nil
}

// ParseFile reads and decodes the YAML layout at path.
func ParseFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}
	var l Layout
	if err = yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: unmarshal %s: %w", path, err)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return nil, ErrBadDimensions
	}

	return &l, nil
}

// Grid rasterizes the layout into a fresh walkability grid: every cell
// starts walkable, then each footprint rectangle is marked blocked.
// Complexity: O(W×H + Σ footprint area).
func (l *Layout) Grid() (*grid.Grid, error) {
	g, err := grid.New(l.Width, l.Height)
	if err != nil {
		return nil, err
	}
	l.block(g)

	return g, nil
}

// Apply re-rasterizes the layout onto an existing grid in place, resetting
// every cell to walkable first. Used by Watcher to pick up edited layouts
// without rebinding pathfinders; the grid keeps its dimensions, so
// footprints of a resized layout simply clip against the old bounds.
func (l *Layout) Apply(g *grid.Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.SetWalkable(x, y, true)
		}
	}
	l.block(g)
}

// block marks every footprint cell unwalkable. Out-of-grid cells fall
// through SetWalkable's no-op contract.
func (l *Layout) block(g *grid.Grid) {
	for _, fp := range l.Blocked {
		for y := fp.Y; y < fp.Y+fp.H; y++ {
			for x := fp.X; x < fp.X+fp.W; x++ {
				g.SetWalkable(x, y, false)
			}
		}
	}
}
