package astar_test

import (
	"testing"

	"github.com/katalvlaran/gridnav/astar"
	"github.com/katalvlaran/gridnav/grid"
)

// BenchmarkFindPath measures a corner-to-corner search on an open 256×256
// grid — far beyond the tile scenes the library targets, to expose the
// heap's O(V log V) behavior.
func BenchmarkFindPath(b *testing.B) {
	const n = 256
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	p, err := astar.New(g)
	if err != nil {
		b.Fatalf("setup pathfinder failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = p.FindPath(0, 0, n-1, n-1); err != nil {
			b.Fatalf("FindPath failed: %v", err)
		}
	}
}

// BenchmarkNearestWalkable measures ring expansion across a large blocked
// region: a 128×128 grid whose central 64×64 block is unwalkable, queried
// at its center.
func BenchmarkNearestWalkable(b *testing.B) {
	const n = 128
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for y := n / 4; y < 3*n/4; y++ {
		for x := n / 4; x < 3*n/4; x++ {
			g.SetWalkable(x, y, false)
		}
	}
	p, err := astar.New(g)
	if err != nil {
		b.Fatalf("setup pathfinder failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := p.NearestWalkable(n/2, n/2); !ok {
			b.Fatal("expected a walkable cell")
		}
	}
}
