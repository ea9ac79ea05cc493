package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/bt4R9/TD/grid"
	"github.com/bt4R9/TD/gridgraph"
)

// randomGrid returns a deterministic n×n grid with about a third of the
// cells blocked.
func randomGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	for i := 0; i < g.Len(); i++ {
		if r.Intn(3) == 0 {
			_ = g.Set(g.Coordinate(i), grid.Blocked)
		}
	}
	return g
}

// BenchmarkBuild measures arena construction on a 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkBuild(b *testing.B) {
	g := randomGrid(b, 1000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.Build(g)
	}
}

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 1000×1000 grid.
// Complexity: O(W×H×4)
func BenchmarkConnectedComponents(b *testing.B) {
	gr, err := gridgraph.Build(randomGrid(b, 1000))
	if err != nil {
		b.Fatalf("setup Build failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gr.ConnectedComponents()
	}
}
