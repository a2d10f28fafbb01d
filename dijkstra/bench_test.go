package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/motion"
)

// benchGrid builds a deterministic n×n grid with tile costs in [1,9].
func benchGrid(b *testing.B, n int) *gridgraph.WeightedGrid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	costs := make([][]int, n)
	for y := range costs {
		costs[y] = make([]int, n)
		for x := range costs[y] {
			costs[y][x] = 1 + r.Intn(9)
		}
	}
	g, err := gridgraph.From2D(costs)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	return g
}

// BenchmarkShortestPath_Loose measures a corner-to-corner search on a
// 141×141 grid (the size of a full puzzle input).
// Complexity: O(S log S), S ≤ 141²×4×3.
func BenchmarkShortestPath_Loose(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, dijkstra.WithConstraints(motion.Loose)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortestPath_Clumsy is the same search with runs of 4..10 cells.
// Complexity: O(S log S), S ≤ 141²×4×10×4.
func BenchmarkShortestPath_Clumsy(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.ShortestPath(g, dijkstra.WithConstraints(motion.Clumsy)); err != nil {
			b.Fatal(err)
		}
	}
}
