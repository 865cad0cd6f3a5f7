// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/campusnav/core"
)

// buildStar returns a hub 0 with n leaves 1..n.
func buildStar(n int) *core.Graph[int64, float64] {
	g := core.NewGraph[int64, float64](core.WithVertexCapacity(n + 1))
	g.AddVertex(0)
	for i := 1; i <= n; i++ {
		g.AddVertex(int64(i))
		g.AddEdge(0, int64(i), float64(i))
	}

	return g
}

// BenchmarkAddEdge measures appending fresh arcs to a single hub.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph[int64, float64]()
	g.AddVertex(0)
	for i := 1; i <= b.N; i++ {
		g.AddVertex(int64(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 1; i <= b.N; i++ {
		g.AddEdge(0, int64(i), 1)
	}
}

// BenchmarkNeighbors measures sorted neighbor retrieval on a 1000-leaf star.
func BenchmarkNeighbors(b *testing.B) {
	g := buildStar(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(0)
	}
}

// BenchmarkClone measures a deep copy of a 1000-leaf star.
func BenchmarkClone(b *testing.B) {
	g := buildStar(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
