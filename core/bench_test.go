package core_test

import (
	"testing"

	"github.com/katalvlaran/ergraph/core"
)

// BenchmarkAddEdge_Chain measures edge insertion along a path, the cheapest
// duplicate-check case (degree ≤ 2).
func BenchmarkAddEdge_Chain(b *testing.B) {
	const n = 10000

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := core.New(n)
		if err != nil {
			b.Fatal(err)
		}
		for v := 1; v < n; v++ {
			if err = g.AddEdge(v, v+1); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkEdges measures the sorted canonical listing on a path graph.
func BenchmarkEdges(b *testing.B) {
	const n = 10000
	g, err := core.New(n)
	if err != nil {
		b.Fatal(err)
	}
	for v := 1; v < n; v++ {
		if err = g.AddEdge(v, v+1); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}
