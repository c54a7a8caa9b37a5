package components_test

import (
	"testing"

	"github.com/katalvlaran/ergraph/components"
	"github.com/katalvlaran/ergraph/core"
	"github.com/katalvlaran/ergraph/sampler"
)

// benchGraph samples a near-threshold graph once per benchmark.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	p, err := sampler.ProbabilityForMeanDegree(1.5, n)
	if err != nil {
		b.Fatal(err)
	}
	g, err := sampler.Gnp(n, p, 1)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkComponents_Traversal measures the default BFS strategy.
func BenchmarkComponents_Traversal(b *testing.B) {
	g := benchGraph(b, 5000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := components.Components(g, components.WithStrategy(components.Traversal)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComponents_UnionFind measures the DSU strategy on the same input.
func BenchmarkComponents_UnionFind(b *testing.B) {
	g := benchGraph(b, 5000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := components.Components(g, components.WithStrategy(components.UnionFind)); err != nil {
			b.Fatal(err)
		}
	}
}
