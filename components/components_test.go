package components_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ergraph/components"
	"github.com/katalvlaran/ergraph/core"
	"github.com/katalvlaran/ergraph/sampler"
)

// strategies enumerates both detection algorithms; most tests run under each.
var strategies = map[string]components.Strategy{
	"traversal": components.Traversal,
	"unionfind": components.UnionFind,
}

// buildGraph is a test helper assembling a graph from an edge list.
func buildGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.New(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestComponents_Errors verifies input and option validation.
func TestComponents_Errors(t *testing.T) {
	_, err := components.Components(nil)
	assert.ErrorIs(t, err, components.ErrGraphNil)

	_, err = components.MaxComponentSize(nil)
	assert.ErrorIs(t, err, components.ErrGraphNil)

	g := buildGraph(t, 2, nil)
	_, err = components.Components(g, components.WithStrategy(components.Strategy(99)))
	assert.ErrorIs(t, err, components.ErrOptionViolation)

	_, err = components.FromEdgeList(0, nil)
	assert.ErrorIs(t, err, components.ErrTooFewVertices)

	_, err = components.FromEdgeList(3, []core.Edge{{U: 1, V: 4}})
	assert.ErrorIs(t, err, components.ErrVertexOutOfRange)
	_, err = components.FromEdgeList(3, []core.Edge{{U: 0, V: 2}})
	assert.ErrorIs(t, err, components.ErrVertexOutOfRange)
}

// TestComponents_Singletons: the empty graph on n vertices has n components
// of size 1 (the p=0 scenario).
func TestComponents_Singletons(t *testing.T) {
	const n = 10
	g := buildGraph(t, n, nil)

	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			res, err := components.Components(g, components.WithStrategy(s))
			require.NoError(t, err)

			assert.Equal(t, n, res.Count())
			for i, m := range res.Members {
				assert.Equal(t, []int{i + 1}, m)
			}
			assert.Equal(t, 1, res.Largest())
		})
	}
}

// TestComponents_PendantAndIsolated covers the canonical 5-vertex scenario:
// triangle 1-2-3 with pendant 4 and isolated 5 → sizes {4, 1}, max 4.
func TestComponents_PendantAndIsolated(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{1, 2}, {1, 3}, {2, 3}, {3, 4}})

	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			res, err := components.Components(g, components.WithStrategy(s))
			require.NoError(t, err)

			require.Equal(t, 2, res.Count())
			assert.Equal(t, []int{1, 2, 3, 4}, res.Members[0])
			assert.Equal(t, []int{5}, res.Members[1])
			assert.Equal(t, []int{4, 1}, res.Sizes())
			assert.Equal(t, 4, res.Largest())
			assert.Equal(t, []int{1, 2, 3, 4}, res.LargestMembers())

			// vertex → component mapping
			assert.Equal(t, -1, res.ID[0])
			for _, v := range []int{1, 2, 3, 4} {
				assert.Equal(t, 0, res.ID[v], "ID[%d]", v)
			}
			assert.Equal(t, 1, res.ID[5])
		})
	}
}

// TestComponents_CompleteGraph: p=1 style input collapses to one component.
func TestComponents_CompleteGraph(t *testing.T) {
	const n = 8
	g, err := sampler.Gnp(n, 1, 5)
	require.NoError(t, err)

	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			res, cErr := components.Components(g, components.WithStrategy(s))
			require.NoError(t, cErr)

			assert.Equal(t, 1, res.Count())
			assert.Equal(t, n, res.Largest())
		})
	}
}

// TestComponents_TieBreak: equal-sized components report the one holding the
// lowest vertex.
func TestComponents_TieBreak(t *testing.T) {
	g := buildGraph(t, 6, [][2]int{{3, 4}, {5, 6}, {1, 2}})

	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			res, err := components.Components(g, components.WithStrategy(s))
			require.NoError(t, err)

			require.Equal(t, 3, res.Count())
			assert.Equal(t, 2, res.Largest())
			assert.Equal(t, []int{1, 2}, res.LargestMembers())
		})
	}
}

// TestComponents_PartitionInvariant: on sampled graphs, sizes sum to n,
// every vertex appears exactly once, and both strategies agree exactly.
func TestComponents_PartitionInvariant(t *testing.T) {
	for _, tc := range []struct {
		n    int
		p    float64
		seed int64
	}{
		{n: 1, p: 0.5, seed: 1},
		{n: 30, p: 0.02, seed: 2},
		{n: 60, p: 0.05, seed: 3},
		{n: 120, p: 0.01, seed: 4},
	} {
		g, err := sampler.Gnp(tc.n, tc.p, tc.seed)
		require.NoError(t, err)

		trav, err := components.Components(g, components.WithStrategy(components.Traversal))
		require.NoError(t, err)
		uf, err := components.Components(g, components.WithStrategy(components.UnionFind))
		require.NoError(t, err)

		assert.Equal(t, trav.Members, uf.Members, "n=%d p=%v seed=%d", tc.n, tc.p, tc.seed)
		assert.Equal(t, trav.ID, uf.ID)

		total := 0
		seen := make(map[int]bool, tc.n)
		for _, m := range trav.Members {
			total += len(m)
			for _, v := range m {
				assert.False(t, seen[v], "vertex %d appears twice", v)
				seen[v] = true
			}
		}
		assert.Equal(t, tc.n, total, "component sizes must sum to n")
	}
}

// TestFromEdgeList_ToleratesLoopsAndDuplicates: raw edge lists may carry
// noise that cannot change connectivity.
func TestFromEdgeList_ToleratesLoopsAndDuplicates(t *testing.T) {
	edges := []core.Edge{{U: 1, V: 2}, {U: 2, V: 1}, {U: 2, V: 2}, {U: 1, V: 2}}
	res, err := components.FromEdgeList(3, edges)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1}, res.Sizes())
	assert.Equal(t, 2, res.Largest())
}
