// Package components - component extraction: BFS traversal and union-find.
//
// Determinism:
//   - Vertices are scanned 1..n, so component indices follow minimum vertices
//     and both strategies produce the identical Result.
package components

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ergraph/core"
)

// Components partitions the vertices of g into connected components.
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for bad options.
// Complexity: O(n + m) for Traversal, O(m α(n)) for UnionFind.
func Components(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return FromEdgeList(g.VertexCount(), g.Edges(), opts...)
}

// MaxComponentSize returns the size of the largest connected component of g.
// Convenience wrapper around Components for callers that only need the
// scalar, which is most of them.
func MaxComponentSize(g *core.Graph, opts ...Option) (int, error) {
	res, err := Components(g, opts...)
	if err != nil {
		return 0, err
	}

	return res.Largest(), nil
}

// FromEdgeList partitions vertices 1..n under the given undirected edges.
// Endpoints are validated first: any edge referencing a vertex outside 1..n
// yields ErrVertexOutOfRange. Self-loops and duplicate edges are tolerated
// (they cannot change connectivity). Returns ErrTooFewVertices when n < 1.
func FromEdgeList(n int, edges []core.Edge, opts ...Option) (*Result, error) {
	if n < 1 {
		return nil, fmt.Errorf("FromEdgeList: n=%d: %w", n, ErrTooFewVertices)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	for _, e := range edges {
		if e.U < 1 || e.U > n || e.V < 1 || e.V > n {
			return nil, fmt.Errorf("FromEdgeList: edge %d-%d: %w", e.U, e.V, ErrVertexOutOfRange)
		}
	}

	switch o.Strategy {
	case UnionFind:
		return viaUnionFind(n, edges)
	default:
		return viaTraversal(n, edges)
	}
}

// viaTraversal builds adjacency once, then BFS-collects each component in
// vertex order 1..n.
func viaTraversal(n int, edges []core.Edge) (*Result, error) {
	adj := make([][]int, n+1)
	for _, e := range edges {
		if e.U == e.V {
			continue // loop: no connectivity contribution
		}
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	res := &Result{ID: newIDSlice(n)}
	seen := make([]bool, n+1)
	queue := make([]int, 0, n)

	for v := 1; v <= n; v++ {
		if seen[v] {
			continue
		}
		// BFS to collect the component containing v
		idx := len(res.Members)
		queue = append(queue[:0], v)
		seen[v] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			res.ID[u] = idx
			for _, w := range adj[u] {
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}

		sort.Ints(comp)
		res.Members = append(res.Members, comp)
	}

	return res, nil
}

// viaUnionFind unions every edge, then groups members by root in vertex
// order, which reproduces the minimum-vertex component indexing.
func viaUnionFind(n int, edges []core.Edge) (*Result, error) {
	d, err := NewDisjointSet(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if e.U != e.V {
			d.Union(e.U, e.V)
		}
	}

	res := &Result{
		ID:      newIDSlice(n),
		Members: make([][]int, 0, d.Count()),
	}
	rootIdx := make(map[int]int, d.Count())
	for v := 1; v <= n; v++ {
		root := d.Find(v)
		idx, ok := rootIdx[root]
		if !ok {
			idx = len(res.Members)
			rootIdx[root] = idx
			res.Members = append(res.Members, make([]int, 0, d.SizeOf(root)))
		}
		res.ID[v] = idx
		res.Members[idx] = append(res.Members[idx], v) // v ascending ⇒ sorted
	}

	return res, nil
}

// newIDSlice allocates the vertex→component map with the unused 0 slot
// marked -1.
func newIDSlice(n int) []int {
	id := make([]int, n+1)
	id[0] = -1

	return id
}
