// Package core - Graph methods: edge lifecycle and queries.
//
// Determinism:
//   - Neighbors() returns vertex IDs sorted ascending.
//   - Edges() returns pairs (u,v), u<v, sorted lexicographically.
//
// Concurrency:
//   - All methods take g.mu; writers exclude readers.
package core

import (
	"fmt"
	"sort"
)

// VertexCount returns n, the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// EdgeCount returns the number of distinct edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m
}

// AddEdge inserts the undirected edge {u,v}.
//
// Adding an edge that already exists is a no-op (simple-graph invariant).
// Returns ErrVertexOutOfRange if either endpoint lies outside 1..n,
// ErrSelfLoop if u == v.
// Complexity: O(deg) for the duplicate check.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u < 1 || u > g.n {
		return fmt.Errorf("AddEdge(%d,%d): u=%d: %w", u, v, u, ErrVertexOutOfRange)
	}
	if v < 1 || v > g.n {
		return fmt.Errorf("AddEdge(%d,%d): v=%d: %w", u, v, v, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if g.hasEdgeLocked(u, v) {
		return nil // idempotent
	}

	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.m++

	return nil
}

// HasEdge reports whether the edge {u,v} is present.
// Out-of-range endpoints and u == v simply report false.
// Complexity: O(deg) of the sparser endpoint.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 1 || u > g.n || v < 1 || v > g.n || u == v {
		return false
	}

	return g.hasEdgeLocked(u, v)
}

// hasEdgeLocked scans the shorter adjacency list. Caller holds g.mu.
func (g *Graph) hasEdgeLocked(u, v int) bool {
	if len(g.adj[v]) < len(g.adj[u]) {
		u, v = v, u
	}
	for _, w := range g.adj[u] {
		if w == v {
			return true
		}
	}

	return false
}

// Degree returns the number of edges incident to v.
// Returns ErrVertexOutOfRange for v outside 1..n.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 1 || v > g.n {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexOutOfRange)
	}

	return len(g.adj[v]), nil
}

// Neighbors returns the neighbors of v sorted ascending.
// The slice is a copy; mutating it does not affect the graph.
// Returns ErrVertexOutOfRange for v outside 1..n.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 1 || v > g.n {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexOutOfRange)
	}

	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	sort.Ints(out)

	return out, nil
}

// Edges returns every edge as (U,V) with U < V, sorted lexicographically.
// The slice is a copy. Complexity: O(m log m).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.m)
	for u := 1; u <= g.n; u++ {
		for _, v := range g.adj[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// Clone returns a deep copy of the graph.
// Complexity: O(n + m).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		n:   g.n,
		m:   g.m,
		adj: make([][]int, g.n+1),
	}
	for v := 1; v <= g.n; v++ {
		if len(g.adj[v]) == 0 {
			continue
		}
		c.adj[v] = make([]int, len(g.adj[v]))
		copy(c.adj[v], g.adj[v])
	}

	return c
}
