// Package core - Graph, Edge, sentinel errors, and the New constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrTooFewVertices indicates a graph was requested with n < 1 vertices.
	ErrTooFewVertices = errors.New("core: graph needs at least one vertex")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside 1..n.
	ErrVertexOutOfRange = errors.New("core: vertex outside 1..n")

	// ErrSelfLoop indicates an edge {v,v} was requested; simple graphs forbid loops.
	ErrSelfLoop = errors.New("core: self-loops not allowed")
)

// Edge is an undirected edge {U,V}. Invariant: 1 ≤ U < V ≤ n.
// Edges are plain values; comparing them with == compares endpoints.
type Edge struct {
	U, V int
}

// Graph is an undirected simple graph on vertices 1..n.
//
// The vertex set is fixed at construction. The edge set grows via AddEdge
// and is always a subset of the n(n-1)/2 unordered pairs over 1..n.
// The zero value is not usable; construct with New.
type Graph struct {
	mu sync.RWMutex

	n int // vertex count; vertices are 1..n

	// adj[v] lists the neighbors of v in insertion order.
	// Index 0 is unused so vertex IDs index directly.
	adj [][]int

	m int // edge count
}

// New creates an empty Graph on vertices 1..n.
// Returns ErrTooFewVertices when n < 1.
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}

	return &Graph{
		n:   n,
		adj: make([][]int, n+1),
	}, nil
}
