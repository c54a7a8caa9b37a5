// Package core defines the Graph type used across ergraph: an undirected
// simple graph on integer vertices 1..n.
//
// What
//
//   - Fixed vertex set 1..n chosen at construction; no vertex insertion or
//     removal afterwards (the random-graph model never needs it).
//   - Undirected simple edges: no self-loops, no parallel edges. Adding an
//     edge that already exists is an idempotent no-op.
//   - Deterministic enumeration: Neighbors returns ascending vertex IDs,
//     Edges returns (u,v) pairs with u < v in lexicographic order.
//
// Why
//
//   - The G(n,p) model is defined over labeled vertices 1..n and unordered
//     pairs {u,v}; the type encodes exactly that invariant — the edge set is
//     always a subset of the n(n-1)/2 admissible pairs.
//   - Stable enumeration makes downstream algorithms and tests reproducible
//     without sorting at every call site.
//
// Concurrency
//
//	All methods are safe for concurrent use via an internal RWMutex.
//	Typical sweep workloads build a graph in one goroutine and only read it
//	afterwards, but the lock makes misuse harmless rather than racy.
//
// Complexity (n = |vertices|, m = |edges|, deg = degree of the queried vertex)
//
//   - AddEdge / HasEdge: O(deg) (membership scan of the shorter endpoint list)
//   - Neighbors: O(deg log deg) (sorted copy)
//   - Edges: O(m log m) (sorted copy)
//   - Memory: O(n + m)
//
// Errors
//
//	ErrTooFewVertices   - n < 1 at construction.
//	ErrVertexOutOfRange - an endpoint lies outside 1..n.
//	ErrSelfLoop         - an edge {v,v} was requested.
//
// Usage
//
//	g, err := core.New(5)
//	if err != nil { ... }
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(1, 2) // no-op: simple graph
//	fmt.Println(g.EdgeCount()) // 1
package core
