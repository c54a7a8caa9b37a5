// Package components extracts connected components from a core.Graph and
// answers the question the random-graph experiments actually ask: how big
// is the largest one?
//
// What
//
//   - Components(g) partitions vertices 1..n into connected components and
//     returns a Result with the full membership, a vertex→component index,
//     and largest-component queries.
//   - MaxComponentSize(g) returns just the scalar.
//   - FromEdgeList(n, edges) runs the same analysis on a raw edge list,
//     validating endpoints against 1..n first.
//   - DisjointSet exposes the incremental union-find structure directly for
//     callers that process edges one at a time.
//
// Strategies
//
//	Two interchangeable strategies sit behind WithStrategy:
//	  • Traversal (default) — BFS from each unvisited vertex over an
//	    adjacency structure built once from the edge list; O(n + m).
//	    Preferred when the full edge set is known upfront, as it is here.
//	  • UnionFind — union-by-size with path compression over the edges;
//	    O(m α(n)). Preferred when edges arrive incrementally.
//	Both produce the identical Result (ordering rules below), so tests can
//	and do assert their agreement.
//
// Ordering and tie-breaks
//
//   - Components are indexed by their minimum vertex: component 0 contains
//     vertex 1, and indices increase with the smallest vertex not yet seen.
//   - Members within a component are sorted ascending.
//   - When several components tie for the maximum size, the one containing
//     the lowest-numbered vertex is reported as largest.
//
// Guarantees
//
//	Every vertex belongs to exactly one component, singletons included, so
//	the component sizes always sum to exactly n.
//
// Errors
//
//	ErrGraphNil         - nil graph passed to Components/MaxComponentSize.
//	ErrVertexOutOfRange - FromEdgeList saw an endpoint outside 1..n.
//	ErrOptionViolation  - an invalid Option (unknown strategy) was supplied.
//
// Usage
//
//	res, err := components.Components(g)
//	if err != nil { ... }
//	fmt.Println(res.Largest())  // size of the largest component
//	fmt.Println(res.Sizes())    // all sizes, component order
package components
