// Package ergraph is an in-memory toolkit for Erdős–Rényi random graphs:
// sample G(n,p), extract connected components, and sweep parameter grids
// to watch the giant component emerge.
//
// 🚀 What is ergraph?
//
//	A small, focused library that brings together:
//		• Core primitives: undirected simple graphs on vertices 1..n, safe under locks
//		• Sampling: seeded G(n,p) generation with a fixed per-pair draw order,
//		  so a p-sweep over one seed yields a nested, strictly growing edge set
//		• Components: connected-component extraction via BFS or union-find,
//		  with the largest-component size as the headline statistic
//		• Sweeps: embarrassingly parallel batch trials over probability or
//		  mean-degree grids, collected into (n, p, seed, max_component_size) rows
//
// ✨ Why choose ergraph?
//
//   - Reproducible – identical (n, p, seed) always yields bit-identical graphs
//   - Monotonic – fixed (n, seed) with increasing p gives supersets of edges,
//     the property that makes "growing graph" sequences comparable
//   - Honest about cost – sampling is Θ(n²) Bernoulli trials; the API docs
//     say so everywhere it matters
//
// Under the hood, everything is organized under four subpackages:
//
//	core/       — Graph type: vertices 1..n, undirected simple edges, thread-safe
//	sampler/    — G(n,p) sampling bound to a (n, seed) draw sequence
//	components/ — connected components, largest-component queries, DisjointSet
//	sweep/      — batch trial driver, probability/degree grids, CSV output
//
// Quick ASCII example (n = 5, one sampled graph):
//
//	    1───2
//	    │ ╱
//	    3───4    5
//
//	components: {1,2,3,4} and {5}; the largest has size 4.
//
// Dive into each package's doc.go for contracts, complexity notes, and
// runnable examples.
//
//	go get github.com/katalvlaran/ergraph
package ergraph
