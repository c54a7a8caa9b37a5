// Package components - DisjointSet: union-find over elements 1..n.
//
// Contract:
//   - Elements are 1..n, fixed at construction (matching core.Graph vertices).
//   - Union by size with iterative path compression: amortized O(α(n)) per op.
//   - Methods never panic; out-of-range elements degrade as documented.
package components

import "fmt"

// DisjointSet partitions the elements 1..n into mergeable sets.
// It is the incremental counterpart to Components: union the endpoints of
// each edge as it arrives, then read off set sizes at any point.
// Not safe for concurrent use.
type DisjointSet struct {
	parent []int // parent[x] == x for roots; index 0 unused
	size   []int // size[root] = set cardinality
	count  int   // number of disjoint sets
}

// NewDisjointSet creates n singleton sets over elements 1..n.
// Returns ErrTooFewVertices when n < 1.
// Complexity: O(n).
func NewDisjointSet(n int) (*DisjointSet, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewDisjointSet: n=%d: %w", n, ErrTooFewVertices)
	}

	d := &DisjointSet{
		parent: make([]int, n+1),
		size:   make([]int, n+1),
		count:  n,
	}
	for x := 1; x <= n; x++ {
		d.parent[x] = x
		d.size[x] = 1
	}

	return d, nil
}

// Find returns the representative (root) of the set containing x, applying
// path compression along the way. Out-of-range x returns 0.
// Amortized complexity: O(α(n)).
func (d *DisjointSet) Find(x int) int {
	if x < 1 || x >= len(d.parent) {
		return 0
	}
	// locate the root
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// second pass: compress the path onto the root
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}

	return root
}

// Union merges the sets containing x and y, attaching the smaller set under
// the larger. It reports whether a merge happened (false when x and y were
// already together, or when either element is out of range).
// Amortized complexity: O(α(n)).
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == 0 || ry == 0 || rx == ry {
		return false
	}
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.count--

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet) Connected(x, y int) bool {
	rx := d.Find(x)

	return rx != 0 && rx == d.Find(y)
}

// SizeOf returns the cardinality of the set containing x, or 0 for
// out-of-range x.
func (d *DisjointSet) SizeOf(x int) int {
	root := d.Find(x)
	if root == 0 {
		return 0
	}

	return d.size[root]
}

// Count returns the current number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }
