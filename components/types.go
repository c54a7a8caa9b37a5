// Package components - options, sentinel errors, and the Result type.
package components

import (
	"errors"
	"fmt"
)

// Sentinel errors for component analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrTooFewVertices indicates an analysis was requested over n < 1 vertices.
	ErrTooFewVertices = errors.New("components: need at least one vertex")

	// ErrVertexOutOfRange indicates an edge endpoint outside 1..n.
	ErrVertexOutOfRange = errors.New("components: vertex outside 1..n")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("components: invalid option supplied")
)

// Strategy selects the component-detection algorithm.
type Strategy int

const (
	// Traversal runs BFS from each unvisited vertex; O(n + m).
	// The default, and the right choice when the full edge set exists upfront.
	Traversal Strategy = iota

	// UnionFind unions edge endpoints in a DisjointSet; O(m α(n)).
	// Equivalent output; the right choice for incremental edge streams.
	UnionFind
)

// Option configures component analysis via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the analysis is invoked.
type Option func(*Options)

// Options holds parameters customizing component analysis.
type Options struct {
	// Strategy chooses Traversal or UnionFind. Both yield identical Results.
	Strategy Strategy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: Traversal strategy.
func DefaultOptions() Options {
	return Options{Strategy: Traversal}
}

// WithStrategy selects the detection algorithm.
// An unknown Strategy value is surfaced as ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case Traversal, UnionFind:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy (%d)", ErrOptionViolation, s)
		}
	}
}

// Result holds the component partition of a graph on vertices 1..n:
//   - Members: one slice per component, each sorted ascending; components
//     are ordered by their minimum vertex (so Members[0] contains vertex 1).
//   - ID: ID[v] is the component index of vertex v for v in 1..n;
//     ID[0] is unused and holds -1.
type Result struct {
	Members [][]int
	ID      []int
}

// Count returns the number of components.
func (r *Result) Count() int { return len(r.Members) }

// Sizes returns the component sizes in component order.
// The sizes always sum to exactly n.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Members))
	for i, m := range r.Members {
		sizes[i] = len(m)
	}

	return sizes
}

// Largest returns the size of the largest component.
// Returns 0 for an empty Result (which no valid graph produces: n ≥ 1).
func (r *Result) Largest() int {
	return len(r.largest())
}

// LargestMembers returns the vertices of the largest component, sorted
// ascending. Ties are broken toward the component containing the
// lowest-numbered vertex. The slice aliases the Result; do not mutate.
func (r *Result) LargestMembers() []int {
	return r.largest()
}

// largest scans Members once; the first maximum wins, which is exactly the
// lowest-vertex tie-break since components are ordered by minimum vertex.
func (r *Result) largest() []int {
	var best []int
	for _, m := range r.Members {
		if len(m) > len(best) {
			best = m
		}
	}

	return best
}
