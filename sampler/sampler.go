// Package sampler - Sampler implementation: G(n,p) with seed-replay draws.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Exactly one Float64 draw per unordered pair {i,j}, i<j, in lexicographic
//     order (i asc, then j asc), from a source seeded only by the Sampler seed.
//   - Edge included iff draw < p (strict). p=0 therefore yields no edges and
//     p=1 yields all n(n-1)/2 edges, with no boundary ambiguity.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Stable pair order + seed-only source ⇒ identical (n,p,seed) give
//     bit-identical edge sets, and for fixed (n,seed) the edge set is
//     monotone non-decreasing in p (superset nesting across a sweep).
package sampler

import (
	"fmt"

	"github.com/katalvlaran/ergraph/core"
)

// Sampler binds a vertex count and a seed, fixing the per-pair draw sequence.
// It is immutable and safe for concurrent use; each call replays the
// sequence from the start on a private source.
type Sampler struct {
	n    int
	seed int64
}

// New returns a Sampler over vertices 1..n with the given seed.
// Seed 0 maps to a fixed default seed (stable, documented in rng.go).
// Returns ErrTooFewVertices when n < 1.
// Complexity: O(1).
func New(n int, seed int64) (*Sampler, error) {
	if n < minVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodNew, n, minVertices, ErrTooFewVertices)
	}

	return &Sampler{n: n, seed: seed}, nil
}

// N returns the vertex count the Sampler was bound to.
func (s *Sampler) N() int { return s.n }

// Seed returns the seed the Sampler was bound to (as supplied; a zero seed
// is still reported as 0 even though sampling substitutes the default).
func (s *Sampler) Seed() int64 { return s.seed }

// Graph samples G(n,p) against the bound draw sequence.
//
// Every edge present at some p1 is present at any p2 > p1 for the same
// Sampler: the draw per pair is identical, only the threshold moves.
// Returns ErrInvalidProbability when p lies outside [0,1].
// Complexity: Θ(n²) time (n(n-1)/2 draws), O(n + m) space.
func (s *Sampler) Graph(p float64) (*core.Graph, error) {
	if !validProbability(p) {
		return nil, fmt.Errorf("%s: p=%v not in [%v,%v]: %w",
			methodGraph, p, probMin, probMax, ErrInvalidProbability)
	}

	g, err := core.New(s.n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGraph, err)
	}

	rng := rngFromSeed(s.seed)
	for i := 1; i <= s.n; i++ { // stable i asc
		for j := i + 1; j <= s.n; j++ { // j strictly greater than i
			if rng.Float64() < p { // strict: draw == p excludes the edge
				if err = g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGraph, i, j, err)
				}
			}
		}
	}

	return g, nil
}

// EdgeCountAt reports how many edges Graph(p) would contain, without
// materializing the graph. Useful as a cheap sweep diagnostic.
// Returns ErrInvalidProbability when p lies outside [0,1].
// Complexity: Θ(n²) time, O(1) space.
func (s *Sampler) EdgeCountAt(p float64) (int, error) {
	if !validProbability(p) {
		return 0, fmt.Errorf("%s: p=%v not in [%v,%v]: %w",
			methodEdgeCount, p, probMin, probMax, ErrInvalidProbability)
	}

	rng := rngFromSeed(s.seed)
	pairs := s.n * (s.n - 1) / 2
	count := 0
	for k := 0; k < pairs; k++ {
		if rng.Float64() < p {
			count++
		}
	}

	return count, nil
}

// validProbability reports whether p lies in [0,1].
// Written as a positive range check so NaN fails it too.
func validProbability(p float64) bool {
	return p >= probMin && p <= probMax
}

// Gnp is the one-shot form: sample G(n,p) with the given seed.
// Equivalent to New(n, seed) followed by Graph(p).
func Gnp(n int, p float64, seed int64) (*core.Graph, error) {
	s, err := New(n, seed)
	if err != nil {
		return nil, err
	}

	return s.Graph(p)
}

// ProbabilityForMeanDegree converts a target mean degree d into the edge
// probability p = d/(n-1), the parameterization under which the giant
// component emerges at d = 1 independent of n.
//
// Returns ErrTooFewVertices when n < 2 (the conversion divides by n-1) and
// ErrInvalidDegree when d lies outside [0, n-1].
// Complexity: O(1).
func ProbabilityForMeanDegree(d float64, n int) (float64, error) {
	if n < 2 {
		return 0, fmt.Errorf("%s: n=%d < 2: %w", methodMeanDegree, n, ErrTooFewVertices)
	}
	p := d / float64(n-1)
	if !validProbability(p) {
		return 0, fmt.Errorf("%s: d=%v implies p=%v outside [%v,%v]: %w",
			methodMeanDegree, d, p, probMin, probMax, ErrInvalidDegree)
	}

	return p, nil
}
