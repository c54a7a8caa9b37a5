// Package sampler - sentinel errors and shared constants.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Implementations attach context via %w wrapping; sentinels themselves
//     never carry formatted parameters.
//   - No panics at runtime; every invalid input surfaces as an error.
package sampler

import "errors"

// File-local constants (no magic literals; stable method tags and domains).
const (
	methodNew        = "sampler.New"
	methodGraph      = "Sampler.Graph"
	methodEdgeCount  = "Sampler.EdgeCountAt"
	methodMeanDegree = "sampler.ProbabilityForMeanDegree"

	// minVertices is the smallest valid vertex count for a sample.
	minVertices = 1

	// probMin and probMax bound the inclusion probability p, inclusive.
	probMin = 0.0
	probMax = 1.0
)

// ErrTooFewVertices indicates a vertex count below the allowed minimum
// (n < 1 for sampling; n < 2 for mean-degree conversion, which divides by n-1).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid n */ }.
var ErrTooFewVertices = errors.New("sampler: vertex count too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* reject p */ }.
var ErrInvalidProbability = errors.New("sampler: probability out of range")

// ErrInvalidDegree indicates a target mean degree outside [0, n-1], i.e. one
// whose implied probability d/(n-1) falls outside [0,1].
// Usage: if errors.Is(err, ErrInvalidDegree) { /* fix d or n */ }.
var ErrInvalidDegree = errors.New("sampler: mean degree out of range")
