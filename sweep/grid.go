// Package sweep - grid builders: trial slices over p or mean-degree ranges.
//
// Determinism:
//   - Grid values are computed as min + k·step from an integer k, never by
//     accumulating floats, so a grid's values are identical across runs.
//   - All trials in a grid share one seed, which is what makes the sweep
//     monotone (see the sampler draw contract).
package sweep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ergraph/sampler"
)

// gridEps absorbs float rounding when deciding whether max itself is on the
// grid (e.g. 0..4 step 0.25 must include 4).
const gridEps = 1e-9

// ProbabilityGrid builds trials for p = pmin, pmin+step, …, up to and
// including pmax (within rounding). All trials share n and seed.
// Returns ErrBadGrid for step ≤ 0, pmin > pmax, or non-finite bounds, and
// sampler validation errors when the range leaves [0,1].
func ProbabilityGrid(n int, seed int64, pmin, pmax, step float64) ([]Trial, error) {
	values, err := gridValues("ProbabilityGrid", pmin, pmax, step)
	if err != nil {
		return nil, err
	}

	trials := make([]Trial, 0, len(values))
	for _, p := range values {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("ProbabilityGrid: p=%v: %w", p, sampler.ErrInvalidProbability)
		}
		trials = append(trials, Trial{N: n, P: p, Seed: seed})
	}

	return trials, nil
}

// DegreeGrid builds trials for mean degree d = dmin, dmin+step, …, up to
// and including dmax, converting each d to p = d/(n-1). All trials share n
// and seed. Returns ErrBadGrid for malformed ranges and sampler errors when
// n < 2 or a degree leaves [0, n-1].
func DegreeGrid(n int, seed int64, dmin, dmax, step float64) ([]Trial, error) {
	values, err := gridValues("DegreeGrid", dmin, dmax, step)
	if err != nil {
		return nil, err
	}

	trials := make([]Trial, 0, len(values))
	for _, d := range values {
		p, cErr := sampler.ProbabilityForMeanDegree(d, n)
		if cErr != nil {
			return nil, fmt.Errorf("DegreeGrid: d=%v: %w", d, cErr)
		}
		trials = append(trials, Trial{N: n, P: p, Seed: seed})
	}

	return trials, nil
}

// gridValues expands [lo, hi] by step into explicit values.
func gridValues(method string, lo, hi, step float64) ([]float64, error) {
	if math.IsNaN(lo) || math.IsInf(lo, 0) ||
		math.IsNaN(hi) || math.IsInf(hi, 0) ||
		math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%s: non-finite bounds: %w", method, ErrBadGrid)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%s: step=%v must be positive: %w", method, step, ErrBadGrid)
	}
	if lo > hi {
		return nil, fmt.Errorf("%s: min=%v > max=%v: %w", method, lo, hi, ErrBadGrid)
	}

	steps := int(math.Floor((hi-lo)/step + gridEps))
	values := make([]float64, 0, steps+1)
	for k := 0; k <= steps; k++ {
		values = append(values, lo+float64(k)*step)
	}

	return values, nil
}
