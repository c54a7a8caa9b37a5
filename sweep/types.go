// Package sweep - trial records, options, and sentinel errors.
package sweep

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ergraph/components"
)

// Sentinel errors for sweep execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sweep: invalid option supplied")

	// ErrBadGrid indicates grid bounds or step that produce no valid trials
	// (step ≤ 0, inverted bounds, or non-finite values).
	ErrBadGrid = errors.New("sweep: invalid grid parameters")
)

// Trial names one simulation: sample G(N,P) with Seed, measure the largest
// component. Trials are plain values; build them directly or via the grid
// helpers.
type Trial struct {
	N    int
	P    float64
	Seed int64
}

// Result is the immutable record of one trial. Either MaxComponentSize is
// set and Err is nil, or Err carries the trial's failure; the record is
// created once and never mutated afterwards.
type Result struct {
	Trial

	// MaxComponentSize is the size of the largest connected component.
	MaxComponentSize int

	// Err is the per-trial failure, nil on success. Failures are isolated:
	// other trials in the same sweep are unaffected.
	Err error
}

// Fraction returns MaxComponentSize / N, the fraction of vertices in the
// largest component — the quantity giant-component plots track against the
// mean degree. Returns 0 for failed trials.
func (r Result) Fraction() float64 {
	if r.Err != nil || r.N < 1 {
		return 0
	}

	return float64(r.MaxComponentSize) / float64(r.N)
}

// Option configures sweep execution via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters customizing sweep execution.
type Options struct {
	// Workers bounds how many trials run concurrently. 1 means sequential.
	Workers int

	// Strategy is forwarded to the component analysis of every trial.
	Strategy components.Strategy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: sequential execution,
// Traversal component strategy.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Strategy: components.Traversal,
	}
}

// WithWorkers bounds trial concurrency.
//
//	k ≥ 1: at most k trials in flight
//	k < 1: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithStrategy forwards a component-detection strategy to every trial.
func WithStrategy(s components.Strategy) Option {
	return func(o *Options) {
		switch s {
		case components.Traversal, components.UnionFind:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy (%d)", ErrOptionViolation, s)
		}
	}
}
