// Package sweep - Run: parallel map over trials with per-trial isolation.
package sweep

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ergraph/components"
	"github.com/katalvlaran/ergraph/sampler"
)

// Run executes every trial and returns one Result per trial, index-aligned
// with the input. Per-trial failures land in Result.Err; the sweep continues.
//
// Run returns a non-nil error only for invalid options or a canceled
// context. On cancellation the already-computed Results are returned;
// trials never scheduled carry ctx's error in their Result.Err, and the
// context error is also returned so callers notice the sweep was cut short.
// Cancellation is cooperative and trial-granular: a running trial completes.
//
// Complexity: Σ Θ(nᵢ²) over trials; memory O(len(trials)) beyond one
// in-flight graph per worker.
func Run(ctx context.Context, trials []Trial, opts ...Option) ([]Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]Result, len(trials))
	grp := &errgroup.Group{}
	grp.SetLimit(o.Workers)

	for i, tr := range trials {
		// cooperative stop between trials only
		if err := ctx.Err(); err != nil {
			for k := i; k < len(trials); k++ {
				results[k] = Result{Trial: trials[k], Err: err}
			}
			_ = grp.Wait()

			return results, err
		}

		i, tr := i, tr
		grp.Go(func() error {
			results[i] = runTrial(tr, o.Strategy)

			return nil // trial failures are isolated, never group-fatal
		})
	}

	_ = grp.Wait()

	return results, nil
}

// runTrial samples one graph and measures its largest component.
// Sampling and component detection are strictly sequential: detection
// needs the full edge set.
func runTrial(tr Trial, strategy components.Strategy) Result {
	s, err := sampler.New(tr.N, tr.Seed)
	if err != nil {
		return Result{Trial: tr, Err: err}
	}

	g, err := s.Graph(tr.P)
	if err != nil {
		return Result{Trial: tr, Err: err}
	}

	size, err := components.MaxComponentSize(g, components.WithStrategy(strategy))
	if err != nil {
		return Result{Trial: tr, Err: err}
	}

	return Result{Trial: tr, MaxComponentSize: size}
}
