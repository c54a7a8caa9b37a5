// Package sweep runs batches of random-graph trials: sample G(n,p),
// measure the largest connected component, collect one record per
// (n, p, seed) combination.
//
// What
//
//   - Trial names one simulation: vertex count, edge probability, seed.
//   - Run(ctx, trials) maps over trials — optionally in parallel — and
//     returns one Result per trial, in trial order.
//   - Grid builders produce the trial slices the experiments actually use:
//     ProbabilityGrid sweeps p directly; DegreeGrid sweeps mean degree d and
//     converts via p = d/(n-1), the parameterization under which the giant
//     component appears at d = 1.
//   - WriteCSV emits `n,p,seed,max_component_size` rows for plotting.
//
// Failure isolation
//
//	Trials are independent, so one bad trial must not sink a sweep: a trial
//	failure (invalid n or p) is recorded in its Result.Err and the remaining
//	trials proceed. Run itself returns an error only for invalid options or
//	context cancellation. Since sampling is deterministic in its seed,
//	retrying a failed trial is never meaningful — fix its parameters.
//
// Parallelism and cancellation
//
//	Trials share no mutable state; WithWorkers(k) fans them out over an
//	errgroup with at most k in flight. Within a trial, sampling then
//	component detection run strictly sequentially. The context is checked
//	between trials only: a long-running trial completes, and trials never
//	scheduled carry ctx's error in their Result.Err.
//
// Monotonicity across a grid
//
//	Grid builders bind every trial to the same seed, so the sampler's
//	draw-reuse contract applies across the sweep: edge sets nest as p grows,
//	and the max component size is therefore non-decreasing along the grid.
//
// Usage
//
//	trials, err := sweep.DegreeGrid(50, 1, 0, 4, 0.25)
//	if err != nil { ... }
//	results, err := sweep.Run(ctx, trials, sweep.WithWorkers(4))
//	if err != nil { ... }
//	err = sweep.WriteCSV(os.Stdout, results)
package sweep
