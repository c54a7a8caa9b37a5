package sweep_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/ergraph/sweep"
)

// BenchmarkRun_DegreeGrid measures a full near-threshold sweep, the
// workload the package exists for. Sampling dominates (Θ(n²) per trial).
func BenchmarkRun_DegreeGrid(b *testing.B) {
	trials, err := sweep.DegreeGrid(500, 1, 0, 2, 0.25)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = sweep.Run(context.Background(), trials); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_Parallel runs the same grid with four workers for a direct
// scheduling comparison against the sequential benchmark above.
func BenchmarkRun_Parallel(b *testing.B) {
	trials, err := sweep.DegreeGrid(500, 1, 0, 2, 0.25)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = sweep.Run(context.Background(), trials, sweep.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}
