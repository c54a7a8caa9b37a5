// Package sweep - CSV emission of sweep results for downstream plotting.
package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the stable column layout consumed by plotting scripts.
var csvHeader = []string{"n", "p", "seed", "max_component_size"}

// WriteCSV writes one `n,p,seed,max_component_size` row per successful
// result, preceded by a header. Failed trials are skipped: their error
// lives in the in-memory Result, and a half-row would only corrupt the
// table. Probabilities are formatted with the shortest exact representation
// so rows round-trip without loss.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("sweep: write header: %w", err)
	}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		row := []string{
			strconv.Itoa(r.N),
			strconv.FormatFloat(r.P, 'g', -1, 64),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.MaxComponentSize),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("sweep: write row (n=%d p=%v seed=%d): %w", r.N, r.P, r.Seed, err)
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("sweep: flush: %w", err)
	}

	return nil
}
