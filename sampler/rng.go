// Package sampler - RNG utilities for deterministic edge sampling.
//
// This file centralizes random generation for G(n,p) draws.
//
// Goals:
//   - Determinism: same seed ⇒ identical per-pair draw sequence across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics, no logging; sentinel errors live in types.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Graph/EdgeCountAt call builds
//     its own replay source, so concurrent calls on one Sampler never share state.
package sampler

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
