// Package testutil provides testing utilities for strvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for random strings
// and skewed vocabularies (so that generated data contains duplicates).
//
// # Random Strings
//
//	rng := testutil.NewRNG(seed)
//	s := rng.String(8)               // 8 lowercase letters
//	words := rng.Strings(100, 1, 12) // 100 strings, length in [1, 12]
//
// # Duplicates
//
//	vocab := rng.Strings(10, 3, 3)
//	picks := rng.Words(1000, vocab, 1.5) // Zipf-skewed picks from vocab
package testutil
