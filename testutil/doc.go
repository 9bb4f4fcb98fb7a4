// Package testutil provides testing utilities for typedframe.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random values, series and frames
// with a seeded, thread-safe RNG so failures reproduce.
//
// # Random Frame Generation
//
//	rng := testutil.NewRNG(seed)
//	f := rng.Frame(100, frame.KindInt, frame.KindString, frame.KindTime)
//
// # Random Positions
//
//	idx := rng.Positions(10, f.NumRows()) // distinct in-range positions
package testutil
