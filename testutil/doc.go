// Package testutil provides testing utilities for geopattern.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random scores, the two-motif reference score, and
// helpers to compare translational equivalence classes independent of the
// occurrence chosen as representative.
//
// # Random Scores
//
//	rng := testutil.NewRNG(seed)
//	sheet := rng.RandomSheet(2, 8) // 2 parts, 8 measures each
//
// # Comparing Classes
//
//	got := testutil.Expand(tec.Pattern(), tec.Translators())
//	want := testutil.Expand(pattern, translators)
//	assert.Equal(t, want, got)
//
// # Ground Truth
//
//	translators := testutil.BruteForceTranslators(points, pattern)
package testutil
