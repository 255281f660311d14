// Package siatechf discovers translational equivalence classes in a point set.
//
// The engine enumerates every difference vector between two points of the
// set, turns each one into its maximal translatable pattern (MTP), collapses
// MTPs of the same shape, prunes shapes whose compression ratio cannot reach
// the requested threshold, and finally computes the exact set of translators
// of each remaining pattern.
//
// # Complexity
//
// The difference index holds one entry per pair of points, so time and memory
// grow with n². Compute refuses point sets larger than the configured limit
// (DefaultMaxPoints unless overridden with WithMaxPoints), and can reserve the
// estimated index size against a shared resource.Controller before building it.
//
// # Determinism
//
// Results are ordered by the first appearance of each difference vector when
// pairs (i, j) are enumerated with i ascending, then j ascending. The
// representative of each class is therefore the occurrence anchored at the
// earliest points.
package siatechf
