// Package geometry provides the point and pattern types that encode note onsets
// as vectors.
//
// # Layouts
//
// A Layout declares the components of every point built from it, in comparison
// order. Each component is either Fractional (a float that accumulates drift,
// such as an onset offset) or Integral (an exact whole number, such as a MIDI
// pitch). The music layout is one concrete configuration:
//
//	layout := geometry.Music()              // (offset, pitch, part)
//	p := layout.MustPoint(0.125, 62, 0)
//
// # Raw and Rounded Values
//
// Summing rational durations as floats accumulates error. Every fractional
// component therefore keeps two values: the raw value used for arithmetic and
// a value rounded to a fixed number of decimal places (8 by default) used for
// ordering, equality and hashing. Arithmetic always works on raw values so
// rounding never compounds.
//
// # Patterns
//
// A Pattern is an ordered point sequence. Its vectorized form, the sequence of
// consecutive differences, is identical for any two patterns that differ by a
// uniform translation:
//
//	a := geometry.MustPattern(p0, p1, p2)
//	b := a.Translate(t)
//	a.Vectorized().Equal(b.Vectorized()) // true
//
// # Hashing
//
// Points and patterns hash with the multilinear family from package hash,
// using the coefficients of their layout's seed provider. Map and Set use those
// hashes; keys stored in one Map must come from one Layout.
//
// Points and patterns are immutable and safe to share between goroutines.
package geometry
