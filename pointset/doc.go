// Package pointset builds the point set representation of a score.
//
// Every note onset becomes one point (offset, pitch, part) in the music
// layout; a chord contributes one point per note. Rests and tie continuations
// contribute nothing. Offsets are measured in whole notes from the start of the
// part. The points are sorted ascending by (offset, pitch, part) and each one
// can be traced back to the notation position that produced it.
//
//	ps, err := pointset.FromScore(score)
//	for i := range ps.Len() {
//	    fmt.Println(ps.At(i), ps.Position(i))
//	}
//
// Two onsets that round to the same point collapse to one point; the position
// of the first one in traversal order is kept.
//
// A PointSet is immutable once built and safe for concurrent reads.
package pointset
