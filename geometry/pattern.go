package geometry

import (
	"fmt"
	"iter"
	"strings"
)

// Pattern is an immutable, ordered sequence of points.
//
// Order and exact gaps are significant: two patterns holding the same points
// in a different order are not equal.
type Pattern struct {
	layout *Layout
	points []Point
	hash   uint64
}

// NewPattern builds a pattern from a non-empty point sequence.
// All points must share one dimension.
func NewPattern(points ...Point) (Pattern, error) {
	if len(points) == 0 {
		return Pattern{}, fmt.Errorf("%w: pattern must not be empty", ErrInvalidArgument)
	}
	first := points[0]
	if !first.IsValid() {
		return Pattern{}, fmt.Errorf("%w: pattern point 0 is not initialised", ErrInvalidArgument)
	}
	for _, p := range points[1:] {
		if err := first.check(p); err != nil {
			return Pattern{}, err
		}
	}
	return newPattern(first.layout, append([]Point(nil), points...)), nil
}

// MustPattern is like NewPattern but panics on error.
func MustPattern(points ...Point) Pattern {
	p, err := NewPattern(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// newPattern takes ownership of points.
func newPattern(layout *Layout, points []Point) Pattern {
	m := layout.hasher
	for _, p := range points {
		layout.writeWords(&m, p)
	}
	return Pattern{layout: layout, points: points, hash: m.Sum64()}
}

// Len returns the number of points.
func (p Pattern) Len() int { return len(p.points) }

// At returns the i-th point.
func (p Pattern) At(i int) Point { return p.points[i] }

// First returns the first point. It panics on an empty pattern.
func (p Pattern) First() Point { return p.points[0] }

// Last returns the last point. It panics on an empty pattern.
func (p Pattern) Last() Point { return p.points[len(p.points)-1] }

// Layout returns the layout shared by the points.
func (p Pattern) Layout() *Layout { return p.layout }

// Points iterates over the points in order.
func (p Pattern) Points() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, pt := range p.points {
			if !yield(i, pt) {
				return
			}
		}
	}
}

// Hash returns the multilinear hash over every point in order.
func (p Pattern) Hash() uint64 { return p.hash }

// Equal reports full-sequence equality.
func (p Pattern) Equal(o Pattern) bool {
	if len(p.points) != len(o.points) {
		return false
	}
	if p.layout == o.layout && p.hash != o.hash {
		return false
	}
	for i := range p.points {
		if !p.points[i].Equal(o.points[i]) {
			return false
		}
	}
	return true
}

// Vectorized returns the consecutive difference vectors of the pattern,
// computed from rounded component values. The result has Len()-1 points, or
// none for a single-point pattern.
//
// Patterns that differ only by a uniform translation vectorize identically.
func (p Pattern) Vectorized() Pattern {
	if len(p.points) < 2 {
		return newPattern(p.layout, nil)
	}
	diffs := make([]Point, len(p.points)-1)
	for i := 1; i < len(p.points); i++ {
		prev, cur := p.points[i-1], p.points[i]
		raw := make([]float64, len(cur.rounded))
		for c := range raw {
			raw[c] = cur.rounded[c] - prev.rounded[c]
		}
		diffs[i-1] = p.layout.newPoint(raw)
	}
	return newPattern(p.layout, diffs)
}

// Translate returns the pattern shifted by t.
// It panics with *ErrDimensionMismatch if the dimensions differ.
func (p Pattern) Translate(t Point) Pattern {
	shifted := make([]Point, len(p.points))
	for i, pt := range p.points {
		shifted[i] = pt.Add(t)
	}
	return newPattern(p.layout, shifted)
}

// Span returns Last() - First(), or the origin for a single-point pattern.
func (p Pattern) Span() Point {
	return p.Last().Sub(p.First())
}

// String formats the pattern as "{(0, 60, 0), (0.125, 62, 0)}".
func (p Pattern) String() string {
	parts := make([]string, len(p.points))
	for i, pt := range p.points {
		parts[i] = pt.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
