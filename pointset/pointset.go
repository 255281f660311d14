package pointset

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hupe1980/geopattern/geometry"
	"github.com/hupe1980/geopattern/notation"
)

// ErrInvalidArgument is returned (or wrapped) for invalid inputs.
var ErrInvalidArgument = errors.New("invalid argument")

// Entry pairs a point with the notation position that produced it.
type Entry struct {
	Point    geometry.Point
	Position notation.Position
}

// PointSet is a lexicographically sorted set of points with a reverse lookup
// from point to notation position.
type PointSet struct {
	layout    *geometry.Layout
	points    []geometry.Point
	positions []notation.Position
	index     *geometry.Map[geometry.Point, int]
}

// New builds a point set from arbitrary entries. Points are re-expressed in
// layout so that all of them share its rounding and hash coefficients.
func New(layout *geometry.Layout, entries ...Entry) (*PointSet, error) {
	if layout == nil {
		return nil, fmt.Errorf("%w: layout must not be nil", ErrInvalidArgument)
	}

	normalized := make([]Entry, len(entries))
	raw := make([]float64, layout.Dim())
	for i, e := range entries {
		if !e.Point.IsValid() {
			return nil, fmt.Errorf("%w: entry %d has no point", ErrInvalidArgument, i)
		}
		if e.Point.Layout() == layout {
			normalized[i] = e
			continue
		}
		if e.Point.Dim() != layout.Dim() {
			return nil, fmt.Errorf("entry %d: %w", i, &geometry.ErrDimensionMismatch{Expected: layout.Dim(), Actual: e.Point.Dim()})
		}
		for c := range raw {
			raw[c] = e.Point.Raw(c)
		}
		p, err := layout.Point(raw...)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		normalized[i] = Entry{Point: p, Position: e.Position}
	}

	return build(layout, normalized), nil
}

// build takes ownership of entries.
func build(layout *geometry.Layout, entries []Entry) *PointSet {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Point.Compare(b.Point)
	})

	ps := &PointSet{
		layout:    layout,
		points:    make([]geometry.Point, 0, len(entries)),
		positions: make([]notation.Position, 0, len(entries)),
		index:     geometry.NewMap[geometry.Point, int](len(entries)),
	}
	for _, e := range entries {
		if _, added := ps.index.Insert(e.Point, len(ps.points)); !added {
			continue
		}
		ps.points = append(ps.points, e.Point)
		ps.positions = append(ps.positions, e.Position)
	}
	return ps
}

// Layout returns the layout of the points.
func (ps *PointSet) Layout() *geometry.Layout { return ps.layout }

// Len returns the number of distinct points.
func (ps *PointSet) Len() int { return len(ps.points) }

// At returns the i-th point in ascending order.
func (ps *PointSet) At(i int) geometry.Point { return ps.points[i] }

// Position returns the notation position of the i-th point.
func (ps *PointSet) Position(i int) notation.Position { return ps.positions[i] }

// All iterates over the points in ascending order.
func (ps *PointSet) All() iter.Seq2[int, geometry.Point] {
	return func(yield func(int, geometry.Point) bool) {
		for i, p := range ps.points {
			if !yield(i, p) {
				return
			}
		}
	}
}

// IndexOf returns the index of p, if p is in the set.
func (ps *PointSet) IndexOf(p geometry.Point) (int, bool) {
	return ps.index.Get(p)
}

// PositionOf returns the notation position of p, if p is in the set.
func (ps *PointSet) PositionOf(p geometry.Point) (notation.Position, bool) {
	i, ok := ps.index.Get(p)
	if !ok {
		return notation.Position{}, false
	}
	return ps.positions[i], true
}

// Occurrence translates every point of pattern by translator and returns the
// positions of the translated points, in pattern order. It reports false if
// any translated point is not in the set.
func (ps *PointSet) Occurrence(pattern geometry.Pattern, translator geometry.Point) ([]notation.Position, bool) {
	out := make([]notation.Position, 0, pattern.Len())
	for _, p := range pattern.Points() {
		pos, ok := ps.PositionOf(p.Add(translator))
		if !ok {
			return nil, false
		}
		out = append(out, pos)
	}
	return out, true
}

func (ps *PointSet) String() string {
	var sb strings.Builder
	for _, p := range ps.points {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
