package search

import (
	"errors"
	"fmt"

	"github.com/hupe1980/geopattern/geometry"
	"github.com/hupe1980/geopattern/notation"
	"github.com/hupe1980/geopattern/pointset"
)

var (
	// ErrInvalidArgument is returned (or wrapped) for invalid inputs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyQuery is returned for a query without any note onset.
	ErrEmptyQuery = errors.New("query has no onsets")
)

// Match is one occurrence of a query.
type Match struct {
	// Translator maps the query onto the occurrence.
	Translator geometry.Point
	// Indices holds the point set index of every query point, in query order.
	Indices []int
}

// Find returns every translation of query into ps, ordered by the index the
// first query point is mapped onto.
func Find(ps *pointset.PointSet, query geometry.Pattern) ([]Match, error) {
	if ps == nil {
		return nil, fmt.Errorf("%w: point set must not be nil", ErrInvalidArgument)
	}
	if query.Len() == 0 {
		return nil, ErrEmptyQuery
	}
	if ps.Len() == 0 {
		return nil, nil
	}

	q, err := inLayout(ps.Layout(), query)
	if err != nil {
		return nil, err
	}

	first := q.First()
	var matches []Match
	for i := range ps.Len() {
		tr := ps.At(i).Sub(first)
		indices := make([]int, q.Len())
		indices[0] = i

		ok := true
		for t := 1; t < q.Len(); t++ {
			idx, found := ps.IndexOf(q.At(t).Add(tr))
			if !found {
				ok = false
				break
			}
			indices[t] = idx
		}
		if ok {
			matches = append(matches, Match{Translator: tr, Indices: indices})
		}
	}
	return matches, nil
}

// inLayout re-expresses query in layout so that hashes agree with the set.
func inLayout(layout *geometry.Layout, query geometry.Pattern) (geometry.Pattern, error) {
	if query.Layout() == layout {
		return query, nil
	}
	if d := query.First().Dim(); d != layout.Dim() {
		return geometry.Pattern{}, fmt.Errorf("query: %w", &geometry.ErrDimensionMismatch{Expected: layout.Dim(), Actual: d})
	}

	points := make([]geometry.Point, query.Len())
	raw := make([]float64, layout.Dim())
	for i, p := range query.Points() {
		for c := range raw {
			raw[c] = p.Raw(c)
		}
		lp, err := layout.Point(raw...)
		if err != nil {
			return geometry.Pattern{}, fmt.Errorf("query point %d: %w", i, err)
		}
		points[i] = lp
	}
	return geometry.NewPattern(points...)
}

// Searcher answers queries against one score. It converts the score to a
// point set once.
type Searcher struct {
	score notation.Score
	ps    *pointset.PointSet
}

// New creates a Searcher for score.
func New(score notation.Score, optFns ...pointset.Option) (*Searcher, error) {
	ps, err := pointset.FromScore(score, optFns...)
	if err != nil {
		return nil, err
	}
	return &Searcher{score: score, ps: ps}, nil
}

// PointSet returns the point set queries are matched against.
func (s *Searcher) PointSet() *pointset.PointSet { return s.ps }

// Query converts a score excerpt to a query pattern in the searcher's layout.
func (s *Searcher) Query(query notation.Score) (geometry.Pattern, error) {
	qs, err := pointset.FromScore(query, pointset.WithLayout(s.ps.Layout()))
	if err != nil {
		return geometry.Pattern{}, fmt.Errorf("query: %w", err)
	}
	if qs.Len() == 0 {
		return geometry.Pattern{}, ErrEmptyQuery
	}
	points := make([]geometry.Point, 0, qs.Len())
	for _, p := range qs.All() {
		points = append(points, p)
	}
	return geometry.NewPattern(points...)
}

// FindMatches returns the matches of a score excerpt.
func (s *Searcher) FindMatches(query notation.Score) ([]Match, error) {
	q, err := s.Query(query)
	if err != nil {
		return nil, err
	}
	return Find(s.ps, q)
}

// FindPositions returns the notation positions of every occurrence of query,
// one slice per occurrence in query point order.
func (s *Searcher) FindPositions(query notation.Score) ([][]notation.Position, error) {
	matches, err := s.FindMatches(query)
	if err != nil {
		return nil, err
	}
	out := make([][]notation.Position, len(matches))
	for i, m := range matches {
		out[i] = s.Positions(m)
	}
	return out, nil
}

// FindOccurrences returns the events of every occurrence of query.
func (s *Searcher) FindOccurrences(query notation.Score) ([][]notation.Event, error) {
	positions, err := s.FindPositions(query)
	if err != nil {
		return nil, err
	}
	out := make([][]notation.Event, len(positions))
	for i, occ := range positions {
		events := make([]notation.Event, 0, len(occ))
		for _, pos := range occ {
			ev, ok := s.score.At(pos)
			if !ok {
				return nil, fmt.Errorf("%w: position %v not in score", ErrInvalidArgument, pos)
			}
			events = append(events, ev)
		}
		out[i] = events
	}
	return out, nil
}

// Positions maps the indices of m to notation positions.
func (s *Searcher) Positions(m Match) []notation.Position {
	out := make([]notation.Position, len(m.Indices))
	for i, idx := range m.Indices {
		out[i] = s.ps.Position(idx)
	}
	return out
}
