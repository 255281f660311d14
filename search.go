package geopattern

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/geopattern/notation"
	"github.com/hupe1980/geopattern/pointset"
	"github.com/hupe1980/geopattern/search"
)

// Search returns every exact occurrence of query in score, in any
// transposition, ordered by the position of the first note.
func Search(score, query notation.Score, optFns ...Option) ([]Occurrence, error) {
	return SearchContext(context.Background(), score, query, optFns...)
}

// SearchContext is like Search. ctx is checked before the search starts and
// passed to the logger.
func SearchContext(ctx context.Context, score, query notation.Score, optFns ...Option) (occs []Occurrence, err error) {
	o := applyOptions(optFns)
	start := time.Now()

	queryPoints := 0
	defer func() {
		o.metricsCollector.RecordSearch(len(occs), time.Since(start), err)
		o.logger.LogSearch(ctx, queryPoints, len(occs), err)
	}()

	if score == nil || query == nil {
		return nil, fmt.Errorf("%w: score and query must not be nil", ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	layout, err := o.layout()
	if err != nil {
		return nil, translateError(err)
	}
	s, err := search.New(score, pointset.WithLayout(layout))
	if err != nil {
		return nil, translateError(err)
	}

	q, err := s.Query(query)
	if err != nil {
		return nil, translateError(err)
	}
	queryPoints = q.Len()

	matches, err := search.Find(s.PointSet(), q)
	if err != nil {
		return nil, translateError(err)
	}

	occs = make([]Occurrence, len(matches))
	for i, m := range matches {
		occs[i] = Occurrence{positions: s.Positions(m)}
	}
	return occs, nil
}
