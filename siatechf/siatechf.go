package siatechf

import (
	"fmt"
	"math"

	"github.com/hupe1980/geopattern/geometry"
	"github.com/hupe1980/geopattern/internal/bitmap"
	"github.com/hupe1980/geopattern/internal/resource"
	"github.com/hupe1980/geopattern/pointset"
)

// DefaultMaxPoints is the default size limit of Compute.
const DefaultMaxPoints = 10_000

type options struct {
	maxPoints  int
	controller *resource.Controller
}

// Option configures Compute.
type Option func(*options)

// WithMaxPoints sets the largest point set Compute accepts.
// A value <= 0 disables the limit.
func WithMaxPoints(n int) Option {
	return func(o *options) {
		o.maxPoints = n
	}
}

// WithController reserves the estimated difference index size against c for
// the duration of the run.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// Stats describes one run.
type Stats struct {
	Points         int
	Pairs          int64
	IndexBytes     int64 // estimated memory reserved for the difference index
	Candidates     int   // distinct difference vectors, one MTP each
	DistinctShapes int   // candidates left after shape deduplication
	Pruned         int   // shapes whose ratio bound is below the threshold
	Rejected       int   // shapes whose exact ratio is below the threshold
	Emitted        int
}

// Compute returns every translational equivalence class of ps whose
// compression ratio is at least minRatio.
func Compute(ps *pointset.PointSet, minRatio float64, optFns ...Option) ([]Tec, error) {
	tecs, _, err := ComputeWithStats(ps, minRatio, optFns...)
	return tecs, err
}

// ComputeWithStats is like Compute and also reports run statistics.
func ComputeWithStats(ps *pointset.PointSet, minRatio float64, optFns ...Option) ([]Tec, Stats, error) {
	var stats Stats

	if ps == nil {
		return nil, stats, fmt.Errorf("%w: point set must not be nil", ErrInvalidArgument)
	}
	if math.IsNaN(minRatio) || minRatio < 0 {
		return nil, stats, fmt.Errorf("%w: compression ratio must be non-negative, was %v", ErrInvalidArgument, minRatio)
	}

	o := options{maxPoints: DefaultMaxPoints}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	n := ps.Len()
	stats.Points = n
	if n == 0 {
		return nil, stats, nil
	}
	if o.maxPoints > 0 && n > o.maxPoints {
		return nil, stats, &ErrPointLimit{Points: n, Limit: o.maxPoints}
	}
	if n > math.MaxInt32 {
		return nil, stats, &ErrPointLimit{Points: n, Limit: math.MaxInt32}
	}

	stats.Pairs = pairCount(n)
	stats.IndexBytes = stats.Pairs * indexBytesPerPair
	if err := o.controller.AcquireMemory(stats.IndexBytes); err != nil {
		return nil, stats, fmt.Errorf("difference index for %d points: %w", n, err)
	}
	defer o.controller.ReleaseMemory(stats.IndexBytes)

	idx := buildIndex(ps)
	stats.Candidates = idx.Len()

	var (
		tecs    []Tec
		shapes  = geometry.NewSet[geometry.Pattern](idx.Len())
		covered = bitmap.Get()
	)
	defer bitmap.Put(covered)

	for slot := range idx.Len() {
		pattern := mtp(ps, idx.group(slot))
		if !shapes.Add(pattern.Vectorized()) {
			continue
		}
		stats.DistinctShapes++

		k := pattern.Len()
		m := len(idx.lookup(pattern.Span()))
		if upperBound(k, m) < minRatio {
			stats.Pruned++
			continue
		}

		tec, err := classOf(ps, idx, pattern, covered)
		if err != nil {
			return nil, stats, err
		}
		if tec.ratio < minRatio {
			stats.Rejected++
			continue
		}
		tecs = append(tecs, tec)
	}
	stats.Emitted = len(tecs)

	return tecs, stats, nil
}

// mtp builds the maximal translatable pattern of a difference group: the
// first point of every pair.
func mtp(ps *pointset.PointSet, group []pair) geometry.Pattern {
	points := make([]geometry.Point, len(group))
	for t, p := range group {
		points[t] = ps.At(int(p.i))
	}
	return geometry.MustPattern(points...)
}

// classOf computes the translators of pattern and its exact compression
// ratio. covered is scratch space.
func classOf(ps *pointset.PointSet, idx *diffIndex, pattern geometry.Pattern, covered *bitmap.IndexSet) (Tec, error) {
	hits := targets(ps, idx, pattern)
	last := pattern.Last()

	translators := make([]geometry.Point, len(hits))
	for i, h := range hits {
		translators[i] = ps.At(h).Sub(last)
	}

	covered.Clear()
	var outside *geometry.Set[geometry.Point]
	for _, tr := range translators {
		for _, p := range pattern.Points() {
			q := p.Add(tr)
			if i, ok := ps.IndexOf(q); ok {
				covered.Add(i)
				continue
			}
			if outside == nil {
				outside = geometry.NewSet[geometry.Point](0)
			}
			outside.Add(q)
		}
	}
	n := covered.Cardinality()
	if outside != nil {
		n += outside.Len()
	}

	ratio, err := CompressionRatio(n, pattern.Len(), len(translators))
	if err != nil {
		return Tec{}, fmt.Errorf("pattern %v: %w", pattern, err)
	}
	return Tec{pattern: pattern, translators: translators, covered: n, ratio: ratio}, nil
}
