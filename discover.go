package geopattern

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/hupe1980/geopattern/internal/resource"
	"github.com/hupe1980/geopattern/notation"
	"github.com/hupe1980/geopattern/pointset"
	"github.com/hupe1980/geopattern/siatechf"
)

// Stats describes one discovery run.
type Stats = siatechf.Stats

// Occurrence is one occurrence of a pattern: the notation positions of its
// notes in pattern order.
type Occurrence struct {
	positions []notation.Position
}

// Positions returns a copy of the positions.
func (o Occurrence) Positions() []notation.Position { return slices.Clone(o.positions) }

// Len returns the number of notes.
func (o Occurrence) Len() int { return len(o.positions) }

// Events resolves the occurrence against score. score is only read.
func (o Occurrence) Events(score notation.Score) ([]notation.Event, error) {
	if score == nil {
		return nil, fmt.Errorf("%w: score must not be nil", ErrInvalidArgument)
	}
	out := make([]notation.Event, len(o.positions))
	for i, pos := range o.positions {
		ev, ok := score.At(pos)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, pos)
		}
		out[i] = ev
	}
	return out, nil
}

// Group holds every occurrence of one repeated shape. The first occurrence is
// the earliest one in the score.
type Group struct {
	occurrences []Occurrence
	ratio       float64
}

// Occurrences returns the occurrences of the shape.
func (g Group) Occurrences() []Occurrence { return slices.Clone(g.occurrences) }

// Len returns the number of occurrences.
func (g Group) Len() int { return len(g.occurrences) }

// Size returns the number of notes in each occurrence.
func (g Group) Size() int { return g.occurrences[0].Len() }

// CompressionRatio returns the compression ratio of the group.
func (g Group) CompressionRatio() float64 { return g.ratio }

// Discovery is the result of Discover.
type Discovery struct {
	score  notation.Score
	groups []Group
	stats  Stats
}

// Score returns the analysed score.
func (d *Discovery) Score() notation.Score { return d.score }

// Groups returns the discovered groups.
func (d *Discovery) Groups() []Group { return slices.Clone(d.groups) }

// Len returns the number of groups.
func (d *Discovery) Len() int { return len(d.groups) }

// Stats returns statistics of the run.
func (d *Discovery) Stats() Stats { return d.stats }

// Patterns resolves every occurrence of every group against the score.
func (d *Discovery) Patterns() ([][][]notation.Event, error) {
	out := make([][][]notation.Event, len(d.groups))
	for i, g := range d.groups {
		out[i] = make([][]notation.Event, len(g.occurrences))
		for j, occ := range g.occurrences {
			events, err := occ.Events(d.score)
			if err != nil {
				return nil, err
			}
			out[i][j] = events
		}
	}
	return out, nil
}

// Discover finds every repeated pattern in score whose compression ratio is at
// least minRatio.
func Discover(score notation.Score, minRatio float64, optFns ...Option) (*Discovery, error) {
	return DiscoverContext(context.Background(), score, minRatio, optFns...)
}

// DiscoverContext is like Discover. ctx is checked before the run starts and
// passed to the logger; a started run is not interrupted.
func DiscoverContext(ctx context.Context, score notation.Score, minRatio float64, optFns ...Option) (d *Discovery, err error) {
	o := applyOptions(optFns)
	start := time.Now()

	var stats Stats
	defer func() {
		groups := 0
		if d != nil {
			groups = d.Len()
		}
		o.metricsCollector.RecordDiscover(stats.Points, groups, time.Since(start), err)
		o.logger.WithRatio(minRatio).LogDiscover(ctx, stats, groups, err)
	}()

	if math.IsNaN(minRatio) || minRatio < 0 {
		return nil, &ErrInvalidCompressionRatio{Ratio: minRatio}
	}
	if score == nil {
		return nil, fmt.Errorf("%w: score must not be nil", ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	layout, err := o.layout()
	if err != nil {
		return nil, translateError(err)
	}
	ps, err := pointset.FromScore(score, pointset.WithLayout(layout))
	if err != nil {
		return nil, translateError(err)
	}

	tecs, stats, err := siatechf.ComputeWithStats(ps, minRatio,
		siatechf.WithMaxPoints(o.maxPoints),
		siatechf.WithController(resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit})),
	)
	if err != nil {
		return nil, translateError(err)
	}

	groups := make([]Group, 0, len(tecs))
	for _, tec := range tecs {
		g := Group{
			occurrences: make([]Occurrence, 0, tec.Len()),
			ratio:       tec.CompressionRatio(),
		}
		for _, tr := range tec.Translators() {
			positions, ok := ps.Occurrence(tec.Pattern(), tr)
			if !ok {
				return nil, fmt.Errorf("pattern %v translated by %v leaves the point set", tec.Pattern(), tr)
			}
			g.occurrences = append(g.occurrences, Occurrence{positions: positions})
		}
		groups = append(groups, g)
	}

	return &Discovery{score: score, groups: groups, stats: stats}, nil
}
