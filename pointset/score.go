package pointset

import (
	"fmt"

	"github.com/hupe1980/geopattern/geometry"
	"github.com/hupe1980/geopattern/notation"
)

type options struct {
	layout *geometry.Layout
}

// Option configures FromScore.
type Option func(*options)

// WithLayout sets the music layout points are built in. The layout must have
// the three music components. Defaults to geometry.Music().
func WithLayout(layout *geometry.Layout) Option {
	return func(o *options) {
		o.layout = layout
	}
}

// FromScore builds the point set of a score.
//
// The score is trusted to be well formed; malformed input is the notation
// layer's responsibility.
func FromScore(score notation.Score, optFns ...Option) (*PointSet, error) {
	if score == nil {
		return nil, fmt.Errorf("%w: score must not be nil", ErrInvalidArgument)
	}

	o := options{}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.layout == nil {
		o.layout = geometry.Music()
	}
	if o.layout.Dim() != 3 {
		return nil, fmt.Errorf("music layout: %w", &geometry.ErrDimensionMismatch{Expected: 3, Actual: o.layout.Dim()})
	}

	var (
		entries []Entry
		clock   offsetClock
	)
	for ev := range score.Events() {
		offset := clock.advance(score, ev)

		switch ev.Onset.Kind() {
		case notation.NoteOnset:
			entries = append(entries, Entry{
				Point:    o.layout.MustPoint(offset, float64(ev.Onset.Pitch(0)), float64(ev.Position.Part)),
				Position: ev.Position,
			})
		case notation.ChordOnset:
			for ci := range ev.Onset.Len() {
				entries = append(entries, Entry{
					Point:    o.layout.MustPoint(offset, float64(ev.Onset.Pitch(ci)), float64(ev.Position.Part)),
					Position: ev.Position.InChord(ci),
				})
			}
		case notation.RestOnset, notation.TieContinuation:
			// No onset.
		default:
			return nil, fmt.Errorf("%w: unknown onset kind %v at %v", ErrInvalidArgument, ev.Onset.Kind(), ev.Position)
		}
	}

	return build(o.layout, entries), nil
}

// offsetClock tracks the onset offset of the current event during a part-wise
// traversal.
type offsetClock struct {
	started  bool
	prev     notation.Position
	prevDur  float64
	measures float64 // length of the completed measures of the current part
	within   float64 // offset inside the current measure, voice and staff
}

// advance returns the offset of ev and moves the clock past it.
func (c *offsetClock) advance(score notation.Score, ev notation.Event) float64 {
	pos := ev.Position
	if c.started {
		switch {
		case pos.Part != c.prev.Part:
			c.measures = 0
			c.within = 0
		case pos.Measure != c.prev.Measure:
			c.measures += score.MeasureDuration(c.prev.Part, c.prev.Staff, c.prev.Measure).Float64()
			c.within = 0
		case pos.Voice != c.prev.Voice || pos.Staff != c.prev.Staff:
			c.within = 0
		default:
			c.within += c.prevDur
		}
	}

	offset := c.measures + c.within
	c.started = true
	c.prev = pos
	c.prevDur = ev.Duration.Float64()
	return offset
}
