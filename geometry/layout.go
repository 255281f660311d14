package geometry

import (
	"fmt"
	"math"

	"github.com/hupe1980/geopattern/hash"
)

// DefaultPrecision is the number of decimal places fractional components are
// rounded to before comparison and hashing.
const DefaultPrecision = 8

// maxPrecision keeps the rounding factor within float64's exact integer range.
const maxPrecision = 15

// Kind classifies a point component.
type Kind uint8

const (
	// Fractional components are rounded before comparison and hashing.
	Fractional Kind = iota
	// Integral components hold exact whole numbers.
	Integral
)

func (k Kind) String() string {
	switch k {
	case Fractional:
		return "Fractional"
	case Integral:
		return "Integral"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Component describes one coordinate of a point.
type Component struct {
	Name string
	Kind Kind
}

// Components of the music layout, in comparison order.
const (
	MusicOffset = iota
	MusicPitch
	MusicPart
)

// Layout fixes the dimension, component kinds, rounding precision and hash
// coefficients shared by a family of points.
type Layout struct {
	components []Component
	precision  int
	factor     float64
	seeds      *hash.Seeds
	hasher     hash.Multilinear
	words      int
}

type layoutOptions struct {
	precision int
	seeds     *hash.Seeds
}

// LayoutOption configures a Layout.
type LayoutOption func(*layoutOptions)

// WithPrecision sets the number of decimal places fractional components are
// rounded to. Defaults to DefaultPrecision.
func WithPrecision(digits int) LayoutOption {
	return func(o *layoutOptions) {
		o.precision = digits
	}
}

// WithSeeds sets the hash coefficient provider. If nil is passed,
// hash.Default() is used.
func WithSeeds(seeds *hash.Seeds) LayoutOption {
	return func(o *layoutOptions) {
		o.seeds = seeds
	}
}

// NewLayout creates a layout with the given components in comparison order.
func NewLayout(components []Component, optFns ...LayoutOption) (*Layout, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("%w: layout needs at least one component", ErrInvalidArgument)
	}

	o := layoutOptions{precision: DefaultPrecision}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.precision < 0 || o.precision > maxPrecision {
		return nil, fmt.Errorf("%w: precision must be in [0, %d], was %d", ErrInvalidArgument, maxPrecision, o.precision)
	}
	if o.seeds == nil {
		o.seeds = hash.Default()
	}

	l := &Layout{
		components: append([]Component(nil), components...),
		precision:  o.precision,
		factor:     math.Pow(10, float64(o.precision)),
		seeds:      o.seeds,
		hasher:     hash.NewMultilinear(o.seeds),
	}
	for _, c := range components {
		switch c.Kind {
		case Fractional:
			l.words += 2
		case Integral:
			l.words++
		default:
			return nil, fmt.Errorf("%w: component %q has unknown kind %v", ErrInvalidArgument, c.Name, c.Kind)
		}
	}
	return l, nil
}

// MusicComponents returns the (offset, pitch, part) components of the music
// layout. Offsets are in whole notes; pitch is a MIDI note number.
func MusicComponents() []Component {
	return []Component{
		{Name: "offset", Kind: Fractional},
		{Name: "pitch", Kind: Integral},
		{Name: "part", Kind: Integral},
	}
}

// Music returns the music layout. It panics if an option is invalid.
func Music(optFns ...LayoutOption) *Layout {
	l, err := NewLayout(MusicComponents(), optFns...)
	if err != nil {
		panic(err)
	}
	return l
}

// Dim returns the number of components.
func (l *Layout) Dim() int { return len(l.components) }

// Component returns the i-th component description.
func (l *Layout) Component(i int) Component { return l.components[i] }

// Precision returns the rounding precision in decimal places.
func (l *Layout) Precision() int { return l.precision }

// Seeds returns the hash coefficient provider.
func (l *Layout) Seeds() *hash.Seeds { return l.seeds }

// Words returns the number of hash words a single point contributes.
func (l *Layout) Words() int { return l.words }

// Point builds a point from raw component values.
func (l *Layout) Point(values ...float64) (Point, error) {
	if len(values) != len(l.components) {
		return Point{}, &ErrDimensionMismatch{Expected: len(l.components), Actual: len(values)}
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Point{}, fmt.Errorf("%w: component %q must be finite, was %v", ErrInvalidArgument, l.components[i].Name, v)
		}
		if l.components[i].Kind == Integral && math.Trunc(v) != v {
			return Point{}, fmt.Errorf("%w: component %q must be integral, was %v", ErrInvalidArgument, l.components[i].Name, v)
		}
	}
	return l.newPoint(append([]float64(nil), values...)), nil
}

// MustPoint is like Point but panics on error.
func (l *Layout) MustPoint(values ...float64) Point {
	p, err := l.Point(values...)
	if err != nil {
		panic(err)
	}
	return p
}

// Origin returns the all-zero point.
func (l *Layout) Origin() Point {
	return l.newPoint(make([]float64, len(l.components)))
}

// newPoint takes ownership of raw.
func (l *Layout) newPoint(raw []float64) Point {
	rounded := make([]float64, len(raw))
	m := l.hasher
	for i, v := range raw {
		switch l.components[i].Kind {
		case Fractional:
			r := math.Round(v*l.factor) / l.factor
			if r == 0 {
				r = 0 // -0 would hash differently
			}
			rounded[i] = r
			m.WriteFloat64(r)
		case Integral:
			rounded[i] = v
			m.WriteInt(int64(v))
		}
	}
	return Point{layout: l, raw: raw, rounded: rounded, hash: m.Sum64()}
}

// writeWords feeds the hash words of p into m.
func (l *Layout) writeWords(m *hash.Multilinear, p Point) {
	for i, r := range p.rounded {
		switch l.components[i].Kind {
		case Fractional:
			m.WriteFloat64(r)
		case Integral:
			m.WriteInt(int64(r))
		}
	}
}
