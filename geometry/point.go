package geometry

import (
	"cmp"
	"strconv"
	"strings"
)

// Point is an immutable vector whose components follow a Layout.
//
// The zero Point is invalid; build points with Layout.Point.
type Point struct {
	layout  *Layout
	raw     []float64
	rounded []float64
	hash    uint64
}

// Layout returns the layout the point was built from.
func (p Point) Layout() *Layout { return p.layout }

// IsValid reports whether p was built from a layout.
func (p Point) IsValid() bool { return p.layout != nil }

// Dim returns the number of components.
func (p Point) Dim() int { return len(p.raw) }

// Raw returns the unrounded value of component i.
func (p Point) Raw(i int) float64 { return p.raw[i] }

// Rounded returns the value of component i used for comparison and hashing.
func (p Point) Rounded(i int) float64 { return p.rounded[i] }

// Hash returns the multilinear hash of the rounded components.
func (p Point) Hash() uint64 { return p.hash }

// Add returns p + o computed on raw values.
// It panics with *ErrDimensionMismatch if the dimensions differ.
func (p Point) Add(o Point) Point {
	r, err := p.TryAdd(o)
	if err != nil {
		panic(err)
	}
	return r
}

// Sub returns p - o computed on raw values.
// It panics with *ErrDimensionMismatch if the dimensions differ.
func (p Point) Sub(o Point) Point {
	r, err := p.TrySub(o)
	if err != nil {
		panic(err)
	}
	return r
}

// TryAdd is like Add but returns the mismatch as an error.
func (p Point) TryAdd(o Point) (Point, error) {
	if err := p.check(o); err != nil {
		return Point{}, err
	}
	raw := make([]float64, len(p.raw))
	for i := range raw {
		raw[i] = p.raw[i] + o.raw[i]
	}
	return p.layout.newPoint(raw), nil
}

// TrySub is like Sub but returns the mismatch as an error.
func (p Point) TrySub(o Point) (Point, error) {
	if err := p.check(o); err != nil {
		return Point{}, err
	}
	raw := make([]float64, len(p.raw))
	for i := range raw {
		raw[i] = p.raw[i] - o.raw[i]
	}
	return p.layout.newPoint(raw), nil
}

// Neg returns -p.
func (p Point) Neg() Point {
	raw := make([]float64, len(p.raw))
	for i, v := range p.raw {
		raw[i] = -v
	}
	return p.layout.newPoint(raw)
}

// Compare orders points lexicographically by their rounded components in
// layout order. It panics with *ErrDimensionMismatch if the dimensions differ.
func (p Point) Compare(o Point) int {
	if err := p.check(o); err != nil {
		panic(err)
	}
	for i := range p.rounded {
		if c := cmp.Compare(p.rounded[i], o.rounded[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether the rounded components of p and o are equal.
// Points of different dimension are never equal.
func (p Point) Equal(o Point) bool {
	if len(p.rounded) != len(o.rounded) {
		return false
	}
	// Hashes are only comparable when they share coefficients.
	if p.layout == o.layout && p.hash != o.hash {
		return false
	}
	for i := range p.rounded {
		if p.rounded[i] != o.rounded[i] {
			return false
		}
	}
	return true
}

func (p Point) check(o Point) error {
	if p.layout == nil || o.layout == nil {
		return &ErrDimensionMismatch{Expected: len(p.raw), Actual: len(o.raw)}
	}
	if len(p.raw) != len(o.raw) {
		return &ErrDimensionMismatch{Expected: len(p.raw), Actual: len(o.raw)}
	}
	return nil
}

// String formats the rounded components, e.g. "(0.125, 62, 0)".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, r := range p.rounded {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(r, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
