package siatechf

import (
	"slices"
	"strings"

	"github.com/hupe1980/geopattern/geometry"
)

// Tec is a translational equivalence class: a pattern and every vector that
// translates it onto points of the set. The zero vector, which maps the
// pattern onto itself, is always one of the translators.
type Tec struct {
	pattern     geometry.Pattern
	translators []geometry.Point
	covered     int
	ratio       float64
}

// Pattern returns the representative occurrence.
func (t Tec) Pattern() geometry.Pattern { return t.pattern }

// Translators returns a copy of the translators, in ascending order of the
// point the pattern's last point is mapped onto.
func (t Tec) Translators() []geometry.Point { return slices.Clone(t.translators) }

// Len returns the number of translators, i.e. the number of occurrences.
func (t Tec) Len() int { return len(t.translators) }

// Covered returns the number of distinct points covered by all occurrences.
func (t Tec) Covered() int { return t.covered }

// CompressionRatio returns the exact compression ratio of the class.
func (t Tec) CompressionRatio() float64 { return t.ratio }

// Occurrences returns the pattern translated by every translator.
func (t Tec) Occurrences() []geometry.Pattern {
	out := make([]geometry.Pattern, len(t.translators))
	for i, tr := range t.translators {
		out[i] = t.pattern.Translate(tr)
	}
	return out
}

// String formats the class as "T({(0, 60, 0), ...}, {(0, 0, 0), ...})".
func (t Tec) String() string {
	parts := make([]string, len(t.translators))
	for i, tr := range t.translators {
		parts[i] = tr.String()
	}
	return "T(" + t.pattern.String() + ", {" + strings.Join(parts, ", ") + "})"
}
