package hash

import "math"

// Multilinear accumulates a multilinear hash over a stream of 32-bit words.
//
// The zero value is not usable; call Reset first.
type Multilinear struct {
	seeds  *Seeds
	coeffs []uint64
	words  int
	sum    uint64
}

// NewMultilinear returns an accumulator drawing coefficients from seeds.
// A nil seeds uses Default().
func NewMultilinear(seeds *Seeds) Multilinear {
	var m Multilinear
	m.Reset(seeds)
	return m
}

// Reset starts a new hash. The first coefficient is the additive term.
func (m *Multilinear) Reset(seeds *Seeds) {
	if seeds == nil {
		seeds = Default()
	}
	if m.seeds != seeds {
		m.seeds = seeds
		m.coeffs = seeds.Prefix(initialCoefficients)
	}
	m.words = 0
	m.sum = m.coeffs[0]
}

// WriteUint32 adds one word.
func (m *Multilinear) WriteUint32(w uint32) {
	idx := m.words + 1
	if idx >= len(m.coeffs) {
		m.coeffs = m.seeds.Prefix(idx + 1)
	}
	m.sum += m.coeffs[idx] * uint64(w)
	m.words++
}

// WriteFloat64 adds the high and low halves of the IEEE-754 bit pattern of v.
func (m *Multilinear) WriteFloat64(v float64) {
	bits := math.Float64bits(v)
	m.WriteUint32(uint32(bits >> 32))
	m.WriteUint32(uint32(bits))
}

// WriteInt adds v as a single word (truncated to 32 bits).
func (m *Multilinear) WriteInt(v int64) {
	m.WriteUint32(uint32(v))
}

// Words returns the number of words written since the last Reset.
func (m *Multilinear) Words() int {
	return m.words
}

// Sum64 returns the hash of the words written so far.
func (m *Multilinear) Sum64() uint64 {
	return m.sum
}
