package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultilinear(t *testing.T) {
	seeds := NewSeeds(WithSeed(3))

	t.Run("Empty", func(t *testing.T) {
		m := NewMultilinear(seeds)
		assert.Equal(t, seeds.Coefficient(0), m.Sum64())
		assert.Zero(t, m.Words())
	})

	t.Run("Formula", func(t *testing.T) {
		m := NewMultilinear(seeds)
		m.WriteUint32(5)
		m.WriteUint32(7)

		want := seeds.Coefficient(0) + 5*seeds.Coefficient(1) + 7*seeds.Coefficient(2)
		assert.Equal(t, want, m.Sum64())
		assert.Equal(t, 2, m.Words())
	})

	t.Run("Float64TakesTwoWords", func(t *testing.T) {
		m := NewMultilinear(seeds)
		m.WriteFloat64(0.125)
		assert.Equal(t, 2, m.Words())
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := NewMultilinear(seeds)
		b := NewMultilinear(seeds)
		for _, v := range []float64{0.5, 0.625, 1e-8} {
			a.WriteFloat64(v)
			b.WriteFloat64(v)
		}
		a.WriteInt(60)
		b.WriteInt(60)
		assert.Equal(t, a.Sum64(), b.Sum64())
	})

	t.Run("OrderMatters", func(t *testing.T) {
		a := NewMultilinear(seeds)
		a.WriteInt(1)
		a.WriteInt(2)

		b := NewMultilinear(seeds)
		b.WriteInt(2)
		b.WriteInt(1)
		assert.NotEqual(t, a.Sum64(), b.Sum64())
	})

	t.Run("GrowsPastInitialTable", func(t *testing.T) {
		m := NewMultilinear(seeds)
		for i := range 3 * initialCoefficients {
			m.WriteInt(int64(i))
		}
		assert.Equal(t, 3*initialCoefficients, m.Words())
	})

	t.Run("Reset", func(t *testing.T) {
		m := NewMultilinear(seeds)
		m.WriteInt(11)
		m.Reset(seeds)
		assert.Equal(t, seeds.Coefficient(0), m.Sum64())
	})
}
