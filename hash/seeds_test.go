package hash

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeds_CoefficientIsStable(t *testing.T) {
	s := NewSeeds()

	first := make([]uint64, 10)
	for i := range first {
		first[i] = s.Coefficient(i)
	}

	// Force growth well past the initial table.
	_ = s.Coefficient(1000)
	require.GreaterOrEqual(t, s.Len(), 1001)

	for i := range first {
		assert.Equal(t, first[i], s.Coefficient(i), "index %d", i)
	}
	assert.Equal(t, s.Coefficient(1000), s.Coefficient(1000))
}

func TestSeeds_InitialSize(t *testing.T) {
	s := NewSeeds()
	assert.Equal(t, initialCoefficients, s.Len())

	_ = s.Coefficient(initialCoefficients)
	assert.Equal(t, initialCoefficients+growthIncrement, s.Len())
}

func TestSeeds_WithSeedIsReproducible(t *testing.T) {
	a := NewSeeds(WithSeed(42))
	b := NewSeeds(WithSeed(42))
	c := NewSeeds(WithSeed(43))

	for _, i := range []int{0, 1, 99, 100, 250} {
		assert.Equal(t, a.Coefficient(i), b.Coefficient(i))
	}
	assert.NotEqual(t, a.Coefficient(0), c.Coefficient(0))
}

func TestSeeds_PrefixSnapshot(t *testing.T) {
	s := NewSeeds(WithSeed(1))
	p := s.Prefix(10)
	require.GreaterOrEqual(t, len(p), 10)

	before := append([]uint64(nil), p...)
	_ = s.Prefix(5000)
	assert.Equal(t, before, p)
}

func TestSeeds_NegativeIndexPanics(t *testing.T) {
	s := NewSeeds()
	assert.Panics(t, func() { s.Coefficient(-1) })
}

func TestSeeds_ConcurrentGrowth(t *testing.T) {
	s := NewSeeds(WithSeed(9))
	ref := NewSeeds(WithSeed(9))

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 0; i < 2000; i += 7 {
				_ = s.Coefficient(i + offset)
			}
		}(g)
	}
	wg.Wait()

	for i := 0; i < 2000; i += 13 {
		assert.Equal(t, ref.Coefficient(i), s.Coefficient(i))
	}
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
}
