package hash

import (
	"math/rand/v2"
	"sync"
)

const (
	// initialCoefficients is the number of coefficients generated up front.
	initialCoefficients = 100

	// growthIncrement is the headroom kept past the highest requested index.
	growthIncrement = 50
)

// Seeds is a lazily growing, index-addressed cache of random hash coefficients.
//
// The same index always yields the same coefficient for the lifetime of a
// Seeds value. Values are not reproducible across providers unless WithSeed
// is used.
type Seeds struct {
	mu     sync.RWMutex
	coeffs []uint64
	rng    *rand.Rand
}

type seedOptions struct {
	seeded bool
	seed   uint64
}

// Option configures a Seeds provider.
type Option func(*seedOptions)

// WithSeed makes the coefficient stream reproducible.
//
// Two providers created with the same seed hand out identical coefficients,
// which is useful in tests that compare hash values directly.
func WithSeed(seed uint64) Option {
	return func(o *seedOptions) {
		o.seeded = true
		o.seed = seed
	}
}

// NewSeeds creates a new provider with the initial coefficients generated.
func NewSeeds(optFns ...Option) *Seeds {
	var o seedOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	var src rand.Source
	if o.seeded {
		src = rand.NewPCG(o.seed, o.seed^0x9e3779b97f4a7c15)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	s := &Seeds{
		coeffs: make([]uint64, 0, initialCoefficients),
		rng:    rand.New(src), // nolint gosec
	}
	s.generate(initialCoefficients)
	return s
}

var defaultSeeds = sync.OnceValue(func() *Seeds { return NewSeeds() })

// Default returns the process-wide provider.
func Default() *Seeds {
	return defaultSeeds()
}

// generate appends count coefficients. Callers must hold the write lock
// (or own s exclusively).
func (s *Seeds) generate(count int) {
	for range count {
		s.coeffs = append(s.coeffs, s.rng.Uint64())
	}
}

// Coefficient returns the coefficient at index i, growing the cache if needed.
// It panics if i is negative.
func (s *Seeds) Coefficient(i int) uint64 {
	if i < 0 {
		panic("hash: negative coefficient index")
	}
	return s.Prefix(i + 1)[i]
}

// Prefix returns a snapshot holding at least n coefficients.
//
// The returned slice is never written to again and may be read without
// synchronisation.
func (s *Seeds) Prefix(n int) []uint64 {
	s.mu.RLock()
	if n <= len(s.coeffs) {
		c := s.coeffs[:len(s.coeffs):len(s.coeffs)]
		s.mu.RUnlock()
		return c
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.coeffs) < n+growthIncrement {
		s.generate(growthIncrement)
	}
	return s.coeffs[:len(s.coeffs):len(s.coeffs)]
}

// Len returns the number of coefficients generated so far.
func (s *Seeds) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.coeffs)
}
