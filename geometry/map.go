package geometry

import (
	"iter"
	"math"
)

// Key is implemented by Point and Pattern.
type Key[K any] interface {
	Hash() uint64
	Equal(K) bool
}

// Map is an insertion-ordered hash map keyed by points or patterns.
//
// Buckets are addressed by the key's multilinear hash; colliding keys are
// chained and resolved with Equal. Every entry has a dense slot number in
// insertion order. The zero value is an empty map ready to use.
type Map[K Key[K], V any] struct {
	heads map[uint64]int32
	next  []int32
	keys  []K
	vals  []V
}

// NewMap returns a map with room for capacity entries.
func NewMap[K Key[K], V any](capacity int) *Map[K, V] {
	return &Map[K, V]{
		heads: make(map[uint64]int32, capacity),
		next:  make([]int32, 0, capacity),
		keys:  make([]K, 0, capacity),
		vals:  make([]V, 0, capacity),
	}
}

func (m *Map[K, V]) find(k K, h uint64) int {
	s, ok := m.heads[h]
	if !ok {
		return -1
	}
	for s >= 0 {
		if m.keys[s].Equal(k) {
			return int(s)
		}
		s = m.next[s]
	}
	return -1
}

func (m *Map[K, V]) add(k K, h uint64, v V) int {
	if len(m.keys) >= math.MaxInt32 {
		panic("geometry: map exceeds 2^31-1 entries")
	}
	if m.heads == nil {
		m.heads = make(map[uint64]int32)
	}
	slot := int32(len(m.keys))
	prev, ok := m.heads[h]
	if !ok {
		prev = -1
	}
	m.heads[h] = slot
	m.next = append(m.next, prev)
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
	return int(slot)
}

// Slot returns the slot of k, if present.
func (m *Map[K, V]) Slot(k K) (int, bool) {
	s := m.find(k, k.Hash())
	return s, s >= 0
}

// Get returns the value stored for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if s := m.find(k, k.Hash()); s >= 0 {
		return m.vals[s], true
	}
	var zero V
	return zero, false
}

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	return m.find(k, k.Hash()) >= 0
}

// Insert adds k with value v unless k is already present, in which case the
// existing entry is kept. It returns the slot of k and whether it was added.
func (m *Map[K, V]) Insert(k K, v V) (int, bool) {
	h := k.Hash()
	if s := m.find(k, h); s >= 0 {
		return s, false
	}
	return m.add(k, h, v), true
}

// Put stores v for k, replacing any previous value, and returns the slot.
func (m *Map[K, V]) Put(k K, v V) int {
	h := k.Hash()
	if s := m.find(k, h); s >= 0 {
		m.vals[s] = v
		return s
	}
	return m.add(k, h, v)
}

// Ptr returns a pointer to the value in slot. The pointer is invalidated by
// the next insertion.
func (m *Map[K, V]) Ptr(slot int) *V { return &m.vals[slot] }

// Key returns the key in slot.
func (m *Map[K, V]) Key(slot int) K { return m.keys[slot] }

// Value returns the value in slot.
func (m *Map[K, V]) Value(slot int) V { return m.vals[slot] }

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.keys) }

// All iterates over entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.keys {
			if !yield(m.keys[i], m.vals[i]) {
				return
			}
		}
	}
}

// Set is an insertion-ordered set of points or patterns.
// The zero value is an empty set ready to use.
type Set[K Key[K]] struct {
	m Map[K, struct{}]
}

// NewSet returns a set with room for capacity keys.
func NewSet[K Key[K]](capacity int) *Set[K] {
	return &Set[K]{m: *NewMap[K, struct{}](capacity)}
}

// Add inserts k and reports whether it was not already present.
func (s *Set[K]) Add(k K) bool {
	_, added := s.m.Insert(k, struct{}{})
	return added
}

// Contains reports whether k is present.
func (s *Set[K]) Contains(k K) bool { return s.m.Contains(k) }

// Len returns the number of keys.
func (s *Set[K]) Len() int { return s.m.Len() }

// All iterates over keys in insertion order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range s.m.keys {
			if !yield(k) {
				return
			}
		}
	}
}
