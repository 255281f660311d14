package bitmap

import (
	"fmt"
	"iter"
	"math"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// IndexSet is a set of non-negative int indices backed by a Roaring bitmap.
type IndexSet struct {
	rb *roaring.Bitmap
}

var indexSetPool = sync.Pool{
	New: func() any {
		return &IndexSet{rb: roaring.New()}
	},
}

// New creates an empty set.
func New() *IndexSet {
	return &IndexSet{rb: roaring.New()}
}

// Of creates a set holding the given indices.
func Of(indices ...int) *IndexSet {
	s := New()
	s.AddMany(indices)
	return s
}

// Get returns an empty set from the pool. Call Put when done.
func Get() *IndexSet {
	s := indexSetPool.Get().(*IndexSet)
	s.rb.Clear()
	return s
}

// Put returns a set to the pool.
func Put(s *IndexSet) {
	if s == nil {
		return
	}
	s.rb.Clear()
	indexSetPool.Put(s)
}

func toID(i int) uint32 {
	if i < 0 || uint64(i) > math.MaxUint32 {
		panic(fmt.Sprintf("bitmap: index %d out of range", i))
	}
	return uint32(i)
}

// Add adds i. It panics if i does not fit in 32 bits.
func (s *IndexSet) Add(i int) {
	s.rb.Add(toID(i))
}

// AddMany adds every index in indices.
func (s *IndexSet) AddMany(indices []int) {
	if len(indices) == 0 {
		return
	}
	ids := make([]uint32, len(indices))
	for j, i := range indices {
		ids[j] = toID(i)
	}
	s.rb.AddMany(ids)
}

// AddRange adds [start, end).
func (s *IndexSet) AddRange(start, end int) {
	if end <= start {
		return
	}
	s.rb.AddRange(uint64(toID(start)), uint64(end))
}

// Contains reports whether i is in the set.
func (s *IndexSet) Contains(i int) bool {
	if i < 0 || uint64(i) > math.MaxUint32 {
		return false
	}
	return s.rb.Contains(uint32(i))
}

// Cardinality returns the number of indices in the set.
func (s *IndexSet) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether the set is empty.
func (s *IndexSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Or adds every index of other.
func (s *IndexSet) Or(other *IndexSet) {
	s.rb.Or(other.rb)
}

// And keeps only the indices also in other.
func (s *IndexSet) And(other *IndexSet) {
	s.rb.And(other.rb)
}

// Clone returns a deep copy.
func (s *IndexSet) Clone() *IndexSet {
	return &IndexSet{rb: s.rb.Clone()}
}

// Clear removes every index.
func (s *IndexSet) Clear() {
	s.rb.Clear()
}

// All iterates over the indices in ascending order.
func (s *IndexSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the indices in ascending order.
func (s *IndexSet) ToSlice() []int {
	out := make([]int, 0, s.Cardinality())
	for i := range s.All() {
		out = append(out, i)
	}
	return out
}

// SizeInBytes estimates the serialized size of the set.
func (s *IndexSet) SizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}

func (s *IndexSet) String() string {
	return fmt.Sprint(s.ToSlice())
}
