package siatechf

import (
	"github.com/hupe1980/geopattern/geometry"
	"github.com/hupe1980/geopattern/pointset"
)

// indexBytesPerPair estimates the memory the difference index needs per pair
// of points: the pair itself plus, in the worst case of all differences
// distinct, a key point with its component slices and map bookkeeping.
const indexBytesPerPair = 256

// pair holds the indices of two points, i < j.
type pair struct {
	i, j int32
}

// diffIndex groups point pairs by their difference vector P[j] - P[i].
// Each group lists its pairs with i ascending.
type diffIndex struct {
	groups *geometry.Map[geometry.Point, []pair]
}

func buildIndex(ps *pointset.PointSet) *diffIndex {
	n := ps.Len()
	idx := &diffIndex{groups: geometry.NewMap[geometry.Point, []pair](n)}
	for i := range n {
		from := ps.At(i)
		for j := i + 1; j < n; j++ {
			slot, _ := idx.groups.Insert(ps.At(j).Sub(from), nil)
			group := idx.groups.Ptr(slot)
			*group = append(*group, pair{i: int32(i), j: int32(j)})
		}
	}
	return idx
}

// Len returns the number of distinct differences.
func (x *diffIndex) Len() int { return x.groups.Len() }

// group returns the pairs of the slot-th distinct difference.
func (x *diffIndex) group(slot int) []pair { return x.groups.Value(slot) }

// lookup returns the pairs whose difference equals d.
func (x *diffIndex) lookup(d geometry.Point) []pair {
	g, _ := x.groups.Get(d)
	return g
}

// pairCount returns n(n-1)/2.
func pairCount(n int) int64 {
	return int64(n) * int64(n-1) / 2
}
