package siatechf

import (
	"github.com/hupe1980/geopattern/geometry"
	"github.com/hupe1980/geopattern/pointset"
)

// upperBound bounds the compression ratio of a pattern of size k whose span
// (last - first) occurs between m pairs of points.
func upperBound(k, m int) float64 {
	if k == 1 {
		return 1
	}
	return float64(m*k) / float64(k+m-1)
}

// targets returns, in ascending order, the indices of every point onto which
// the last point of pattern is mapped by a translation that maps the whole
// pattern into the point set. The pattern's own last point is among them.
func targets(ps *pointset.PointSet, idx *diffIndex, pattern geometry.Pattern) []int {
	k := pattern.Len()
	if k == 1 {
		all := make([]int, ps.Len())
		for i := range all {
			all[i] = i
		}
		return all
	}

	first := idx.lookup(pattern.At(1).Sub(pattern.At(0)))
	cur := make([]int, len(first))
	for i, p := range first {
		cur[i] = int(p.j)
	}

	for t := 1; t < k-1 && len(cur) > 0; t++ {
		cur = advance(cur, idx.lookup(pattern.At(t+1).Sub(pattern.At(t))))
	}
	return cur
}

// advance keeps the indices of cur that start a pair of group and replaces
// each with the pair's end. Both inputs are ascending, and so is the result,
// which reuses cur's storage.
func advance(cur []int, group []pair) []int {
	w, a, b := 0, 0, 0
	for a < len(cur) && b < len(group) {
		gi := int(group[b].i)
		switch {
		case cur[a] < gi:
			a++
		case cur[a] > gi:
			b++
		default:
			cur[w] = int(group[b].j)
			w++
			a++
			b++
		}
	}
	return cur[:w]
}
