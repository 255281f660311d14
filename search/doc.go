// Package search finds exact, transposition-invariant occurrences of a query
// in a point set.
//
// A match is a translation that maps every query point onto a point of the
// set; translating in time and pitch together means the query is found at any
// onset and in any transposition.
//
//	s, err := search.New(score)
//	positions, err := s.FindPositions(query)
//
// Approximate matching is not supported.
package search
