// Package bitmap provides a compressed set of point indices.
//
// IndexSet wraps a 32-bit Roaring bitmap. Discovery uses it to collect the
// indices covered by the occurrences of a pattern; the union of many small,
// heavily overlapping occurrences is where Roaring's run and array containers
// pay off.
//
//	covered := bitmap.Get()
//	defer bitmap.Put(covered)
//
//	covered.AddMany(indices)
//	n := covered.Cardinality()
//
// # Thread Safety
//
// An IndexSet is not safe for concurrent mutation. The pool is.
package bitmap
