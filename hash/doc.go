// Package hash provides the strongly universal hash family used to key points
// and patterns.
//
// # Multilinear Hashing
//
// Every hashed value is flattened into a sequence of 32-bit words w0..wk-1 and
// combined with random 64-bit coefficients c0..ck:
//
//	h = c0 + c1*w0 + c2*w1 + ... + ck*wk-1   (mod 2^64)
//
// This is the Multilinear family of Lemire and Kaser ("Strongly Universal
// String Hashing is Fast", The Computer Journal 57(11), 2014). Float64 values
// contribute their high and low bit halves as two words; integers contribute
// one word.
//
// # Seeds
//
// Coefficients come from a Seeds provider. A provider grows on demand and
// never changes a coefficient once it has been handed out, so equal inputs
// always hash equally for the lifetime of the provider:
//
//	seeds := hash.NewSeeds()                 // randomly seeded
//	seeds := hash.NewSeeds(hash.WithSeed(7)) // reproducible
//	seeds := hash.Default()                  // process-wide provider
//
//	var m hash.Multilinear
//	m.Reset(seeds.Prefix(5))
//	m.WriteFloat64(0.125)
//	m.WriteInt(60)
//	sum := m.Sum64()
//
// Hash values are not stable across providers. Do not persist them.
//
// # Thread Safety
//
// Seeds is safe for concurrent use. Multilinear is a value type meant to live
// on the stack of a single goroutine.
package hash
