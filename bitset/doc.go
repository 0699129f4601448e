// Package bitset provides a sparse bitmap set over uint32 keys with fast
// iteration and boolean set algebra.
//
// Architecture:
//   - Paged design: 8192-bit pages (256 uint32 words each), allocated on the
//     first write of a set bit into their range
//   - Three-layer skip index per page: every layer keeps 1 bit per 4 bits of
//     the layer below, so a layer-3 bit summarizes 64 keys
//   - Iteration descends the skip layers with TrailingZeros and never touches
//     an empty region
//
// Skip index maintenance:
//
//	Set / SetWord     word-level: sieve the changed word to one bit per
//	                  nibble and blit it into layers 1, 2 and 3
//	And/Or/AndNot/Xor full-page: mux 4 words at a time through the sieve
//
// # Example Usage
//
//	withPosition := bitset.New()
//	withVelocity := bitset.New()
//	withPosition.Set(7, true)
//	withVelocity.Set(7, true)
//
//	for id := range withPosition.And(withVelocity).Values() {
//	    // entity id has both components
//	}
//
// Use Pool for short-lived query results, and FromRoaring / ToRoaring to
// exchange sets with code built on github.com/RoaringBitmap/roaring/v2.
package bitset
