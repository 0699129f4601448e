// Package testutil provides seeded, reproducible random inputs for the
// randomized and model-based tests.
package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Uint32n returns a pseudo-random uint32 in [0,n).
func (r *RNG) Uint32n(n uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint32(r.rand.Int63n(int64(n)))
}

// Bool returns true with probability p.
func (r *RNG) Bool(p float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64() < p
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Shuffle randomizes the order of s in place.
func Shuffle[T any](r *RNG, s []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}

// Uint32s returns n pseudo-random values in [0,limit). Duplicates are possible.
func (r *RNG) Uint32s(n int, limit uint32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(r.rand.Int63n(int64(limit)))
	}
	return out
}

// ClusteredKeys returns n keys grouped around a few random centers, the
// shape entity ids take when they are allocated in runs. Each key lies within
// spread of its center. Duplicates are possible.
func (r *RNG) ClusteredKeys(n, clusters int, spread uint32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if clusters < 1 {
		clusters = 1
	}
	centers := make([]uint32, clusters)
	for i := range centers {
		centers[i] = r.rand.Uint32()
	}

	out := make([]uint32, n)
	for i := range out {
		c := centers[r.rand.Intn(clusters)]
		off := uint32(r.rand.Int63n(int64(spread) + 1))
		if c > ^uint32(0)-off {
			out[i] = c - off
		} else {
			out[i] = c + off
		}
	}
	return out
}

// Presence generates per-entity component presence flags.
// missingRate is the probability that an entity lacks the component (0.3 = 30% missing).
func (r *RNG) Presence(n int, missingRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	present := make([]bool, n)
	for i := range n {
		present[i] = r.rand.Float64() >= missingRate
	}

	return present
}
