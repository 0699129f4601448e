package bitset

import "sync"

// Pool is a pool of reusable BitSets. Thread-safe.
//
// Sets handed out by Get are empty but keep their page table capacity, which
// makes them a cheap scratch space for query results.
type Pool struct {
	pool sync.Pool
}

// NewPool creates a new pool. optFns apply to every set the pool creates.
func NewPool(optFns ...Option) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return New(optFns...)
			},
		},
	}
}

// Get retrieves an empty set from the pool.
func (p *Pool) Get() *BitSet {
	return p.pool.Get().(*BitSet)
}

// Put clears b and returns it to the pool.
func (p *Pool) Put(b *BitSet) {
	if b == nil {
		return
	}
	b.Clear()
	p.pool.Put(b)
}
