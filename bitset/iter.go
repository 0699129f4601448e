package bitset

import "iter"

// Values returns an iterator over the set keys in ascending order.
//
// The sequence is restartable: every range over it starts from the smallest
// key. Cost is proportional to the non-empty skip regions plus the set bits.
// The iterator panics with ErrModifiedDuringIteration if the loop body
// mutates the set.
func (b *BitSet) Values() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		b.each(yield)
	}
}

// Keys is an alias for Values.
func (b *BitSet) Keys() iter.Seq[uint32] {
	return b.Values()
}

// Entries yields every set key as both key and value, mirroring the shape of
// map-like containers.
func (b *BitSet) Entries() iter.Seq2[uint32, uint32] {
	return func(yield func(uint32, uint32) bool) {
		b.each(func(k uint32) bool {
			return yield(k, k)
		})
	}
}

// ForEach calls fn for every set key in ascending order until fn returns false.
func (b *BitSet) ForEach(fn func(uint32) bool) {
	b.each(fn)
}

// ToSlice appends all set keys in ascending order to dst[:0] and returns it.
func (b *BitSet) ToSlice(dst []uint32) []uint32 {
	if card := b.Cardinality(); cap(dst) < card {
		dst = make([]uint32, 0, card)
	} else {
		dst = dst[:0]
	}
	b.each(func(k uint32) bool {
		dst = append(dst, k)
		return true
	})
	return dst
}

func (b *BitSet) each(fn func(uint32) bool) {
	version := b.version
	for id := 0; id < len(b.pages); id++ {
		p := b.pages[id]
		if p == nil {
			continue
		}
		base := uint32(id) << pageBits
		cont := p.each(func(off uint32) bool {
			ok := fn(base | off)
			if b.version != version {
				panic(ErrModifiedDuringIteration)
			}
			return ok
		})
		if !cont {
			return
		}
	}
}
