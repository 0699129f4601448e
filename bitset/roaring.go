package bitset

import "github.com/RoaringBitmap/roaring/v2"

// FromRoaring builds a BitSet holding the keys of rb.
func FromRoaring(rb *roaring.Bitmap, optFns ...Option) *BitSet {
	b := New(optFns...)

	dirty := -1
	it := rb.Iterator()
	for it.HasNext() {
		key := it.Next()
		id := int(key >> pageBits)
		if id != dirty {
			if dirty >= 0 {
				b.pages[dirty].rebuild()
			}
			dirty = id
		}
		off := key & pageMask
		b.ensure(id).words[off>>5] |= 1 << (off & 31)
	}
	if dirty >= 0 {
		b.pages[dirty].rebuild()
	}
	return b
}

// ToRoaring returns a roaring bitmap holding the keys of b.
func (b *BitSet) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()

	buf := make([]uint32, 0, 256)
	for id, p := range b.pages {
		if p == nil || p.empty() {
			continue
		}
		base := uint32(id) << pageBits
		buf = buf[:0]
		p.each(func(off uint32) bool {
			buf = append(buf, base|off)
			return true
		})
		rb.AddMany(buf)
	}
	return rb
}
