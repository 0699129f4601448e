package bitset

import (
	"fmt"
	"log/slog"
)

// BitSet is a sparse set of uint32 keys.
//
// The key space is split into 8192-bit pages that are allocated on the first
// write of a set bit into their range. Each page carries a three-layer skip
// index so that iteration only visits regions holding set bits.
//
// A BitSet is not safe for concurrent mutation. Boolean operations never
// modify their operands, so any number of goroutines may combine sets that
// nobody writes.
type BitSet struct {
	pages   []*page
	logger  *slog.Logger
	version uint64
}

// New creates an empty BitSet.
func New(optFns ...Option) *BitSet {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &BitSet{
		pages:  make([]*page, 0, opts.capacity),
		logger: opts.logger,
	}
}

// newLike returns an empty set sharing b's logger.
func (b *BitSet) newLike(pages int) *BitSet {
	return &BitSet{
		pages:  make([]*page, pages),
		logger: b.logger,
	}
}

// page returns page id, or nil if it was never allocated.
func (b *BitSet) page(id int) *page {
	if id < len(b.pages) {
		return b.pages[id]
	}
	return nil
}

// ensure returns page id, allocating it (and growing the page table) if needed.
func (b *BitSet) ensure(id int) *page {
	if id >= len(b.pages) {
		if id >= cap(b.pages) {
			b.pages = append(b.pages[:cap(b.pages)], make([]*page, id+1-cap(b.pages))...)
		}
		b.pages = b.pages[:id+1]
	}
	p := b.pages[id]
	if p == nil {
		p = new(page)
		b.pages[id] = p
		b.logger.Debug("bitset page allocated", "page", id, "first_key", uint32(id)<<pageBits)
	}
	return p
}

// Set sets or clears the bit for key. Clearing a bit in a never-written
// region is a no-op that allocates nothing.
func (b *BitSet) Set(key uint32, value bool) {
	id := int(key >> pageBits)
	off := key & pageMask
	w := int(off >> 5)
	mask := uint32(1) << (off & 31)

	var p *page
	if value {
		p = b.ensure(id)
		if p.words[w]&mask != 0 {
			return
		}
		p.words[w] |= mask
	} else {
		p = b.page(id)
		if p == nil || p.words[w]&mask == 0 {
			return
		}
		p.words[w] &^= mask
	}
	p.update(w)
	b.version++
}

// Add sets key and reports whether it was not set before.
func (b *BitSet) Add(key uint32) bool {
	if b.Get(key) {
		return false
	}
	b.Set(key, true)
	return true
}

// Remove clears key and reports whether it was set.
func (b *BitSet) Remove(key uint32) bool {
	if !b.Get(key) {
		return false
	}
	b.Set(key, false)
	return true
}

// SetWord replaces the 32 bits at word position pos, i.e. keys
// [pos*32, pos*32+32), with value. Bit i of value maps to key pos*32+i.
func (b *BitSet) SetWord(pos uint32, value uint32) error {
	if pos > MaxWord {
		return fmt.Errorf("%w: %d > %d", ErrWordOutOfRange, pos, MaxWord)
	}

	id := int(pos >> 8)
	w := int(pos & (wordsPerPage - 1))

	var p *page
	if value == 0 {
		if p = b.page(id); p == nil {
			return nil
		}
	} else {
		p = b.ensure(id)
	}
	if p.words[w] == value {
		return nil
	}
	p.words[w] = value
	p.update(w)
	b.version++
	return nil
}

// Get reports whether key is set.
func (b *BitSet) Get(key uint32) bool {
	p := b.page(int(key >> pageBits))
	if p == nil {
		return false
	}
	off := key & pageMask
	return p.words[off>>5]&(1<<(off&31)) != 0
}

// Has is an alias for Get.
func (b *BitSet) Has(key uint32) bool {
	return b.Get(key)
}

// GetWord returns the 32 bits at word position pos; 0 for never-written
// regions and positions beyond MaxWord.
func (b *BitSet) GetWord(pos uint32) uint32 {
	if pos > MaxWord {
		return 0
	}
	p := b.page(int(pos >> 8))
	if p == nil {
		return 0
	}
	return p.words[pos&(wordsPerPage-1)]
}

// Clear removes every key and releases all pages.
func (b *BitSet) Clear() {
	if len(b.pages) > 0 {
		b.logger.Debug("bitset cleared", "pages", len(b.pages))
	}
	clear(b.pages)
	b.pages = b.pages[:0]
	b.version++
}

// Cardinality returns the number of set keys.
func (b *BitSet) Cardinality() int {
	n := 0
	for _, p := range b.pages {
		if p != nil {
			n += p.cardinality()
		}
	}
	return n
}

// IsEmpty reports whether no key is set.
func (b *BitSet) IsEmpty() bool {
	for _, p := range b.pages {
		if p != nil && !p.empty() {
			return false
		}
	}
	return true
}

// Equal reports whether b and other hold the same keys. Allocated but empty
// pages do not matter.
func (b *BitSet) Equal(other *BitSet) bool {
	n := max(len(b.pages), len(other.pages))
	for id := range n {
		x, y := b.page(id), other.page(id)
		switch {
		case x == nil && y == nil:
		case x == nil:
			if !y.empty() {
				return false
			}
		case y == nil:
			if !x.empty() {
				return false
			}
		case x.words != y.words:
			return false
		}
	}
	return true
}

// Clone returns a deep copy of b.
func (b *BitSet) Clone() *BitSet {
	c := b.newLike(len(b.pages))
	for id, p := range b.pages {
		if p != nil {
			cp := *p
			c.pages[id] = &cp
		}
	}
	return c
}

// Stats is a point-in-time summary of a set's memory shape.
type Stats struct {
	Pages       int // allocated pages
	ActivePages int // pages holding at least one key
	Cardinality int
	Bytes       int // page memory, words plus skip index
}

// Stats walks the page table and reports its shape.
func (b *BitSet) Stats() Stats {
	var s Stats
	for _, p := range b.pages {
		if p == nil {
			continue
		}
		s.Pages++
		if c := p.cardinality(); c > 0 {
			s.ActivePages++
			s.Cardinality += c
		}
	}
	s.Bytes = s.Pages * (wordsPerPage + skipWords) * 4
	return s
}
