package bitset

// And returns the keys set in both b and other.
func (b *BitSet) And(other *BitSet) *BitSet {
	n := min(len(b.pages), len(other.pages))
	return b.combine(other, n, func(x, y *page, out *[wordsPerPage]uint32) {
		if x == nil || y == nil {
			return
		}
		for i := range out {
			out[i] = x.words[i] & y.words[i]
		}
	})
}

// Or returns the keys set in b or other.
func (b *BitSet) Or(other *BitSet) *BitSet {
	n := max(len(b.pages), len(other.pages))
	return b.combine(other, n, func(x, y *page, out *[wordsPerPage]uint32) {
		switch {
		case x == nil && y == nil:
		case x == nil:
			*out = y.words
		case y == nil:
			*out = x.words
		default:
			for i := range out {
				out[i] = x.words[i] | y.words[i]
			}
		}
	})
}

// AndNot returns the keys set in b but not in other.
func (b *BitSet) AndNot(other *BitSet) *BitSet {
	return b.combine(other, len(b.pages), func(x, y *page, out *[wordsPerPage]uint32) {
		switch {
		case x == nil:
		case y == nil:
			*out = x.words
		default:
			for i := range out {
				out[i] = x.words[i] &^ y.words[i]
			}
		}
	})
}

// Xor returns the keys set in exactly one of b and other.
func (b *BitSet) Xor(other *BitSet) *BitSet {
	n := max(len(b.pages), len(other.pages))
	return b.combine(other, n, func(x, y *page, out *[wordsPerPage]uint32) {
		switch {
		case x == nil && y == nil:
		case x == nil:
			*out = y.words
		case y == nil:
			*out = x.words
		default:
			for i := range out {
				out[i] = x.words[i] ^ y.words[i]
			}
		}
	})
}

// combine builds a new set over pages [0, n). op fills the result words of
// one page from the operand pages, either of which may be nil. Result pages
// get a fresh skip index; all-zero results are not kept.
func (b *BitSet) combine(other *BitSet, n int, op func(x, y *page, out *[wordsPerPage]uint32)) *BitSet {
	res := b.newLike(n)

	// scratch is only carried over to the next page while it is all zero.
	var scratch *page
	last := -1
	for id := range n {
		x, y := b.page(id), other.page(id)
		if x == nil && y == nil {
			continue
		}
		if scratch == nil {
			scratch = new(page)
		}
		op(x, y, &scratch.words)

		scratch.rebuild()
		if scratch.empty() {
			continue
		}
		res.pages[id] = scratch
		scratch = nil
		last = id
	}
	res.pages = res.pages[:last+1]
	return res
}
