package bitset

import "math/bits"

const (
	// pageBits determines the size of each page.
	// 13 bits = 8192 bits per page.
	pageBits = 13
	pageSize = 1 << pageBits
	pageMask = pageSize - 1

	// wordsPerPage is the number of uint32 words in a page.
	wordsPerPage = pageSize / 32

	// MaxWord is the highest word position addressable by SetWord and GetWord.
	MaxWord = 1<<(32-5) - 1
)

// Skip index layout inside page.skip. Every layer summarizes the one below
// it at 1 bit per 4 bits:
//
//	[ 0, 64)  layer 1: bit i is set iff layer-0 bits [4i, 4i+4) hold a 1
//	[64, 80)  layer 2: bit i covers layer-1 bits [4i, 4i+4), i.e. 16 layer-0 bits
//	[80, 84)  layer 3: bit i covers layer-2 bits [4i, 4i+4), i.e. 64 layer-0 bits
const (
	layer1    = 0
	layer2    = 64
	layer3    = 80
	skipWords = 84
)

// page is a fixed 8192-bit block of the key space plus its skip index.
type page struct {
	words [wordsPerPage]uint32
	skip  [skipWords]uint32
}

// sieve reduces a word to 8 bits, one per nibble: bit i is set iff nibble i
// of w is non-zero.
func sieve(w uint32) uint32 {
	t := w | w>>1
	t |= t >> 2
	t &= 0x11111111
	t = (t | t>>3) & 0x03030303
	t = (t | t>>6) & 0x000F000F
	return (t | t>>12) & 0xFF
}

// blitByte replaces byte slot of *dst with v.
func blitByte(dst *uint32, slot int, v uint32) {
	shift := uint(slot) * 8
	*dst = *dst&^(0xFF<<shift) | v<<shift
}

// update recomputes the skip entries covering word w after it changed.
func (p *page) update(w int) {
	j := w >> 2
	blitByte(&p.skip[layer1+j], w&3, sieve(p.words[w]))

	k := j >> 2
	blitByte(&p.skip[layer2+k], j&3, sieve(p.skip[layer1+j]))

	blitByte(&p.skip[layer3+k>>2], k&3, sieve(p.skip[layer2+k]))
}

// rebuild recomputes the whole skip index from the words.
func (p *page) rebuild() {
	mux(p.skip[layer1:layer2], p.words[:])
	mux(p.skip[layer2:layer3], p.skip[layer1:layer2])
	mux(p.skip[layer3:skipWords], p.skip[layer2:layer3])
}

// mux sieves 4 adjacent src words into each dst word.
func mux(dst, src []uint32) {
	for i := range dst {
		s := src[4*i : 4*i+4]
		dst[i] = sieve(s[0]) | sieve(s[1])<<8 | sieve(s[2])<<16 | sieve(s[3])<<24
	}
}

// empty reports whether the page holds no set bit.
func (p *page) empty() bool {
	s := p.skip[layer3:skipWords]
	return s[0]|s[1]|s[2]|s[3] == 0
}

func (p *page) cardinality() int {
	if p.empty() {
		return 0
	}
	n := 0
	for _, w := range p.words {
		n += bits.OnesCount32(w)
	}
	return n
}

// each calls fn with the in-page offset of every set bit in ascending order,
// descending the skip layers so that empty regions are never visited.
func (p *page) each(fn func(off uint32) bool) bool {
	for l3 := range 4 {
		m3 := p.skip[layer3+l3]
		for m3 != 0 {
			b3 := bits.TrailingZeros32(m3)
			m3 &= m3 - 1

			// A layer-3 bit covers two words.
			first := (l3*32 + b3) * 2
			for w := first; w < first+2; w++ {
				if !p.eachInWord(w, fn) {
					return false
				}
			}
		}
	}
	return true
}

func (p *page) eachInWord(w int, fn func(off uint32) bool) bool {
	word := p.words[w]
	for half := range 2 {
		g2 := 2*w + half
		if p.skip[layer2+g2>>5]&(1<<(g2&31)) == 0 {
			continue
		}

		nibbles := (p.skip[layer1+w>>2] >> (8*(w&3) + 4*half)) & 0xF
		for nibbles != 0 {
			n := bits.TrailingZeros32(nibbles)
			nibbles &= nibbles - 1

			shift := 16*half + 4*n
			v := (word >> shift) & 0xF
			for v != 0 {
				b := bits.TrailingZeros32(v)
				v &= v - 1
				if !fn(uint32(w*32 + shift + b)) {
					return false
				}
			}
		}
	}
	return true
}
