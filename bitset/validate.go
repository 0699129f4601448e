package bitset

// Validate recomputes every skip bit by scanning the bits it summarizes,
// ignoring the stored skip index, and returns an *InvariantError for the
// first mismatch. It never fails on a set only mutated through its public
// API; it exists for property tests.
func (b *BitSet) Validate() error {
	for id, p := range b.pages {
		if p == nil {
			continue
		}
		if err := p.validate(id); err != nil {
			return err
		}
	}
	return nil
}

func (p *page) validate(id int) error {
	// span is the number of layer-0 bits a skip bit covers at each layer.
	layers := []struct {
		off, words, span int
	}{
		{layer1, 64, 4},
		{layer2, 16, 16},
		{layer3, 4, 64},
	}

	for l, layer := range layers {
		for bit := range layer.words * 32 {
			want := false
			for i := bit * layer.span; i < (bit+1)*layer.span; i++ {
				if p.words[i>>5]&(1<<(i&31)) != 0 {
					want = true
					break
				}
			}
			got := p.skip[layer.off+bit>>5]&(1<<(bit&31)) != 0
			if got != want {
				return &InvariantError{Page: id, Layer: l + 1, Bit: bit, Want: want}
			}
		}
	}
	return nil
}
