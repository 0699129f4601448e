package sortedmap

// maxDepth bounds the height of a red-black tree addressable by uint32 indices
// (2*log2(2^32)), so a cursor stack of this capacity never reallocates.
const maxDepth = 64

type scanFlags struct {
	after   bool
	reverse bool
}

// ScanOption adjusts a scan started by Cursor, Seek or the iterator helpers.
type ScanOption func(*scanFlags)

// After skips the start key itself when it is present in the map.
// It has no effect on scans without a start key.
func After() ScanOption {
	return func(f *scanFlags) {
		f.after = true
	}
}

// Reverse scans in descending key order. With a start key, the scan begins
// at the last key <= start instead of the first key >= start.
func Reverse() ScanOption {
	return func(f *scanFlags) {
		f.reverse = true
	}
}

func buildFlags(opts []ScanOption) scanFlags {
	var f scanFlags
	for _, fn := range opts {
		fn(&f)
	}
	return f
}

// Cursor is a pull-based, non-restartable walk over a Map in key order.
//
// The cursor keeps only the nodes it still has to visit on an explicit stack.
// Structural modification of the map while the cursor is in use stops the
// walk and makes Err return ErrModifiedDuringIteration. Overwriting the value
// of an existing key is allowed.
//
//	c := m.Seek(10)
//	for c.Next() {
//	    fmt.Println(c.Key(), c.Value())
//	}
//	if err := c.Err(); err != nil { ... }
type Cursor[K, V any] struct {
	m       *Map[K, V]
	stack   []uint32
	version uint64
	// dir is the child followed first: left for ascending, right for descending.
	dir  int
	skip uint32 // exact start match to suppress, or nilNode
	cur  uint32
	err  error
}

// Cursor returns a cursor positioned before the first key (the last key with
// Reverse).
func (m *Map[K, V]) Cursor(opts ...ScanOption) *Cursor[K, V] {
	c := m.newCursor(buildFlags(opts))
	c.pushSpine(m.root)
	return c
}

// Seek returns a cursor positioned before the first key >= start, or before
// the last key <= start with Reverse. With After an exact match of start is
// not yielded.
func (m *Map[K, V]) Seek(start K, opts ...ScanOption) *Cursor[K, V] {
	flags := buildFlags(opts)
	c := m.newCursor(flags)

	// Only nodes on the branch turning towards the result are pushed: in
	// ascending order those are the nodes we leave through their left child.
	cur := m.root
	for cur != nilNode {
		cmp := m.cmp(start, m.nodes[cur].key)
		if cmp == 0 {
			c.stack = append(c.stack, cur)
			if flags.after {
				c.skip = cur
			}
			break
		}
		dir := right
		if cmp < 0 {
			dir = left
		}
		if dir == c.dir {
			c.stack = append(c.stack, cur)
		}
		cur = m.nodes[cur].child[dir]
	}
	return c
}

func (m *Map[K, V]) newCursor(flags scanFlags) *Cursor[K, V] {
	c := &Cursor[K, V]{
		m:       m,
		stack:   make([]uint32, 0, maxDepth),
		version: m.version,
		dir:     left,
	}
	if flags.reverse {
		c.dir = right
	}
	return c
}

func (c *Cursor[K, V]) pushSpine(idx uint32) {
	for idx != nilNode {
		c.stack = append(c.stack, idx)
		idx = c.m.nodes[idx].child[c.dir]
	}
}

// Next advances to the next entry and reports whether there is one.
func (c *Cursor[K, V]) Next() bool {
	if c.err != nil {
		return false
	}
	if c.version != c.m.version {
		c.err = ErrModifiedDuringIteration
		c.stack = c.stack[:0]
		c.cur = nilNode
		return false
	}
	for len(c.stack) > 0 {
		n := len(c.stack) - 1
		idx := c.stack[n]
		c.stack = c.stack[:n]
		c.pushSpine(c.m.nodes[idx].child[1-c.dir])

		if idx == c.skip {
			c.skip = nilNode
			continue
		}
		c.cur = idx
		return true
	}
	c.cur = nilNode
	return false
}

// Key returns the key at the cursor. It is only valid after Next returned true.
func (c *Cursor[K, V]) Key() K {
	return c.m.nodes[c.cur].key
}

// Value returns the value at the cursor. It is only valid after Next returned true.
func (c *Cursor[K, V]) Value() V {
	return c.m.nodes[c.cur].value
}

// Err returns ErrModifiedDuringIteration if the walk was cut short by a
// structural change of the map, nil otherwise.
func (c *Cursor[K, V]) Err() error {
	return c.err
}
