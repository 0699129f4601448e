package sortedmap

import (
	"cmp"
	"log/slog"
)

// Map is an ordered associative container backed by a red-black tree.
//
// Keys are ordered by the comparator given to New. Nodes live in an arena
// addressed by uint32 index, so parent back-references are plain indices
// and Clone is a flat copy.
//
// A Map is not safe for concurrent use. Readers may share a Map as long as
// nobody writes it; otherwise callers must synchronize or work on a Clone.
type Map[K, V any] struct {
	cmp    func(a, b K) int
	nodes  []node[K, V] // nodes[0] is the nil sentinel
	free   []uint32
	root   uint32
	size   int
	logger *slog.Logger

	// version changes on every structural mutation; cursors compare against it.
	version   uint64
	rotations uint64
}

// New creates an empty map ordered by cmp, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
func New[K, V any](cmp func(a, b K) int, optFns ...Option) *Map[K, V] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Map[K, V]{
		cmp:    cmp,
		nodes:  make([]node[K, V], 1, opts.capacity+1),
		logger: opts.logger,
	}
}

// NewOrdered creates an empty map ordered by cmp.Compare.
func NewOrdered[K cmp.Ordered, V any](optFns ...Option) *Map[K, V] {
	return New[K, V](cmp.Compare[K], optFns...)
}

// Len returns the number of keys in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

func (m *Map[K, V]) find(key K) uint32 {
	cur := m.root
	for cur != nilNode {
		c := m.cmp(key, m.nodes[cur].key)
		switch {
		case c == 0:
			return cur
		case c < 0:
			cur = m.nodes[cur].child[left]
		default:
			cur = m.nodes[cur].child[right]
		}
	}
	return nilNode
}

// Get returns the value stored for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if idx := m.find(key); idx != nilNode {
		return m.nodes[idx].value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return m.find(key) != nilNode
}

// Set stores value under key. An existing key keeps its node and only the
// value is replaced, which does not invalidate live cursors.
func (m *Map[K, V]) Set(key K, value V) {
	parent, dir := nilNode, left
	cur := m.root
	for cur != nilNode {
		c := m.cmp(key, m.nodes[cur].key)
		if c == 0 {
			m.nodes[cur].value = value
			return
		}
		parent = cur
		if c < 0 {
			dir = left
		} else {
			dir = right
		}
		cur = m.nodes[cur].child[dir]
	}

	idx := m.alloc(key, value, parent)
	if parent == nilNode {
		m.root = idx
	} else {
		m.nodes[parent].child[dir] = idx
	}
	m.size++
	m.version++
	m.insertFixup(idx)
}

func (m *Map[K, V]) insertFixup(cur uint32) {
	for {
		p := m.nodes[cur].parent
		if !m.isRed(p) {
			break
		}
		// A red parent is never the root, so the grandparent exists.
		g := m.nodes[p].parent
		pSide := m.side(p)
		uncle := m.nodes[g].child[1-pSide]

		if m.isRed(uncle) {
			m.nodes[p].red = false
			m.nodes[uncle].red = false
			m.nodes[g].red = true
			cur = g
			continue
		}

		if m.side(cur) != pSide {
			// Inner child: straighten the line first.
			m.rotate(p, pSide)
			cur, p = p, cur
		}
		m.nodes[p].red = false
		m.nodes[g].red = true
		m.rotate(g, 1-pSide)
		break
	}
	m.nodes[m.root].red = false
}

// Delete removes key and reports whether it was present.
// Deleting an absent key is a no-op.
func (m *Map[K, V]) Delete(key K) bool {
	target := m.find(key)
	if target == nilNode {
		return false
	}

	if m.nodes[target].child[left] != nilNode && m.nodes[target].child[right] != nilNode {
		succ := m.extreme(m.nodes[target].child[right], left)
		m.nodes[target].key = m.nodes[succ].key
		m.nodes[target].value = m.nodes[succ].value
		target = succ
	}

	// target now has at most one child.
	child := m.nodes[target].child[left]
	if child == nilNode {
		child = m.nodes[target].child[right]
	}
	parent := m.nodes[target].parent
	dir := left
	if parent != nilNode {
		dir = m.side(target)
	}

	m.replace(target, child)

	switch {
	case m.nodes[target].red:
	case m.isRed(child):
		m.nodes[child].red = false
	default:
		m.deleteFixup(child, parent, dir)
	}

	m.release(target)
	m.size--
	m.version++
	return true
}

// deleteFixup repairs a black-height deficit at cur, which hangs (possibly as
// nil) under parent on side dir.
func (m *Map[K, V]) deleteFixup(cur, parent uint32, dir int) {
	for cur != m.root && !m.isRed(cur) {
		sib := m.nodes[parent].child[1-dir]

		if m.isRed(sib) {
			m.nodes[sib].red = false
			m.nodes[parent].red = true
			m.rotate(parent, dir)
			sib = m.nodes[parent].child[1-dir]
		}

		near := m.nodes[sib].child[dir]
		far := m.nodes[sib].child[1-dir]

		if !m.isRed(near) && !m.isRed(far) {
			m.nodes[sib].red = true
			if m.nodes[parent].red {
				m.nodes[parent].red = false
				return
			}
			cur = parent
			parent = m.nodes[cur].parent
			if parent != nilNode {
				dir = m.side(cur)
			}
			continue
		}

		if !m.isRed(far) {
			m.nodes[near].red = false
			m.nodes[sib].red = true
			m.rotate(sib, 1-dir)
			sib = m.nodes[parent].child[1-dir]
			far = m.nodes[sib].child[1-dir]
		}

		m.nodes[sib].red = m.nodes[parent].red
		m.nodes[parent].red = false
		m.nodes[far].red = false
		m.rotate(parent, dir)
		cur = m.root
		break
	}
	if cur != nilNode {
		m.nodes[cur].red = false
	}
}

// Clear removes all entries. The arena keeps its capacity.
func (m *Map[K, V]) Clear() {
	if m.size > 0 {
		m.logger.Debug("sortedmap cleared", "entries", m.size)
	}
	clear(m.nodes)
	m.nodes = m.nodes[:1]
	m.free = m.free[:0]
	m.root = nilNode
	m.size = 0
	m.version++
}

// Min returns the smallest key and its value.
func (m *Map[K, V]) Min() (K, V, bool) {
	return m.edge(left)
}

// Max returns the largest key and its value.
func (m *Map[K, V]) Max() (K, V, bool) {
	return m.edge(right)
}

func (m *Map[K, V]) edge(dir int) (K, V, bool) {
	if m.root == nilNode {
		var (
			k K
			v V
		)
		return k, v, false
	}
	n := &m.nodes[m.extreme(m.root, dir)]
	return n.key, n.value, true
}

// Clone returns an independent copy of the map. Keys and values are copied
// shallowly.
func (m *Map[K, V]) Clone() *Map[K, V] {
	cloned := &Map[K, V]{
		cmp:       m.cmp,
		nodes:     make([]node[K, V], len(m.nodes), cap(m.nodes)),
		free:      make([]uint32, len(m.free)),
		root:      m.root,
		size:      m.size,
		logger:    m.logger,
		rotations: m.rotations,
	}
	copy(cloned.nodes, m.nodes)
	copy(cloned.free, m.free)
	return cloned
}

// Stats is a point-in-time summary of a map's shape.
type Stats struct {
	Entries     int
	Height      int // longest root-to-leaf path, in nodes
	BlackHeight int // black nodes on any root-to-nil path, nil excluded
	ArenaSlots  int // allocated node slots, including free ones
	FreeSlots   int
	Rotations   uint64 // cumulative since construction
}

// Stats walks the tree and reports its shape. It is O(n).
func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Entries:    m.size,
		ArenaSlots: len(m.nodes) - 1,
		FreeSlots:  len(m.free),
		Rotations:  m.rotations,
	}
	for cur := m.root; cur != nilNode; cur = m.nodes[cur].child[left] {
		if !m.nodes[cur].red {
			s.BlackHeight++
		}
	}
	s.Height = m.height(m.root)
	return s
}

func (m *Map[K, V]) height(idx uint32) int {
	if idx == nilNode {
		return 0
	}
	return 1 + max(m.height(m.nodes[idx].child[left]), m.height(m.nodes[idx].child[right]))
}
