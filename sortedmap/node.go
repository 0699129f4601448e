package sortedmap

const (
	left  = 0
	right = 1
)

// nilNode is the reserved arena slot standing in for an absent child or parent.
const nilNode uint32 = 0

type node[K, V any] struct {
	key    K
	value  V
	parent uint32
	child  [2]uint32
	red    bool
}

// alloc returns the index of a fresh red node holding key and value.
// Slots released by free are reused before the arena grows.
func (m *Map[K, V]) alloc(key K, value V, parent uint32) uint32 {
	var idx uint32
	if n := len(m.free); n > 0 {
		idx = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		if len(m.nodes) == cap(m.nodes) {
			m.logger.Debug("sortedmap arena growing", "slots", len(m.nodes))
		}
		m.nodes = append(m.nodes, node[K, V]{})
		idx = uint32(len(m.nodes) - 1)
	}
	m.nodes[idx] = node[K, V]{key: key, value: value, parent: parent, red: true}
	return idx
}

func (m *Map[K, V]) release(idx uint32) {
	m.nodes[idx] = node[K, V]{}
	m.free = append(m.free, idx)
}

func (m *Map[K, V]) isRed(idx uint32) bool {
	return idx != nilNode && m.nodes[idx].red
}

// side reports which child of its parent idx is. idx must have a parent.
func (m *Map[K, V]) side(idx uint32) int {
	if m.nodes[m.nodes[idx].parent].child[left] == idx {
		return left
	}
	return right
}

// replace puts repl in the slot old occupies under its parent (or at the root).
// old's own links are left untouched.
func (m *Map[K, V]) replace(old, repl uint32) {
	p := m.nodes[old].parent
	switch {
	case p == nilNode:
		m.root = repl
	case m.nodes[p].child[left] == old:
		m.nodes[p].child[left] = repl
	default:
		m.nodes[p].child[right] = repl
	}
	if repl != nilNode {
		m.nodes[repl].parent = p
	}
}

// rotate moves pivot down towards dir and lifts its child on the opposite side.
// rotate(x, left) is the classic left rotation:
//
//	  x              y
//	a   y    =>    x   c
//	  b   c      a   b
func (m *Map[K, V]) rotate(pivot uint32, dir int) {
	up := m.nodes[pivot].child[1-dir]
	inner := m.nodes[up].child[dir]

	m.nodes[pivot].child[1-dir] = inner
	if inner != nilNode {
		m.nodes[inner].parent = pivot
	}

	m.replace(pivot, up)

	m.nodes[up].child[dir] = pivot
	m.nodes[pivot].parent = up
	m.rotations++
}

// extreme descends from idx to the last node in direction dir.
func (m *Map[K, V]) extreme(idx uint32, dir int) uint32 {
	for m.nodes[idx].child[dir] != nilNode {
		idx = m.nodes[idx].child[dir]
	}
	return idx
}
