package sortedmap

import "fmt"

// Validate checks every red-black and bookkeeping invariant from scratch:
// black root, no red node with a red child, equal black height on every
// root-to-nil path, strictly increasing in-order keys, consistent parent
// links and a size matching the reachable node count.
//
// It returns nil or an *InvariantError. It never fails on a map only
// mutated through its public API; it exists for property tests.
func (m *Map[K, V]) Validate() error {
	if m.root == nilNode {
		if m.size != 0 {
			return &InvariantError{Rule: RuleSize, Detail: fmt.Sprintf("empty tree but size %d", m.size)}
		}
		return nil
	}
	if m.nodes[m.root].red {
		return &InvariantError{Rule: RuleRootBlack, Detail: "root is red"}
	}
	if p := m.nodes[m.root].parent; p != nilNode {
		return &InvariantError{Rule: RuleParentLink, Detail: fmt.Sprintf("root has parent %d", p)}
	}

	v := validator[K, V]{m: m}
	if _, err := v.walk(m.root, 1); err != nil {
		return err
	}
	if v.count != m.size {
		return &InvariantError{Rule: RuleSize, Detail: fmt.Sprintf("reachable %d, size %d", v.count, m.size)}
	}
	return nil
}

type validator[K, V any] struct {
	m       *Map[K, V]
	count   int
	prev    K
	hasPrev bool
}

// walk visits idx's subtree in order and returns its black height.
func (v *validator[K, V]) walk(idx uint32, depth int) (int, error) {
	if idx == nilNode {
		return 0, nil
	}
	if depth > maxDepth {
		return 0, &InvariantError{Rule: RuleBlackHeight, Detail: fmt.Sprintf("depth exceeds %d (cycle?)", maxDepth)}
	}
	n := &v.m.nodes[idx]

	for dir := left; dir <= right; dir++ {
		c := n.child[dir]
		if c == nilNode {
			continue
		}
		if v.m.nodes[c].parent != idx {
			return 0, &InvariantError{
				Rule:   RuleParentLink,
				Detail: fmt.Sprintf("node %d: child %d points to parent %d", idx, c, v.m.nodes[c].parent),
			}
		}
		if n.red && v.m.nodes[c].red {
			return 0, &InvariantError{
				Rule:   RuleRedRed,
				Detail: fmt.Sprintf("red node %d has red child %d", idx, c),
			}
		}
	}

	lh, err := v.walk(n.child[left], depth+1)
	if err != nil {
		return 0, err
	}

	if v.hasPrev && v.m.cmp(v.prev, n.key) >= 0 {
		return 0, &InvariantError{
			Rule:   RuleOrder,
			Detail: fmt.Sprintf("key %v does not follow %v", n.key, v.prev),
		}
	}
	v.prev, v.hasPrev = n.key, true
	v.count++

	rh, err := v.walk(n.child[right], depth+1)
	if err != nil {
		return 0, err
	}

	if lh != rh {
		return 0, &InvariantError{
			Rule:   RuleBlackHeight,
			Detail: fmt.Sprintf("node %d: left black height %d, right %d", idx, lh, rh),
		}
	}
	if !n.red {
		lh++
	}
	return lh, nil
}
