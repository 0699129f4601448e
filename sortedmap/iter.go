package sortedmap

import "iter"

// Entries returns an iterator over all key/value pairs in key order.
//
// Like Go maps under concurrent writes, the iterator panics with
// ErrModifiedDuringIteration if the loop body structurally modifies the map.
func (m *Map[K, V]) Entries(opts ...ScanOption) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		drain(m.Cursor(opts...), yield)
	}
}

// EntriesFrom returns an iterator over the pairs starting at start
// (see Seek for the exact semantics of start, After and Reverse).
func (m *Map[K, V]) EntriesFrom(start K, opts ...ScanOption) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		drain(m.Seek(start, opts...), yield)
	}
}

// Keys returns an iterator over the keys in order.
func (m *Map[K, V]) Keys(opts ...ScanOption) iter.Seq[K] {
	return keysOf(m.Entries(opts...))
}

// KeysFrom returns an iterator over the keys starting at start.
func (m *Map[K, V]) KeysFrom(start K, opts ...ScanOption) iter.Seq[K] {
	return keysOf(m.EntriesFrom(start, opts...))
}

// Values returns an iterator over the values in key order.
func (m *Map[K, V]) Values(opts ...ScanOption) iter.Seq[V] {
	return valuesOf(m.Entries(opts...))
}

// ValuesFrom returns an iterator over the values starting at start.
func (m *Map[K, V]) ValuesFrom(start K, opts ...ScanOption) iter.Seq[V] {
	return valuesOf(m.EntriesFrom(start, opts...))
}

// ForEach calls fn for every pair in ascending key order until fn returns false.
func (m *Map[K, V]) ForEach(fn func(K, V) bool) {
	drain(m.Cursor(), fn)
}

func drain[K, V any](c *Cursor[K, V], yield func(K, V) bool) {
	for c.Next() {
		if !yield(c.Key(), c.Value()) {
			return
		}
	}
	if err := c.Err(); err != nil {
		panic(err)
	}
}

func keysOf[K, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}

func valuesOf[K, V any](seq iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}
