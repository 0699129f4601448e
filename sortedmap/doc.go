// Package sortedmap provides an ordered map backed by a red-black tree.
//
// Keys are ordered by a caller-supplied comparator. Lookups, inserts and
// deletes are O(log n); iteration is in key order, optionally reversed and
// optionally anchored at a start key:
//
//	m := sortedmap.NewOrdered[uint32, string]()
//	m.Set(7, "player")
//	m.Set(3, "camera")
//
//	for id, name := range m.EntriesFrom(5) {
//	    fmt.Println(id, name) // 7 player
//	}
//
// Architecture:
//   - Nodes live in a single arena slice and refer to each other by uint32
//     index; slot 0 is the nil sentinel and freed slots are reused
//   - Cursors walk the tree with an explicit stack, no parent chasing
//   - A version counter detects structural changes during iteration
//
// A Map is not safe for concurrent mutation. Use Clone for a snapshot that
// can be read while the original keeps changing.
package sortedmap
