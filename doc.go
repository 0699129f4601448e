// Package entindex provides the in-memory index structures of an
// entity/component framework.
//
// Entindex is not a framework itself. It supplies the two data structures
// entity lifecycle, query matching and signal dispatch are built on:
//
//   - sortedmap: an ordered map backed by a red-black tree, used as a
//     component store keyed by entity id
//   - bitset: a sparse, paged bitmap with a three-layer skip index, used as
//     a presence index ("which entities have component X")
//
// # Quick Start
//
//	positions := sortedmap.NewOrdered[uint32, Position]()
//	hasPosition := bitset.New()
//	hasVelocity := bitset.New()
//
//	positions.Set(7, Position{X: 1, Y: 2})
//	hasPosition.Set(7, true)
//	hasVelocity.Set(7, true)
//
//	// Entities with both components, in ascending id order.
//	for id := range hasPosition.And(hasVelocity).Values() {
//	    pos, _ := positions.Get(id)
//	    fmt.Println(id, pos)
//	}
//
// # Range Scans
//
// Component stores iterate in key order from any start id, forwards or
// backwards, optionally excluding the start itself:
//
//	for id, pos := range positions.EntriesFrom(100, sortedmap.After()) {
//	    // ids > 100
//	}
//	for id := range positions.KeysFrom(100, sortedmap.Reverse()) {
//	    // ids <= 100, descending
//	}
//
// # Concurrency
//
// Neither structure locks. Reads may be shared between goroutines as long as
// no one writes; boolean set operations never modify their operands. Clone
// gives a snapshot that stays valid while the original changes. Mutating a
// structure from inside its own range loop panics with the package's
// ErrModifiedDuringIteration, the way Go maps fail under concurrent writes.
//
// # Observability
//
// Both packages accept a *slog.Logger through WithLogger and log debug
// events (page allocation, arena growth, clears). The Logger type in this
// package wraps slog with consistent field names:
//
//	logger := entindex.NewTextLogger(slog.LevelDebug)
//	m := sortedmap.NewOrdered[uint32, string](
//	    sortedmap.WithLogger(logger.WithIndex("names").Logger),
//	)
//
// Collector exports structure statistics to Prometheus:
//
//	c := entindex.NewCollector()
//	c.AddMap("positions", positions.Stats)
//	c.AddBitSet("has_position", hasPosition.Stats)
//	prometheus.MustRegister(c)
package entindex
