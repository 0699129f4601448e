package entindex_test

import (
	"fmt"
	"slices"

	"github.com/hupe1980/entindex/bitset"
	"github.com/hupe1980/entindex/sortedmap"
)

type position struct {
	X, Y int
}

// Example_presenceQuery demonstrates the calls a query matcher makes:
// intersect presence indices, then fetch components by entity id.
func Example_presenceQuery() {
	positions := sortedmap.NewOrdered[uint32, position]()
	hasPosition := bitset.New()
	hasVelocity := bitset.New()
	frozen := bitset.New()

	for id := uint32(1); id <= 5; id++ {
		positions.Set(id, position{X: int(id), Y: int(id) * 10})
		hasPosition.Set(id, true)
	}
	hasVelocity.Set(2, true)
	hasVelocity.Set(3, true)
	hasVelocity.Set(4, true)
	frozen.Set(3, true)

	moving := hasPosition.And(hasVelocity).AndNot(frozen)
	for id := range moving.Values() {
		pos, _ := positions.Get(id)
		fmt.Println(id, pos)
	}
	// Output:
	// 2 {2 20}
	// 4 {4 40}
}

// Example_rangeScan demonstrates start-anchored scans over a component store.
func Example_rangeScan() {
	names := sortedmap.NewOrdered[uint32, string]()
	for i, name := range []string{"camera", "player", "enemy", "door", "light"} {
		names.Set(uint32(i*10), name)
	}

	for id, name := range names.EntriesFrom(20, sortedmap.After()) {
		fmt.Println(id, name)
	}
	fmt.Println(slices.Collect(names.KeysFrom(25, sortedmap.Reverse())))
	// Output:
	// 30 door
	// 40 light
	// [20 10 0]
}

// Example_despawn demonstrates removing an entity while scanning a snapshot.
func Example_despawn() {
	names := sortedmap.NewOrdered[uint32, string]()
	alive := bitset.New()
	for i, name := range []string{"a", "b", "c", "d"} {
		names.Set(uint32(i), name)
		alive.Set(uint32(i), true)
	}

	for id, name := range names.Clone().Entries() {
		if name == "b" || name == "d" {
			names.Delete(id)
			alive.Set(id, false)
		}
	}

	fmt.Println(names.Len(), alive.ToSlice(nil))
	// Output: 2 [0 2]
}

// Example_setWord demonstrates bulk loading 32 presence bits at once.
func Example_setWord() {
	b := bitset.New()
	if err := b.SetWord(0, 0xcafebabe); err != nil {
		panic(err)
	}
	fmt.Println(b.Cardinality(), b.Get(1), b.Get(6))
	// Output: 22 true false
}
