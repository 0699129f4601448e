package sortedmap

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectKeys[K, V any](m *Map[K, V]) []K {
	return slices.Collect(m.Keys())
}

func TestMap_Basic(t *testing.T) {
	m := NewOrdered[int, string]()

	_, ok := m.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	m.Set(1, "one")
	m.Set(2, "two")

	v, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "one", v)
	assert.True(t, m.Has(2))
	assert.False(t, m.Has(3))
	assert.Equal(t, 2, m.Len())

	assert.True(t, m.Delete(1))
	assert.False(t, m.Has(1))
	assert.Equal(t, 1, m.Len())
	require.NoError(t, m.Validate())
}

func TestMap_InsertDeleteScenario(t *testing.T) {
	m := NewOrdered[int, int]()
	for _, k := range []int{5, 3, 7, 2, 4, 6, 8} {
		m.Set(k, k*10)
		require.NoError(t, m.Validate())
	}

	assert.True(t, m.Delete(4))
	require.NoError(t, m.Validate())

	if diff := cmp.Diff([]int{2, 3, 5, 6, 7, 8}, collectKeys(m)); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{20, 30, 50, 60, 70, 80}, slices.Collect(m.Values()))
}

func TestMap_LastWriteWins(t *testing.T) {
	m := NewOrdered[string, int]()

	m.Set("a", 1)
	before := m.Stats()
	m.Set("a", 2)
	m.Set("a", 3)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, before, m.Stats())
}

func TestMap_DeleteAbsent(t *testing.T) {
	m := NewOrdered[int, int]()
	assert.False(t, m.Delete(42))

	m.Set(1, 1)
	assert.False(t, m.Delete(42))
	assert.Equal(t, 1, m.Len())
	require.NoError(t, m.Validate())
}

func TestMap_DeleteAll(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := range 100 {
		m.Set(i, i)
	}
	for i := range 100 {
		require.True(t, m.Delete((i*37)%100), "key %d", (i*37)%100)
		require.NoError(t, m.Validate())
	}
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, collectKeys(m))
}

func TestMap_ReusesFreedSlots(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := range 32 {
		m.Set(i, i)
	}
	slots := m.Stats().ArenaSlots

	for i := range 16 {
		m.Delete(i)
	}
	assert.Equal(t, 16, m.Stats().FreeSlots)

	for i := 100; i < 116; i++ {
		m.Set(i, i)
	}
	s := m.Stats()
	assert.Equal(t, slots, s.ArenaSlots)
	assert.Equal(t, 0, s.FreeSlots)
	require.NoError(t, m.Validate())
}

func TestMap_Clear(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := range 10 {
		m.Set(i, i)
	}

	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has(3))
	_, _, ok := m.Min()
	assert.False(t, ok)
	require.NoError(t, m.Validate())

	m.Set(3, 3)
	assert.Equal(t, []int{3}, collectKeys(m))
}

func TestMap_MinMax(t *testing.T) {
	m := NewOrdered[int, string]()

	_, _, ok := m.Max()
	assert.False(t, ok)

	for _, k := range []int{50, 10, 90, 30, 70} {
		m.Set(k, "v")
	}

	k, _, ok := m.Min()
	require.True(t, ok)
	assert.Equal(t, 10, k)

	k, _, ok = m.Max()
	require.True(t, ok)
	assert.Equal(t, 90, k)
}

func TestMap_CustomComparator(t *testing.T) {
	// Case-insensitive, descending.
	m := New[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(b), strings.ToLower(a))
	})

	m.Set("b", 1)
	m.Set("A", 2)
	m.Set("c", 3)
	m.Set("a", 4)

	assert.Equal(t, []string{"c", "b", "A"}, collectKeys(m))
	v, _ := m.Get("A")
	assert.Equal(t, 4, v)
}

func TestMap_Clone(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := range 20 {
		m.Set(i, i)
	}

	c := m.Clone()
	m.Delete(5)
	m.Set(100, 100)
	c.Set(5, 500)

	assert.Equal(t, 20, c.Len())
	v, _ := c.Get(5)
	assert.Equal(t, 500, v)
	assert.False(t, c.Has(100))
	assert.False(t, m.Has(5))
	require.NoError(t, m.Validate())
	require.NoError(t, c.Validate())
}

func TestMap_Stats(t *testing.T) {
	m := NewOrdered[int, int](WithCapacity(1024))

	assert.Equal(t, Stats{}, m.Stats())

	for i := range 1024 {
		m.Set(i, i)
	}

	s := m.Stats()
	assert.Equal(t, 1024, s.Entries)
	assert.Equal(t, 1024, s.ArenaSlots)
	assert.Positive(t, s.Rotations)
	// Height of a red-black tree is at most 2*log2(n+1).
	assert.LessOrEqual(t, s.Height, 20)
	assert.GreaterOrEqual(t, s.Height, 11)
	assert.LessOrEqual(t, s.BlackHeight, s.Height)
}

func TestMap_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := NewOrdered[int, int](WithLogger(logger), WithCapacity(2))
	for i := range 8 {
		m.Set(i, i)
	}
	m.Clear()

	out := buf.String()
	assert.Contains(t, out, "sortedmap arena growing")
	assert.Contains(t, out, "sortedmap cleared")
	assert.Contains(t, out, "entries=8")
}

func TestMap_NilLoggerIgnored(t *testing.T) {
	m := NewOrdered[int, int](WithLogger(nil))
	assert.NotPanics(t, func() {
		m.Set(1, 1)
		m.Clear()
	})
}
