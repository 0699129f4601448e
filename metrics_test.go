package entindex

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/hupe1980/entindex/bitset"
	"github.com/hupe1980/entindex/sortedmap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	m := sortedmap.NewOrdered[uint32, string]()
	for i := range uint32(3) {
		m.Set(i, "c")
	}
	b := bitset.New()
	b.Set(1, true)
	b.Set(9000, true)
	b.Set(20_000, true)
	b.Set(20_000, false)

	c := NewCollector()
	c.AddMap("names", m.Stats)
	c.AddBitSet("alive", b.Stats)

	expected := `
# HELP entindex_bitset_active_pages Pages holding at least one key.
# TYPE entindex_bitset_active_pages gauge
entindex_bitset_active_pages{index="alive"} 2
# HELP entindex_bitset_cardinality Number of keys in the set.
# TYPE entindex_bitset_cardinality gauge
entindex_bitset_cardinality{index="alive"} 2
# HELP entindex_bitset_pages Allocated 8192-bit pages.
# TYPE entindex_bitset_pages gauge
entindex_bitset_pages{index="alive"} 3
# HELP entindex_sortedmap_arena_slots Allocated node slots, including free ones.
# TYPE entindex_sortedmap_arena_slots gauge
entindex_sortedmap_arena_slots{index="names"} 3
# HELP entindex_sortedmap_entries Number of keys in the ordered map.
# TYPE entindex_sortedmap_entries gauge
entindex_sortedmap_entries{index="names"} 3
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"entindex_bitset_active_pages",
		"entindex_bitset_cardinality",
		"entindex_bitset_pages",
		"entindex_sortedmap_arena_slots",
		"entindex_sortedmap_entries",
	)
	require.NoError(t, err)

	assert.Equal(t, 7, testutil.CollectAndCount(c))
}

func TestCollector_Remove(t *testing.T) {
	c := NewCollector()
	c.AddMap("a", sortedmap.NewOrdered[int, int]().Stats)
	c.AddBitSet("a", bitset.New().Stats)
	c.AddBitSet("b", bitset.New().Stats)
	assert.Equal(t, 4+3+3, testutil.CollectAndCount(c))

	c.Remove("a")
	assert.Equal(t, 3, testutil.CollectAndCount(c))
}

func TestCollector_Register(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	c := NewCollector()
	c.AddBitSet("alive", bitset.New().Stats)

	require.NoError(t, reg.Register(c))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
}

func TestCollector_LogsScrape(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := NewCollector(WithCollectorLogger(logger))
	c.AddMap("names", sortedmap.NewOrdered[int, int]().Stats)
	testutil.CollectAndCount(c)

	assert.Contains(t, buf.String(), "metrics collected")
	assert.Contains(t, buf.String(), "maps=1")
}
