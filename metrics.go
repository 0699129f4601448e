package entindex

import (
	"sync"

	"github.com/hupe1980/entindex/bitset"
	"github.com/hupe1980/entindex/sortedmap"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "entindex"

var (
	mapEntriesDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "sortedmap", "entries"),
		"Number of keys in the ordered map.",
		[]string{"index"}, nil,
	)
	mapHeightDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "sortedmap", "height"),
		"Longest root-to-leaf path of the red-black tree.",
		[]string{"index"}, nil,
	)
	mapArenaSlotsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "sortedmap", "arena_slots"),
		"Allocated node slots, including free ones.",
		[]string{"index"}, nil,
	)
	mapRotationsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "sortedmap", "rotations_total"),
		"Tree rotations performed since construction.",
		[]string{"index"}, nil,
	)
	bitsetPagesDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "bitset", "pages"),
		"Allocated 8192-bit pages.",
		[]string{"index"}, nil,
	)
	bitsetActivePagesDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "bitset", "active_pages"),
		"Pages holding at least one key.",
		[]string{"index"}, nil,
	)
	bitsetCardinalityDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "bitset", "cardinality"),
		"Number of keys in the set.",
		[]string{"index"}, nil,
	)
)

// Collector exports structure statistics of named indices to Prometheus.
//
// The data structures themselves do no locking. The stats functions passed
// to AddMap and AddBitSet are called on every scrape and must take whatever
// lock the owner uses to guard the structure:
//
//	c := entindex.NewCollector()
//	c.AddMap("positions", func() sortedmap.Stats {
//	    mu.RLock()
//	    defer mu.RUnlock()
//	    return positions.Stats()
//	})
//	prometheus.MustRegister(c)
type Collector struct {
	mu      sync.Mutex
	maps    map[string]func() sortedmap.Stats
	bitsets map[string]func() bitset.Stats
	logger  *Logger
}

var _ prometheus.Collector = (*Collector)(nil)

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithCollectorLogger sets the logger used for scrape events.
func WithCollectorLogger(l *Logger) CollectorOption {
	return func(c *Collector) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCollector creates a Collector with no sources.
func NewCollector(optFns ...CollectorOption) *Collector {
	c := &Collector{
		maps:    make(map[string]func() sortedmap.Stats),
		bitsets: make(map[string]func() bitset.Stats),
		logger:  NoopLogger(),
	}
	for _, fn := range optFns {
		fn(c)
	}
	return c
}

// AddMap registers an ordered map under name, replacing any previous source
// of that name.
func (c *Collector) AddMap(name string, stats func() sortedmap.Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maps[name] = stats
}

// AddBitSet registers a bitset under name, replacing any previous source of
// that name.
func (c *Collector) AddBitSet(name string, stats func() bitset.Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bitsets[name] = stats
}

// Remove unregisters every source called name.
func (c *Collector) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.maps, name)
	delete(c.bitsets, name)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- mapEntriesDesc
	ch <- mapHeightDesc
	ch <- mapArenaSlotsDesc
	ch <- mapRotationsDesc
	ch <- bitsetPagesDesc
	ch <- bitsetActivePagesDesc
	ch <- bitsetCardinalityDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for name, stats := range c.maps {
		s := stats()
		ch <- prometheus.MustNewConstMetric(mapEntriesDesc, prometheus.GaugeValue, float64(s.Entries), name)
		ch <- prometheus.MustNewConstMetric(mapHeightDesc, prometheus.GaugeValue, float64(s.Height), name)
		ch <- prometheus.MustNewConstMetric(mapArenaSlotsDesc, prometheus.GaugeValue, float64(s.ArenaSlots), name)
		ch <- prometheus.MustNewConstMetric(mapRotationsDesc, prometheus.CounterValue, float64(s.Rotations), name)
	}
	for name, stats := range c.bitsets {
		s := stats()
		ch <- prometheus.MustNewConstMetric(bitsetPagesDesc, prometheus.GaugeValue, float64(s.Pages), name)
		ch <- prometheus.MustNewConstMetric(bitsetActivePagesDesc, prometheus.GaugeValue, float64(s.ActivePages), name)
		ch <- prometheus.MustNewConstMetric(bitsetCardinalityDesc, prometheus.GaugeValue, float64(s.Cardinality), name)
	}

	c.logger.Debug("metrics collected", "maps", len(c.maps), "bitsets", len(c.bitsets))
}
