// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"log/slog"

	"github.com/elastic/gosigar"
)

// Manager owns one unique table and one computed cache. Every NodeRef is
// only meaningful relative to the Manager that produced it; mixing
// references from two Managers is a caller error the package does not
// detect.
type Manager struct {
	tree  *tree
	cache *computedCache
	cfg   *config
	log   *slog.Logger
}

// NewManager probes total physical memory (unless WithMemoryBudget sets a
// budget other than the 1 GiB default), subtracts a headroom constant, caps the result at
// a configured maximum, reserves a fixed share for the computed cache and
// hands the remainder to the unique table.
func NewManager(opts ...Option) (*Manager, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	budget := cfg.memoryBudget
	if budget == defaultMemoryBudget {
		if probed, err := probePhysicalMemory(); err == nil {
			budget = probed
		}
	}

	budget -= cfg.headroom
	if budget > cfg.maxBudget {
		budget = cfg.maxBudget
	}
	if budget < cfg.cacheBytes {
		budget = cfg.cacheBytes + (1 << 20)
	}

	remaining := budget - cfg.cacheBytes
	tableBytes := int64(float64(remaining) * cfg.tableRatio)

	const slotBytes = 24 // approximate size of tree.slot
	tableCap := int(tableBytes / slotBytes)
	if tableCap < 16 {
		tableCap = 16
	}

	const cacheSlotBytes = 28
	cacheCap := int(cfg.cacheBytes / cacheSlotBytes)
	if cacheCap < 16 {
		cacheCap = 16
	}

	m := &Manager{
		tree:  newTree(tableCap),
		cache: newComputedCache(cacheCap, cfg.countersOn),
		cfg:   cfg,
		log:   slog.Default(),
	}
	m.log.Debug("robdd manager sized",
		"table_slots", tableCap,
		"cache_slots", cacheCap,
		"granularity", cfg.granularity,
	)
	return m, nil
}

// probePhysicalMemory reports total physical memory in bytes via gosigar,
// the same cross-platform probe the rest of the retrieval pack uses
// (sysconf(_SC_PHYS_PAGES) and GlobalMemoryStatusEx are the two
// platform-specific primitives it wraps).
func probePhysicalMemory() (int64, error) {
	var mem gosigar.Mem
	if err := mem.Get(); err != nil {
		return 0, err
	}
	return int64(mem.Total), nil
}

// Ithvar returns the reference for variable v taking its true branch and
// false otherwise: the canonical single-variable node, built once per
// distinct v against this Manager's unique table.
func (m *Manager) Ithvar(v int32) (NodeRef, error) {
	return m.tree.make(v, True, False)
}

// NIthvar returns the reference for the negation of variable v.
func (m *Manager) NIthvar(v int32) (NodeRef, error) {
	r, err := m.tree.make(v, True, False)
	if err != nil {
		return False, err
	}
	return Complement(r), nil
}

// Size returns the size bookkeeping of r: 1 for a terminal, otherwise
// size(hi)+size(lo)+1 as recorded when the node was created. Shared
// descendants are counted once per path, so this is an upper bound on the
// number of distinct nodes reachable from r, not an exact count.
func (m *Manager) Size(r NodeRef) int32 {
	return m.tree.sizeOf(r)
}

// TableUsage reports how many of the unique table's slots are committed.
func (m *Manager) TableUsage() (used, capacity int) {
	return int(m.tree.used.Load()), len(m.tree.slots)
}

// CacheStats reports the computed cache's cumulative hit/miss tally.
type CacheStats struct {
	Hits, Misses uint64
}

// Stats returns the computed cache's hit/miss counters. It returns
// ErrSaturated unless the Manager was constructed with WithCounters(true),
// since the counters are never updated otherwise.
func (m *Manager) Stats() (CacheStats, error) {
	if !m.cache.counting {
		return CacheStats{}, ErrSaturated
	}
	return CacheStats{Hits: m.cache.hits.Load(), Misses: m.cache.misses.Load()}, nil
}
