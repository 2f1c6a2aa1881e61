// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import "sync/atomic"

// cacheEntry is one lossy slot of the computed cache: the ITE argument
// triple it last held and the result Ite computed for it. A mismatching
// read (stale or never-written slot) is simply a miss -- nothing is ever
// retried or chained, which is what keeps the cache O(1) and collision
// resolution unnecessary.
type cacheEntry struct {
	a, b, c NodeRef
	res     NodeRef
}

// computedCache is the fixed-capacity, lossy, lock-striped memo table
// keyed on (A,B,C) ITE argument triples. Unlike the unique table it never
// reports failure: a write that collides with an occupied slot simply
// overwrites it, trading completeness of the memo for O(1) space and no
// probing.
type computedCache struct {
	slots    []cacheSlot
	counting bool
	hits     atomic.Uint64
	misses   atomic.Uint64
}

type cacheSlot struct {
	locked atomic.Bool
	valid  atomic.Bool
	entry  cacheEntry
}

// newComputedCache allocates a cache with the given slot capacity.
// counting gates whether lookup keeps the hit/miss tallies Stats reports;
// it is off by default so a probe costs nothing beyond the CAS spin.
func newComputedCache(capacity int, counting bool) *computedCache {
	if capacity < 1 {
		capacity = 1
	}
	return &computedCache{slots: make([]cacheSlot, capacity), counting: counting}
}

// lookup returns the memoized result for (a,b,c) and true on a hit, or
// the zero NodeRef and false on a miss.
func (cc *computedCache) lookup(a, b, c NodeRef) (NodeRef, bool) {
	idx := iteKey(a, b, c) % uint64(len(cc.slots))
	s := &cc.slots[idx]
	if !s.valid.Load() {
		cc.recordMiss()
		return False, false
	}
	for !s.locked.CompareAndSwap(false, true) {
	}
	e := s.entry
	s.locked.Store(false)
	if e.a == a && e.b == b && e.c == c {
		cc.recordHit()
		return e.res, true
	}
	cc.recordMiss()
	return False, false
}

func (cc *computedCache) recordHit() {
	if cc.counting {
		cc.hits.Add(1)
	}
}

func (cc *computedCache) recordMiss() {
	if cc.counting {
		cc.misses.Add(1)
	}
}

// insert stores the result of ITE(a,b,c) = res, overwriting whatever the
// slot previously held.
func (cc *computedCache) insert(a, b, c, res NodeRef) {
	idx := iteKey(a, b, c) % uint64(len(cc.slots))
	s := &cc.slots[idx]
	for !s.locked.CompareAndSwap(false, true) {
	}
	s.entry = cacheEntry{a: a, b: b, c: c, res: res}
	s.valid.Store(true)
	s.locked.Store(false)
}
