// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"sync/atomic"
)

// slot is one entry of the unique table's open-addressed array. exists
// marks whether the slot currently holds a committed node; locked is a
// per-slot spinlock held only for the O(1) duration of a compare-and-
// maybe-install step, never across a probe sequence. A zero-valued slot
// (exists == false) is indistinguishable from the reserved terminal slot
// at index 0, which is why index 0 is never handed out by lookupOrCreate.
type slot struct {
	locked atomic.Bool
	exists atomic.Bool
	var_   int32
	hi     NodeRef
	lo     NodeRef
	size   int32
}

// tree is the unique table: a fixed-capacity, open-addressed,
// lock-striped store of internal nodes. It never resizes; once every slot
// in the probe sequence for a key is occupied by a different triple,
// lookupOrCreate reports ErrTableFull.
type tree struct {
	slots []slot
	// used counts committed slots, for TableUsage and tests; it is not
	// load-bearing for correctness.
	used atomic.Int64
}

func newTree(capacity int) *tree {
	if capacity < 2 {
		capacity = 2
	}
	return &tree{slots: make([]slot, capacity)}
}

func (t *tree) nodeAt(idx uint32) *node {
	s := &t.slots[idx]
	return &node{var_: s.var_, hi: s.hi, lo: s.lo, size: s.size}
}

const maxProbe = 64

// lookupOrCreate finds the unique-table slot for (var_, hi, lo), creating
// it if absent, and returns its index (never 0, which is reserved). It
// probes linearly starting from hash(var_,hi,lo) mod len(slots), holding
// each candidate slot's spinlock only long enough to check-and-possibly-
// install -- multiple goroutines racing for the same new triple will
// converge on whichever one wins the CAS, the rest observing the already-
// installed entry and returning its index.
func (t *tree) lookupOrCreate(var_ int32, hi, lo NodeRef) (uint32, error) {
	cap_ := uint32(len(t.slots))
	start := uint32(tripleKey(var_, hi, lo) % uint64(cap_))
	if start == 0 {
		start = 1
	}

	probes := maxProbe
	if probes > len(t.slots) {
		probes = len(t.slots)
	}

	for i := 0; i < probes; i++ {
		idx := (start + uint32(i)) % cap_
		if idx == 0 {
			continue
		}
		s := &t.slots[idx]

		if s.exists.Load() {
			if s.var_ == var_ && s.hi == hi && s.lo == lo {
				return idx, nil
			}
			continue
		}

		for !s.locked.CompareAndSwap(false, true) {
			// Spin: the hold time on the other side is O(1), so this
			// never blocks for long.
		}
		if s.exists.Load() {
			s.locked.Store(false)
			if s.var_ == var_ && s.hi == hi && s.lo == lo {
				return idx, nil
			}
			continue
		}

		s.var_ = var_
		s.hi = hi
		s.lo = lo
		s.size = t.sizeOf(hi) + t.sizeOf(lo) + 1
		s.exists.Store(true)
		s.locked.Store(false)
		t.used.Add(1)
		return idx, nil
	}

	return 0, ErrTableFull
}

// make applies the two canonicalization rules that keep the diagram
// reduced and give every function exactly one representation before a
// triple is allowed to reach lookupOrCreate:
//
//  1. If hi == lo the node is redundant (the decision never matters on
//     this variable); its value is simply lo, no node is created.
//  2. A stored node never has a complemented lo child. If lo would be
//     complemented, both children are inverted and the result is
//     complemented on the way back out, preserving the function's value
//     while keeping the invariant on the unique table.
func (t *tree) make(var_ int32, hi, lo NodeRef) (NodeRef, error) {
	if hi == lo {
		return lo, nil
	}

	complement := false
	if IsComplemented(lo) {
		hi, lo = Complement(hi), Complement(lo)
		complement = true
	}

	idx, err := t.lookupOrCreate(var_, hi, lo)
	if err != nil {
		return False, err
	}

	r := NodeRef(idx)
	if complement {
		r = Complement(r)
	}
	return r, nil
}
