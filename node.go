// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// node is a single unique-table entry: a decision on variable var_ between
// a high (true) branch and a low (false) branch, both themselves NodeRefs.
// size is computed once at construction time purely from the sizes of hi
// and lo, as size(hi)+size(lo)+1 with each terminal counting 1. Nodes
// shared between the two children are counted once per child, so size is
// an upper bound on the number of distinct nodes reachable, not that
// number itself. It is cheap bookkeeping used by the ITE granularity
// check, not a correctness requirement of the diagram itself.
type node struct {
	var_ int32
	hi   NodeRef
	lo   NodeRef
	size int32
}

// sizeOf returns the node-count size of r: 1 for either terminal, and
// size(hi)+size(lo)+1 for an internal node looked up in t.
func (t *tree) sizeOf(r NodeRef) int32 {
	if IsTerminal(r) {
		return 1
	}
	return t.nodeAt(nodeOf(r)).size
}

// varOf returns the decision variable of r, or noVar if r is a terminal.
func (t *tree) varOf(r NodeRef) int32 {
	if IsTerminal(r) {
		return noVar
	}
	return t.nodeAt(nodeOf(r)).var_
}

// highOf and lowOf return the high/low children of r, propagating the
// complement bit of r onto both: this is what makes lo-complement
// canonicalization possible, since every internal node stores its lo
// child uncomplemented and pushes the sign onto the reference instead.
func (t *tree) highOf(r NodeRef) NodeRef {
	n := t.nodeAt(nodeOf(r))
	if IsComplemented(r) {
		return Complement(n.hi)
	}
	return n.hi
}

func (t *tree) lowOf(r NodeRef) NodeRef {
	n := t.nodeAt(nodeOf(r))
	if IsComplemented(r) {
		return Complement(n.lo)
	}
	return n.lo
}
