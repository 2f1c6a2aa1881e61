// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import "golang.org/x/sync/errgroup"

// Ite is the single recursive primitive every connective in this package
// reduces to: "if A then B else C". It checks the five terminal rules,
// consults the computed cache, and otherwise rewrites the argument triple
// through the eleven standard-triple normalization rules before falling
// through to Shannon expansion on the topmost variable of A, B and C.
func (m *Manager) Ite(a, b, c NodeRef) (NodeRef, error) {
	switch {
	case a == True:
		return b, nil
	case a == False:
		return c, nil
	case b == True && c == False:
		return a, nil
	case b == False && c == True:
		return Complement(a), nil
	case b == c:
		return b, nil
	}

	if res, ok := m.cache.lookup(a, b, c); ok {
		return res, nil
	}

	res, err := m.iteUncached(a, b, c)
	if err != nil {
		return False, err
	}
	m.cache.insert(a, b, c, res)
	return res, nil
}

// equalsComplement reports whether x is the complement of y.
func equalsComplement(x, y NodeRef) bool {
	return x == Complement(y)
}

// rootVar returns var(a), treating either terminal as +infinity so it
// never wins the min() in Shannon expansion.
func (m *Manager) rootVar(r NodeRef) int32 {
	return m.tree.varOf(r)
}

// iteUncached applies the eleven standard-triple normalization rules, in
// the order given, then performs Shannon expansion. The order is
// load-bearing: rule 11 (complemented B) must be tried only after rule 10
// (complemented A), or the rewriter can thrash between the two forms
// instead of converging.
func (m *Manager) iteUncached(a, b, c NodeRef) (NodeRef, error) {
	switch {
	case a == b:
		// Ite(A, A, C) -> Ite(A, True, C).
		return m.Ite(a, True, c)

	case equalsComplement(a, b):
		// Ite(A, !A, C) -> Ite(A, False, C).
		return m.Ite(a, False, c)

	case a == c:
		// Ite(A, B, A) -> Ite(A, B, False).
		return m.Ite(a, b, False)

	case equalsComplement(a, c):
		// Ite(A, B, !A) -> Ite(A, B, True).
		return m.Ite(a, b, True)

	case b == True && m.rootVar(c) < m.rootVar(a):
		// Ite(A, True, C) -> Ite(C, True, A) when C orders before A.
		return m.Ite(c, True, a)

	case b == False && m.rootVar(c) < m.rootVar(a):
		// Ite(A, False, C) -> Ite(!C, False, !A) when C orders before A.
		return m.Ite(Complement(c), False, Complement(a))

	case c == True && m.rootVar(b) < m.rootVar(a):
		// Ite(A, B, True) -> Ite(!B, !A, True) when B orders before A.
		return m.Ite(Complement(b), Complement(a), True)

	case c == False && m.rootVar(b) < m.rootVar(a):
		// Ite(A, B, False) -> Ite(B, A, False) when B orders before A.
		return m.Ite(b, a, False)

	case equalsComplement(b, c) && m.rootVar(b) < m.rootVar(c):
		// Ite(A, B, !B) -> Ite(B, A, !A).
		return m.Ite(b, a, Complement(a))

	case IsComplemented(a):
		// Ite(A, B, C) -> Ite(!A, C, B) when A is complemented.
		return m.Ite(Complement(a), c, b)

	case IsComplemented(b):
		// Ite(A, B, C) -> !Ite(A, !B, !C) when B is complemented.
		res, err := m.Ite(a, Complement(b), Complement(c))
		if err != nil {
			return False, err
		}
		return Complement(res), nil
	}

	return m.shannonExpand(a, b, c)
}

// cofactor returns the restriction of r to var == value, leaving r
// unchanged when its own topmost variable does not match var (either
// because r is a terminal or because var does not appear above it).
func (m *Manager) cofactor(r NodeRef, var_ int32, value bool) NodeRef {
	if IsTerminal(r) || m.tree.varOf(r) != var_ {
		return r
	}
	if value {
		return m.tree.highOf(r)
	}
	return m.tree.lowOf(r)
}

// shannonExpand performs the recursive step of Ite: pick the topmost
// variable among A, B and C, cofactor all three on both of its values,
// recurse on each half (opportunistically in parallel when both halves
// are large), and assemble the result node.
func (m *Manager) shannonExpand(a, b, c NodeRef) (NodeRef, error) {
	x := minVar(m.rootVar(a), m.rootVar(b), m.rootVar(c))

	a0, b0, c0 := m.cofactor(a, x, false), m.cofactor(b, x, false), m.cofactor(c, x, false)
	a1, b1, c1 := m.cofactor(a, x, true), m.cofactor(b, x, true), m.cofactor(c, x, true)

	g := m.cfg.granularity
	lowBig := m.branchSize(a0) + m.branchSize(b0) + m.branchSize(c0) > g
	highBig := m.branchSize(a1) + m.branchSize(b1) + m.branchSize(c1) > g

	var r0, r1 NodeRef
	var err error

	switch {
	case lowBig && highBig:
		var eg errgroup.Group
		eg.Go(func() error {
			var e error
			r0, e = m.Ite(a0, b0, c0)
			return e
		})
		eg.Go(func() error {
			var e error
			r1, e = m.Ite(a1, b1, c1)
			return e
		})
		if err = eg.Wait(); err != nil {
			return False, err
		}

	case lowBig:
		var eg errgroup.Group
		eg.Go(func() error {
			var e error
			r0, e = m.Ite(a0, b0, c0)
			return e
		})
		if r1, err = m.Ite(a1, b1, c1); err != nil {
			return False, err
		}
		if err = eg.Wait(); err != nil {
			return False, err
		}

	case highBig:
		var eg errgroup.Group
		eg.Go(func() error {
			var e error
			r1, e = m.Ite(a1, b1, c1)
			return e
		})
		if r0, err = m.Ite(a0, b0, c0); err != nil {
			return False, err
		}
		if err = eg.Wait(); err != nil {
			return False, err
		}

	default:
		if r0, err = m.Ite(a0, b0, c0); err != nil {
			return False, err
		}
		if r1, err = m.Ite(a1, b1, c1); err != nil {
			return False, err
		}
	}

	return m.tree.make(x, r1, r0)
}

// branchSize returns the node-count size used for the granularity check,
// zero for either terminal.
func (m *Manager) branchSize(r NodeRef) int32 {
	if IsTerminal(r) {
		return 0
	}
	return m.tree.sizeOf(r)
}

func minVar(a, b, c int32) int32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
