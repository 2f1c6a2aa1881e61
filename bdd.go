// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import "io"

// Bdd is a thin handle pairing a NodeRef with the Manager it was built
// against. It exists purely for call-site convenience -- every method on
// it does nothing more than forward to the matching Manager method or
// package-level helper.
type Bdd struct {
	m *Manager
	r NodeRef
}

// Constant wraps a plain boolean as a Bdd.
func (m *Manager) Constant(v bool) Bdd {
	return Bdd{m: m, r: fromBool(v)}
}

// Variable returns the Bdd for the positive literal of variable v.
func (m *Manager) Variable(v int32) (Bdd, error) {
	r, err := m.Ithvar(v)
	if err != nil {
		return Bdd{}, err
	}
	return Bdd{m: m, r: r}, nil
}

// NegatedVariable returns the Bdd for the negative literal of variable v.
func (m *Manager) NegatedVariable(v int32) (Bdd, error) {
	r, err := m.NIthvar(v)
	if err != nil {
		return Bdd{}, err
	}
	return Bdd{m: m, r: r}, nil
}

// Ref returns the underlying NodeRef, for callers that need to cross back
// into the lower-level Manager API (Ite, CountSat, OneSat, ...).
func (b Bdd) Ref() NodeRef { return b.r }

// IsConstant reports whether b is one of the two terminal functions.
func (b Bdd) IsConstant() bool { return IsTerminal(b.r) }

// Equals reports whether a and b denote the same function in the same
// Manager; because the unique table is canonical this is a plain
// equality check on the underlying NodeRef, not a structural comparison.
func (a Bdd) Equals(b Bdd) bool {
	return a.m == b.m && a.r == b.r
}

// Not returns ¬b.
func (b Bdd) Not() Bdd {
	return Bdd{m: b.m, r: b.m.Not(b.r)}
}

func (a Bdd) binary(b Bdd, op func(*Manager, NodeRef, NodeRef) (NodeRef, error)) (Bdd, error) {
	r, err := op(a.m, a.r, b.r)
	if err != nil {
		return Bdd{}, err
	}
	return Bdd{m: a.m, r: r}, nil
}

// And returns a ∧ b.
func (a Bdd) And(b Bdd) (Bdd, error) { return a.binary(b, (*Manager).And) }

// Or returns a ∨ b.
func (a Bdd) Or(b Bdd) (Bdd, error) { return a.binary(b, (*Manager).Or) }

// Xor returns a ⊕ b.
func (a Bdd) Xor(b Bdd) (Bdd, error) { return a.binary(b, (*Manager).Xor) }

// Implies returns a ⇒ b.
func (a Bdd) Implies(b Bdd) (Bdd, error) { return a.binary(b, (*Manager).Implies) }

// ReverseImplies returns a ⇐ b.
func (a Bdd) ReverseImplies(b Bdd) (Bdd, error) { return a.binary(b, (*Manager).ReverseImplies) }

// Biimp returns a ⇔ b.
func (a Bdd) Biimp(b Bdd) (Bdd, error) { return a.binary(b, (*Manager).Biimp) }

// Cond computes the if-then-else of three Bdds against a common Manager.
func (m *Manager) Cond(a, b, c Bdd) (Bdd, error) {
	r, err := m.Ite(a.r, b.r, c.r)
	if err != nil {
		return Bdd{}, err
	}
	return Bdd{m: m, r: r}, nil
}

// OneSat searches for a satisfying assignment of b.
func (b Bdd) OneSat() (map[int32]bool, bool) {
	return b.m.OneSat(b.r)
}

// CountSat counts the satisfying assignments of b over vars.
func (b Bdd) CountSat(vars map[int32]bool) (float64, error) {
	return b.m.CountSat(b.r, vars)
}

// CountSatAuto counts the satisfying assignments of b over vars extended
// with b's own support.
func (b Bdd) CountSatAuto(vars map[int32]bool) (float64, error) {
	return b.m.CountSatAuto(b.r, vars)
}

// ToDot writes a GraphViz DOT description of b's reachable nodes to w
// under the given graph title.
func (b Bdd) ToDot(w io.Writer, title string) error {
	return b.m.ToDot(w, b.r, title)
}

// And folds And across a non-empty sequence of Bdds.
func And(bs ...Bdd) (Bdd, error) {
	if len(bs) == 0 {
		return Bdd{r: True}, nil
	}
	acc := bs[0]
	for _, b := range bs[1:] {
		var err error
		if acc, err = acc.And(b); err != nil {
			return Bdd{}, err
		}
	}
	return acc, nil
}

// Or folds Or across a non-empty sequence of Bdds.
func Or(bs ...Bdd) (Bdd, error) {
	if len(bs) == 0 {
		return Bdd{r: False}, nil
	}
	acc := bs[0]
	for _, b := range bs[1:] {
		var err error
		if acc, err = acc.Or(b); err != nil {
			return Bdd{}, err
		}
	}
	return acc, nil
}
