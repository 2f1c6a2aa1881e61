// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// OneSat searches depth-first for a satisfying assignment of r, trying
// the low branch of each decision before the high one. It returns the
// witness as a map from variable to the value assigned to it, and false
// if r is unsatisfiable (i.e. r is the False constant).
//
// The search carries a running parity bit that starts as the negation of
// r's own complement flag and flips whenever it descends into a
// complemented high child; a terminal is a genuine witness exactly when
// the parity bit is false there, which is what lets the same recursion work uniformly
// whether r or any node on the path to the terminal is complemented.
func (m *Manager) OneSat(r NodeRef) (map[int32]bool, bool) {
	result := make(map[int32]bool)
	if m.oneSatHelper(r, !IsComplemented(r), result) {
		return result, true
	}
	return nil, false
}

func (m *Manager) oneSatHelper(r NodeRef, parity bool, result map[int32]bool) bool {
	if IsTerminal(r) {
		return !parity
	}

	n := m.tree.nodeAt(nodeOf(r))

	result[n.var_] = false
	if m.oneSatHelper(n.lo, parity, result) {
		return true
	}

	result[n.var_] = true
	if IsComplemented(n.hi) {
		parity = !parity
	}
	return m.oneSatHelper(n.hi, parity, result)
}
