// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import "math"

// CountSat returns the number of satisfying assignments of r over exactly
// the variable set vars, weighted so that every variable not appearing on
// a given path counts both of its values. It fails with
// ErrVariableNotInSet the first time it encounters an internal node whose
// decision variable is missing from vars; use CountSatAuto to avoid that
// failure mode.
//
// The result is a float64 rather than an arbitrary-precision integer: for
// the variable counts this engine is built for, a wide floating type is
// an acceptable stand-in for exact big-integer counts.
func (m *Manager) CountSat(r NodeRef, vars map[int32]bool) (float64, error) {
	n := len(vars)
	memo := make(map[NodeRef]float64)
	count, err := m.countSatHelper(r, n, vars, memo)
	if err != nil {
		return 0, err
	}
	if !IsComplemented(r) {
		count = math.Pow(2, float64(n)) - count
	}
	return count, nil
}

// CountSatAuto counts satisfying assignments the same way as CountSat, but
// first extends vars with every variable actually appearing in r's
// support, so the strict membership check in CountSat can never fail.
func (m *Manager) CountSatAuto(r NodeRef, vars map[int32]bool) (float64, error) {
	full := make(map[int32]bool, len(vars))
	for v := range vars {
		full[v] = true
	}
	m.support(r, full)
	return m.CountSat(r, full)
}

// support collects every decision variable reachable from r into out.
func (m *Manager) support(r NodeRef, out map[int32]bool) {
	if IsTerminal(r) {
		return
	}
	n := m.tree.nodeAt(nodeOf(r))
	if out[n.var_] {
		return
	}
	out[n.var_] = true
	m.support(n.hi, out)
	m.support(n.lo, out)
}

func (m *Manager) countSatHelper(r NodeRef, n int, vars map[int32]bool, memo map[NodeRef]float64) (float64, error) {
	pow2 := math.Pow(2, float64(n))
	if IsTerminal(r) {
		return pow2, nil
	}
	if v, ok := memo[r]; ok {
		return v, nil
	}

	nd := m.tree.nodeAt(nodeOf(r))
	if !vars[nd.var_] {
		return 0, wrapf(ErrVariableNotInSet, "robdd: variable %d", nd.var_)
	}

	countT, err := m.countSatHelper(nd.hi, n, vars, memo)
	if err != nil {
		return 0, err
	}
	countF, err := m.countSatHelper(nd.lo, n, vars, memo)
	if err != nil {
		return 0, err
	}
	if IsComplemented(nd.hi) {
		countT = pow2 - countT
	}

	count := countT + (countF-countT)/2
	memo[r] = count
	return count, nil
}
