// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// And returns a ∧ b, computed as Ite(a, b, False).
func (m *Manager) And(a, b NodeRef) (NodeRef, error) {
	return m.Ite(a, b, False)
}

// Or returns a ∨ b, computed as Ite(a, True, b).
func (m *Manager) Or(a, b NodeRef) (NodeRef, error) {
	return m.Ite(a, True, b)
}

// Xor returns a ⊕ b, computed as Ite(a, ¬b, b).
func (m *Manager) Xor(a, b NodeRef) (NodeRef, error) {
	return m.Ite(a, Complement(b), b)
}

// Implies returns a ⇒ b, computed as Ite(a, b, True).
func (m *Manager) Implies(a, b NodeRef) (NodeRef, error) {
	return m.Ite(a, b, True)
}

// ReverseImplies returns a ⇐ b (equivalently b ⇒ a), computed as
// Ite(a, True, ¬b).
func (m *Manager) ReverseImplies(a, b NodeRef) (NodeRef, error) {
	return m.Ite(a, True, Complement(b))
}

// Biimp returns a ⇔ b, computed as Ite(a, b, ¬b).
func (m *Manager) Biimp(a, b NodeRef) (NodeRef, error) {
	return m.Ite(a, b, Complement(b))
}

// Not returns ¬a. Negation is the one connective that needs no call into
// Ite at all: flipping the complement bit is the entire operation.
func (m *Manager) Not(a NodeRef) NodeRef {
	return Complement(a)
}
