// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"strings"
	"testing"
)

func TestBddFacadeMatchesManagerOps(t *testing.T) {
	m := newTestManager(t)
	x1, err := m.Variable(1)
	if err != nil {
		t.Fatal(err)
	}
	x2, err := m.NegatedVariable(2)
	if err != nil {
		t.Fatal(err)
	}

	f, err := x1.And(x2)
	if err != nil {
		t.Fatal(err)
	}

	witness, ok := f.OneSat()
	if !ok || witness[1] != true || witness[2] != false {
		t.Errorf("Bdd façade OneSat = (%v, %v), want (x1=true,x2=false true)", witness, ok)
	}

	if f.Not().Not().Ref() != f.Ref() {
		t.Errorf("Not(Not(f)) != f through the façade")
	}
}

func TestBddAndOrFold(t *testing.T) {
	m := newTestManager(t)
	x1, _ := m.Variable(1)
	x2, _ := m.Variable(2)
	x3, _ := m.Variable(3)

	and, err := And(x1, x2, x3)
	if err != nil {
		t.Fatal(err)
	}
	manual, err := m.And(mustBddAnd(t, m, x1, x2), x3.Ref())
	if err != nil {
		t.Fatal(err)
	}
	if and.Ref() != manual {
		t.Errorf("And(x1,x2,x3) via façade = %v, want %v", and.Ref(), manual)
	}

	or, err := Or(x1, x2, x3)
	if err != nil {
		t.Fatal(err)
	}
	if or.IsConstant() {
		t.Errorf("x1|x2|x3 should not be constant")
	}
}

func mustBddAnd(t testing.TB, m *Manager, a, b Bdd) NodeRef {
	t.Helper()
	r, err := m.And(a.Ref(), b.Ref())
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestToDotProducesValidGraph(t *testing.T) {
	m := newTestManager(t)
	x1 := mustIthvar(t, m, 1)
	x2 := mustIthvar(t, m, 2)
	f, err := m.And(x1, x2)
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := m.ToDot(&sb, f, "x1-and-x2"); err != nil {
		t.Fatalf("ToDot: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, `digraph "x1-and-x2" {`) {
		t.Errorf("ToDot output missing digraph header: %q", out)
	}
	if !strings.Contains(out, "->") {
		t.Errorf("ToDot output has no edges: %q", out)
	}
}

func TestBddToDotForwardsToManager(t *testing.T) {
	m := newTestManager(t)
	x1 := mustIthvar(t, m, 1)
	f := Bdd{m: m, r: x1}

	var sb strings.Builder
	if err := f.ToDot(&sb, "x1"); err != nil {
		t.Fatalf("ToDot: %v", err)
	}
	if !strings.HasPrefix(sb.String(), `digraph "x1" {`) {
		t.Errorf("Bdd.ToDot output missing digraph header: %q", sb.String())
	}
}
