// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import "testing"

func TestNewManagerDefaults(t *testing.T) {
	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	used, cap_ := m.TableUsage()
	if used != 0 {
		t.Errorf("a fresh Manager must start with an empty table, used=%d", used)
	}
	if cap_ <= 0 {
		t.Errorf("table capacity must be positive, got %d", cap_)
	}
}

func TestManagerWithExplicitBudget(t *testing.T) {
	m, err := NewManager(WithMemoryBudget(1<<24), WithCacheBytes(1<<18))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if _, cap_ := m.TableUsage(); cap_ <= 0 {
		t.Errorf("expected a nonzero table capacity with an explicit budget")
	}
}

func TestManagerTableFillsUpOnSmallRatio(t *testing.T) {
	m, err := NewManager(WithMemoryBudget(1<<20), WithCacheBytes(1<<14), WithTableRatio(0.01))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	var lastErr error
	for v := int32(0); v < 100000; v++ {
		if _, lastErr = m.Ithvar(v); lastErr != nil {
			break
		}
	}
	if lastErr != ErrTableFull {
		t.Errorf("expected ErrTableFull once a tightly-budgeted table saturates, got %v", lastErr)
	}
}

func TestStatsErrorsWithoutCounters(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Stats(); err != ErrSaturated {
		t.Errorf("Stats on a counters-less Manager = %v, want ErrSaturated", err)
	}
}

func TestStatsTracksHitsAndMisses(t *testing.T) {
	m, err := NewManager(WithMemoryBudget(1<<26), WithCacheBytes(1<<20), WithCounters(true))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	x1 := mustIthvar(t, m, 1)
	x2 := mustIthvar(t, m, 2)

	if _, err := m.And(x1, x2); err != nil {
		t.Fatal(err)
	}
	if _, err := m.And(x1, x2); err != nil { // repeats the same ITE triple, should hit
		t.Fatal(err)
	}

	stats, err := m.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Hits == 0 {
		t.Errorf("expected at least one cache hit, got %+v", stats)
	}
}

func TestIthvarAndNIthvarAreComplements(t *testing.T) {
	m := newTestManager(t)
	pos, err := m.Ithvar(7)
	if err != nil {
		t.Fatal(err)
	}
	neg, err := m.NIthvar(7)
	if err != nil {
		t.Fatal(err)
	}
	if neg != Complement(pos) {
		t.Errorf("NIthvar(7) = %v, want Complement(Ithvar(7)) = %v", neg, Complement(pos))
	}
}
