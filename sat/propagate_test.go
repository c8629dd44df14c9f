package sat

import "testing"

func newPropagationSolver(numVars int) *Solver {
	s := NewSolver()
	for i := 0; i < numVars; i++ {
		s.AddVariable()
	}
	return s
}

func TestEnqueueContract(t *testing.T) {
	s := newPropagationSolver(1)
	v0 := Variable(0)
	pos := PositiveLiteral(v0)
	neg := NegativeLiteral(v0)

	if !s.enqueue(pos, true) {
		t.Fatalf("enqueue(%v) on an unassigned variable: want true, got false", pos)
	}
	if s.trail.valueOf(v0) != True {
		t.Fatalf("after enqueue(%v): valueOf(%d) = %v, want True", pos, v0, s.trail.valueOf(v0))
	}
	if !s.enqueue(pos, true) {
		t.Errorf("enqueue(%v) on an already-true literal: want true (idempotent), got false", pos)
	}
	if s.enqueue(neg, true) {
		t.Errorf("enqueue(%v) opposite of an already-true literal: want false (conflict), got true", neg)
	}
	if s.trail.valueOf(v0) != True {
		t.Errorf("a conflicting enqueue must not mutate state: valueOf(%d) = %v, want True", v0, s.trail.valueOf(v0))
	}
}

func TestPropagateUnitsChain(t *testing.T) {
	s := newPropagationSolver(3)
	v0, v1, v2 := Variable(0), Variable(1), Variable(2)

	s.AddClause([]Literal{NegativeLiteral(v0), PositiveLiteral(v1)}) // ¬x0 ∨ x1
	s.AddClause([]Literal{NegativeLiteral(v1), PositiveLiteral(v2)}) // ¬x1 ∨ x2

	if !s.enqueue(PositiveLiteral(v0), true) {
		t.Fatalf("enqueue(x0): want true, got false")
	}
	if s.propagateUnits() {
		t.Fatalf("propagateUnits(): unexpected conflict")
	}
	if s.trail.valueOf(v1) != True {
		t.Errorf("valueOf(v1) = %v, want True (forced by ¬x0 ∨ x1)", s.trail.valueOf(v1))
	}
	if s.trail.valueOf(v2) != True {
		t.Errorf("valueOf(v2) = %v, want True (forced by ¬x1 ∨ x2)", s.trail.valueOf(v2))
	}
	if s.stats.Propagations != 2 {
		t.Errorf("stats.Propagations = %d, want 2", s.stats.Propagations)
	}
}

func TestPropagateUnitsConflict(t *testing.T) {
	s := newPropagationSolver(2)
	v0, v1 := Variable(0), Variable(1)

	s.AddClause([]Literal{PositiveLiteral(v0), PositiveLiteral(v1)})  // x0 ∨ x1
	s.AddClause([]Literal{PositiveLiteral(v0), NegativeLiteral(v1)}) // x0 ∨ ¬x1

	if !s.enqueue(NegativeLiteral(v0), true) {
		t.Fatalf("enqueue(¬x0): want true, got false")
	}
	if !s.propagateUnits() {
		t.Fatalf("propagateUnits(): want conflict (x0=false forces x1=true and ¬x1), got none")
	}
	if s.stats.Conflicts != 1 {
		t.Errorf("stats.Conflicts = %d, want 1", s.stats.Conflicts)
	}
	if s.queue.Size() != 0 {
		t.Errorf("queue.Size() after a conflict = %d, want 0 (drained)", s.queue.Size())
	}
}

// TestWatchWellFormedness checks property 1 of the testable properties: after
// propagateUnits, every clause with at least two literals is a member of
// exactly the watchlist sets of its own two watched literals.
func TestWatchWellFormedness(t *testing.T) {
	s := newPropagationSolver(4)
	v0, v1, v2, v3 := Variable(0), Variable(1), Variable(2), Variable(3)

	s.AddClause([]Literal{PositiveLiteral(v0), PositiveLiteral(v1), PositiveLiteral(v2)})
	s.AddClause([]Literal{NegativeLiteral(v0), PositiveLiteral(v3)})

	if !s.enqueue(NegativeLiteral(v1), true) {
		t.Fatalf("enqueue(¬x1): want true, got false")
	}
	if s.propagateUnits() {
		t.Fatalf("propagateUnits(): unexpected conflict")
	}

	for id := ClauseID(0); id < ClauseID(s.store.Len()); id++ {
		c := s.store.Get(id)
		w0, w1 := c.Lit(0), c.Lit(1)
		if !s.watchlist.Contains(w0.Negate(), id) {
			t.Errorf("clause %v: not in watchlist[%v] (its own position-0 watch)", c, w0.Negate())
		}
		if !s.watchlist.Contains(w1.Negate(), id) {
			t.Errorf("clause %v: not in watchlist[%v] (its own position-1 watch)", c, w1.Negate())
		}
		for j := 2; j < c.Len(); j++ {
			if s.watchlist.Contains(c.Lit(j).Negate(), id) {
				t.Errorf("clause %v: unexpectedly present in watchlist[%v] (position %d is not watched)", c, c.Lit(j).Negate(), j)
			}
		}
	}
}
