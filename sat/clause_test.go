package sat

import "testing"

func TestClauseStoreInternAssignsDenseIDs(t *testing.T) {
	cs := &ClauseStore{}

	c0 := cs.Intern([]Literal{PositiveLiteral(0), PositiveLiteral(1)})
	c1 := cs.Intern([]Literal{NegativeLiteral(0), PositiveLiteral(2), PositiveLiteral(3)})

	if c0.ID() != 0 {
		t.Errorf("first clause ID = %d, want 0", c0.ID())
	}
	if c1.ID() != 1 {
		t.Errorf("second clause ID = %d, want 1", c1.ID())
	}
	if cs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cs.Len())
	}
	if cs.Get(c1.ID()) != c1 {
		t.Errorf("Get(%d) did not return the interned clause", c1.ID())
	}
}

func TestClauseStoreInternRejectsShortClauses(t *testing.T) {
	for _, lits := range [][]Literal{nil, {PositiveLiteral(0)}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Intern(%v): want panic, got none", lits)
				}
			}()
			(&ClauseStore{}).Intern(lits)
		}()
	}
}

func TestClauseSwapToFront(t *testing.T) {
	cs := &ClauseStore{}
	c := cs.Intern([]Literal{PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)})

	c.swapToFront()

	if c.Lit(0) != PositiveLiteral(1) || c.Lit(1) != PositiveLiteral(0) {
		t.Errorf("after swapToFront: Lit(0)=%v Lit(1)=%v, want (x1, x0)", c.Lit(0), c.Lit(1))
	}
	if c.Lit(2) != PositiveLiteral(2) {
		t.Errorf("swapToFront must not touch position 2: Lit(2) = %v", c.Lit(2))
	}
}

func TestClauseSwapWatch(t *testing.T) {
	cs := &ClauseStore{}
	c := cs.Intern([]Literal{PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2), PositiveLiteral(3)})

	c.swapWatch(3)

	if c.Lit(1) != PositiveLiteral(3) {
		t.Errorf("after swapWatch(3): Lit(1) = %v, want x3", c.Lit(1))
	}
	if c.Lit(3) != PositiveLiteral(1) {
		t.Errorf("after swapWatch(3): Lit(3) = %v, want x1", c.Lit(3))
	}
	if c.Lit(0) != PositiveLiteral(0) || c.Lit(2) != PositiveLiteral(2) {
		t.Errorf("swapWatch(3) must only touch positions 1 and 3")
	}
}
