package sat

// trailEntry records one literal asserted on the trail. decision is true iff
// the literal was asserted without a forcing clause (i.e. it opened a new
// decision level); tried records, for decision entries only, whether the
// opposite polarity has already been attempted at this decision level. See
// (Solver).backtrack for how tried drives chronological DPLL backtracking.
type trailEntry struct {
	lit      Literal
	decision bool
	tried    bool
}

// trail is the chronological record of asserted literals together with the
// current partial assignment and the decision-level boundaries.
//
// Invariant: assignment[v] != Unassigned iff v appears in entries.
type trail struct {
	assignment  IndexedVector[Variable, Value]
	entries     []trailEntry
	boundaries  []int // boundaries[k] = trail length when level k+1 was opened
}

func newTrail() *trail {
	return &trail{assignment: NewIndexedVector[Variable, Value]()}
}

// addVariable grows the assignment vector so that v is addressable.
func (t *trail) addVariable(v Variable) {
	t.assignment.EnsureIndex(v, Unassigned)
}

// level returns the current decision level. Level 0 is the root level, with
// no open decisions.
func (t *trail) level() int {
	return len(t.boundaries)
}

// valueOf returns the current value of variable v.
func (t *trail) valueOf(v Variable) Value {
	return t.assignment.At(v)
}

// litValue returns the current value of literal l.
func (t *trail) litValue(l Literal) Value {
	return ValueUnder(l, t.assignment.At(l.Var()))
}

// len returns the number of asserted literals.
func (t *trail) len() int {
	return len(t.entries)
}

// assign records that l has just become true, either as a decision (no
// forcing clause) or as a propagation consequence. The caller is
// responsible for ensuring var(l) was previously Unassigned.
func (t *trail) assign(l Literal, decision bool) {
	t.assignment.Set(l.Var(), Satisfy(l))
	t.entries = append(t.entries, trailEntry{lit: l, decision: decision})
}

// openLevel records the current trail length as the boundary of a new
// decision level, to be called immediately before assigning a decision
// literal.
func (t *trail) openLevel() {
	t.boundaries = append(t.boundaries, len(t.entries))
}

// undoLast un-assigns and removes the most recently asserted trail entry,
// returning it.
func (t *trail) undoLast() trailEntry {
	i := len(t.entries) - 1
	e := t.entries[i]
	t.assignment.Set(e.lit.Var(), Unassigned)
	t.entries = t.entries[:i]
	return e
}
