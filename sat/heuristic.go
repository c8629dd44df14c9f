package sat

import "github.com/rhartert/yagh"

// VariableOrder is a max-priority queue over unassigned variables, keyed by
// a score. NextDecision pops lazily: a variable already assigned by the time
// it reaches the front of the queue is discarded rather than removed
// eagerly, since removal on every assignment would be wasted work for
// variables that get propagated rather than decided.
//
// Scores start in clause-scan order (stable, deterministic) and are never
// bumped in this build: without conflict-driven clause learning there is no
// activity signal to bump on (see spec §9, "priority queue as a heuristic
// surface"). BumpScore is kept so a future VSIDS-style decaying score can be
// wired in without touching the search driver.
type VariableOrder struct {
	heap   *yagh.IntMap[float64]
	scores []float64
}

// NewVariableOrder returns an empty VariableOrder.
func NewVariableOrder() *VariableOrder {
	return &VariableOrder{heap: yagh.New[float64](0)}
}

// AddVariable registers a new variable with the given initial score. Callers
// add variables in order, so the heap index it registers (len(scores)-1)
// always matches the Variable's own ID.
func (vo *VariableOrder) AddVariable(initScore float64) {
	vo.scores = append(vo.scores, initScore)
	vo.heap.GrowBy(1)
	vo.heap.Put(len(vo.scores)-1, -initScore)
}

// SetPriority overwrites v's score so that lower ranks are popped first
// among otherwise-untouched variables (rank 0 is the highest priority).
// Used once per variable to establish the clause-scan initial order; see
// (Solver).AddClause and (Solver).finalizeOrder.
func (vo *VariableOrder) SetPriority(v Variable, rank int) {
	score := -float64(rank)
	vo.scores[v] = score
	vo.heap.Put(int(v), -score)
}

// BumpScore increases v's score and repositions it in the heap if present.
// Unused while no conflict-driven activity bumping is wired in; kept as the
// heuristic's extension point (see type doc).
func (vo *VariableOrder) BumpScore(v Variable, delta float64) {
	vo.scores[v] += delta
	if vo.heap.Contains(int(v)) {
		vo.heap.Put(int(v), -vo.scores[v])
	}
}

// Reinsert makes v a candidate for selection again, e.g. after it is
// unassigned by backtracking.
func (vo *VariableOrder) Reinsert(v Variable) {
	vo.heap.Put(int(v), -vo.scores[v])
}

// NextDecision returns the highest-score unassigned variable's positive
// literal, or ok=false if every variable is already assigned.
func (vo *VariableOrder) NextDecision(valueOf func(Variable) Value) (lit Literal, ok bool) {
	for {
		next, popped := vo.heap.Pop()
		if !popped {
			return 0, false
		}
		v := Variable(next.Elem)
		if valueOf(v) != Unassigned {
			continue // already assigned, skip (lazy deletion)
		}
		return PositiveLiteral(v), true
	}
}
