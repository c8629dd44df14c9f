package sat

// Statistics holds counters over a single Solve call. They are reset at the
// start of every Solve and never decrease within one call.
type Statistics struct {
	Decisions    int64
	Propagations int64
	Conflicts    int64
}

// Result is the outcome of a Solve call.
type Result struct {
	Satisfiable bool
	// Model holds a value per variable, indexed by Variable, valid only when
	// Satisfiable is true.
	Model []bool
}

// Solver is a DPLL engine built around a two-watched-literal clause store: no
// conflict-driven clause learning, no restarts, no activity decay. Clauses
// are added once via AddClause; Solve may be called more than once on the
// same Solver (e.g. after adding a blocking clause to enumerate further
// models), in which case it first unwinds to decision level 0 and resumes
// from the root assignment built up by unit propagation and AddClause-time
// preprocessing.
type Solver struct {
	store     *ClauseStore
	watchlist *Watchlist
	trail     *trail
	queue     *Queue[Literal]
	order     *VariableOrder

	numVars int
	// seen and nextPriority implement the clause-scan variable ordering: a
	// variable's priority is set the first time it is seen in a clause,
	// earlier occurrences ranking higher. Variables never mentioned by any
	// clause are assigned the remaining, lowest priorities once, in
	// NewSolver variable order, the first time Solve runs.
	seen           []bool
	nextPriority   int
	orderFinalized bool

	// unsat latches a contradiction: one discovered while clauses were being
	// added (an empty clause, or two conflicting unit clauses), or a Solve
	// call that exhausted the search. Once set, it is permanent: no further
	// AddClause call can undo it.
	unsat bool

	stats Statistics
}

// NewSolver returns an empty Solver with no variables and no clauses.
func NewSolver() *Solver {
	return &Solver{
		store:     &ClauseStore{},
		watchlist: NewWatchlist(),
		trail:     newTrail(),
		queue:     NewQueue[Literal](64),
		order:     NewVariableOrder(),
	}
}

// NewDefaultSolver returns a Solver configured with the engine's only
// supported configuration. Kept as a distinct constructor, matching the name
// callers reach for when a solver needs no further tuning.
func NewDefaultSolver() *Solver {
	return NewSolver()
}

// NumVariables returns the number of variables registered so far.
func (s *Solver) NumVariables() int {
	return s.numVars
}

// Stats returns the statistics of the most recent (or in-progress) Solve
// call.
func (s *Solver) Stats() Statistics {
	return s.stats
}

// AddVariable registers a new variable and returns its identifier. Variables
// are dense and 0-based, in the order they are added.
func (s *Solver) AddVariable() Variable {
	v := Variable(s.numVars)
	s.numVars++
	s.trail.addVariable(v)
	s.seen = append(s.seen, false)
	s.order.AddVariable(0)
	return v
}

// AddClause adds a disjunction of literals to the problem. Empty and unit
// clauses never reach the clause store:
//
//   - an empty clause latches the solver permanently unsat;
//   - a unit clause is asserted immediately as a level-0 fact, through the
//     same enqueue path ordinary propagation uses; a unit that contradicts
//     an existing assignment latches the solver unsat;
//   - clauses of two or more literals are interned and watched on their
//     first two literals.
//
// Decisions left open by a previous Solve call are undone first, so the
// clause is always added at decision level 0. AddClause must not be called
// while a Solve call is in progress.
func (s *Solver) AddClause(lits []Literal) {
	for _, l := range lits {
		v := l.Var()
		if !s.seen[v] {
			s.seen[v] = true
			s.order.SetPriority(v, s.nextPriority)
			s.nextPriority++
		}
	}

	if s.unsat {
		return
	}
	s.unwindToLevelZero()

	switch len(lits) {
	case 0:
		s.unsat = true
	case 1:
		if !s.enqueue(lits[0], false) {
			s.unsat = true
		}
	default:
		c := s.store.Intern(lits)
		s.watchlist.Insert(c.Lit(0).Negate(), c.ID())
		s.watchlist.Insert(c.Lit(1).Negate(), c.ID())
	}
}

// finalizeOrder assigns priorities to variables that never appeared in any
// clause, so that every variable is a candidate decision and a satisfiable
// instance always yields a total model. Idempotent: a second call is a
// no-op, since every variable is marked seen by the first.
func (s *Solver) finalizeOrder() {
	if s.orderFinalized {
		return
	}
	for v := 0; v < s.numVars; v++ {
		if !s.seen[v] {
			s.seen[v] = true
			s.order.SetPriority(Variable(v), s.nextPriority)
			s.nextPriority++
		}
	}
	s.orderFinalized = true
}

// unwindToLevelZero undoes every open decision, leaving only the level-0
// facts asserted by AddClause and propagation. Called at the start of every
// Solve, so a Solver can be reused across multiple Solve calls.
func (s *Solver) unwindToLevelZero() {
	for s.trail.level() > 0 {
		lvl := len(s.trail.boundaries) - 1
		boundary := s.trail.boundaries[lvl]
		for len(s.trail.entries) > boundary {
			e := s.trail.undoLast()
			s.order.Reinsert(e.lit.Var())
		}
		s.trail.boundaries = s.trail.boundaries[:lvl]
	}
}

// backtrack implements chronological DPLL backtracking with polarity
// flipping: the deepest open decision is tried with its opposite polarity
// before any level above it is touched. A decision whose both polarities
// have now failed is abandoned (its variable returns to the pool of
// candidate decisions) and backtrack continues one level higher. It returns
// false once level 0 is reached with nothing left to flip, meaning the
// instance is unsatisfiable.
func (s *Solver) backtrack() bool {
	for s.trail.level() > 0 {
		lvl := len(s.trail.boundaries) - 1
		boundary := s.trail.boundaries[lvl]

		for len(s.trail.entries) > boundary+1 {
			e := s.trail.undoLast()
			s.order.Reinsert(e.lit.Var())
		}
		decision := s.trail.undoLast()

		if !decision.tried {
			// The variable was just undone above, so it is unassigned and this
			// enqueue cannot fail; it must go through enqueue (not a direct
			// trail.assign) so the flipped literal is pushed onto the
			// propagation queue and its consequences actually get computed.
			s.enqueue(decision.lit.Negate(), true)
			s.trail.entries[len(s.trail.entries)-1].tried = true
			return true
		}

		s.order.Reinsert(decision.lit.Var())
		s.trail.boundaries = s.trail.boundaries[:lvl]
	}
	return false
}

// extractModel reads off the current total assignment. Callers only reach
// this once every variable is assigned (NextDecision returns ok=false).
func (s *Solver) extractModel() []bool {
	model := make([]bool, s.numVars)
	for v := 0; v < s.numVars; v++ {
		model[v] = s.trail.valueOf(Variable(v)) == True
	}
	return model
}

// Solve runs the search to completion and reports whether the problem is
// satisfiable. It may be called again on the same Solver, for example after
// AddClause has added a blocking clause to rule out a just-found model.
func (s *Solver) Solve() Result {
	s.stats = Statistics{}
	s.finalizeOrder()
	s.unwindToLevelZero()

	if s.unsat {
		return Result{Satisfiable: false}
	}

	// Propagate from every level-0 fact again, so that clauses added since
	// the previous Solve are checked against the root assignment.
	s.queue.Clear()
	for _, e := range s.trail.entries {
		s.queue.Push(e.lit)
	}

	for {
		if s.propagateUnits() {
			if !s.backtrack() {
				s.unsat = true
				return Result{Satisfiable: false}
			}
			continue
		}

		lit, ok := s.order.NextDecision(s.trail.valueOf)
		if !ok {
			return Result{Satisfiable: true, Model: s.extractModel()}
		}

		s.stats.Decisions++
		s.trail.openLevel()
		if !s.enqueue(lit, true) {
			panic("sat: heuristic picked an already-assigned variable as the next decision")
		}
	}
}
