package sat

import "strings"

// ClauseID is a dense index into the ClauseStore, equal to the clause's
// storage position. It is the only handle other components (the watchlist,
// the propagation engine) keep to a clause; nothing outside ClauseStore
// holds a pointer to a Clause's body.
type ClauseID int

// Clause is a disjunction of at least two literals. The first two positions
// (Lit(0) and Lit(1)) are the watched literals; reordering
// them is the fundamental operation of watch movement and is only ever done
// from within the propagation engine.
type Clause struct {
	id       ClauseID
	literals []Literal
	activity float64
}

// ID returns the clause's dense identifier, equal to its position in the
// owning ClauseStore.
func (c *Clause) ID() ClauseID {
	return c.id
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.literals)
}

// Lit returns the literal at position i. Positions 0 and 1 are the watched
// literals.
func (c *Clause) Lit(i int) Literal {
	return c.literals[i]
}

// swapWatch exchanges the literals at position 1 and j, the operation that
// moves a watch from one literal to another. j must be >= 2.
func (c *Clause) swapWatch(j int) {
	c.literals[1], c.literals[j] = c.literals[j], c.literals[1]
}

// swapToFront exchanges the literals at positions 0 and 1.
func (c *Clause) swapToFront() {
	c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ClauseStore owns every clause body for the lifetime of a solve. Clauses
// are interned once and never freed: ClauseStore.Intern rejects clauses
// with fewer than two literals (see Solver.AddClause, which handles unit
// and empty clauses before a ClauseStore ever sees them).
type ClauseStore struct {
	clauses []*Clause
}

// Intern stores a copy of lits as a new clause and returns its ID. lits must
// contain at least two literals; ClauseStore does not perform unit/empty
// handling itself (that is preprocessing's job, see Solver.AddClause).
func (cs *ClauseStore) Intern(lits []Literal) *Clause {
	if len(lits) < 2 {
		panic("sat: clause store cannot intern a clause with fewer than two literals")
	}
	c := &Clause{
		id:       ClauseID(len(cs.clauses)),
		literals: append([]Literal(nil), lits...),
	}
	cs.clauses = append(cs.clauses, c)
	return c
}

// Get returns the clause stored at id.
func (cs *ClauseStore) Get(id ClauseID) *Clause {
	return cs.clauses[id]
}

// Len returns the number of interned clauses.
func (cs *ClauseStore) Len() int {
	return len(cs.clauses)
}
