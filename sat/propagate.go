package sat

// enqueue asserts literal l, recording whether the assertion is a decision
// (opens a new decision level, no forcing clause) or a propagation
// consequence. It implements the enqueue contract of spec §4.5:
//
//   - if var(l) is unassigned: assign it, append to the trail, enqueue l for
//     propagation, return true (no-conflict).
//   - else if l already evaluates true: return true (idempotent, no state
//     mutated).
//   - else: return false (conflict); no state is mutated.
func (s *Solver) enqueue(l Literal, decision bool) bool {
	cur := s.trail.valueOf(l.Var())
	if cur == Unassigned {
		s.trail.assign(l, decision)
		s.queue.Push(l)
		return true
	}
	return ValueUnder(l, cur) == True
}

// propagateUnits repeatedly pops a literal from the propagation queue and
// walks the clauses watching its negation, applying the watch-move protocol
// of spec §4.5 to each. A clause watching literal W is registered under key
// W.Negate(), so the clauses watching negL = l.Negate() (the literal just
// falsified by asserting l) are found at watchlist[l]. It returns true if a
// conflict was found, in which case the propagation queue has already been
// drained and Statistics.Conflicts has been incremented.
func (s *Solver) propagateUnits() bool {
	for s.queue.Size() > 0 {
		l := s.queue.Pop()
		negL := l.Negate()

		// Move the watcher set out before iterating: watches that move land
		// under a different key and watches that stay put are re-inserted
		// individually, so nothing is ever iterated while being mutated.
		watchers := s.watchlist.take(l)

		for i, id := range watchers {
			c := s.store.Get(id)

			// 1. Normalize: the falsified watch must end up at position 1.
			if c.Lit(1) != negL {
				c.swapToFront()
			}

			// 2. Short-circuit if the other watch already satisfies the clause.
			if s.trail.litValue(c.Lit(0)) == True {
				s.watchlist.Insert(l, id)
				continue
			}

			// 3. Search for a new literal to watch among positions 2..len-1.
			moved := false
			for j := 2; j < c.Len(); j++ {
				if s.trail.litValue(c.Lit(j)) != False {
					c.swapWatch(j)
					s.watchlist.Insert(c.Lit(1).Negate(), id)
					moved = true
					break
				}
			}
			if moved {
				continue
			}

			// 4. No replacement watch exists: the clause is unit, with
			// c.Lit(0) its only non-false literal. The watch on negL stays put
			// regardless, so its key-l registration is restored before
			// enqueuing the consequence.
			s.watchlist.Insert(l, id)
			if s.enqueue(c.Lit(0), false) {
				s.stats.Propagations++
				continue
			}

			// Conflict: restore the watches of every watcher not yet visited,
			// drop the queue, and report.
			for _, rem := range watchers[i+1:] {
				s.watchlist.Insert(l, rem)
			}
			s.queue.Clear()
			s.stats.Conflicts++
			return true
		}
	}
	return false
}
