// Package dimacs loads DIMACS CNF files into a sat.Solver.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/rhartert/satir/sat"
)

// Load parses the DIMACS CNF file at filename and registers its variables
// and clauses on solver. gzipped selects a gzip-wrapped reader, for files
// named e.g. "*.cnf.gz".
func Load(filename string, gzipped bool, solver *sat.Solver) error {
	r, err := open(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	defer r.Close()

	b := &builder{solver: solver}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	return nil
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", filename, err)
	}
	rc := io.ReadCloser(f)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("ungzipping %q: %w", filename, err)
		}
	}
	return rc, nil
}

// builder implements dimacs.Builder, feeding the parse events straight
// through to a sat.Solver. DIMACS literals are 1-based with sign encoding
// polarity; solver literals are 0-based dense variables, so the translation
// is a shift by one in addition to the sign-to-polarity conversion.
type builder struct {
	solver *sat.Solver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported problem type %q, want \"cnf\"", problem)
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmp []int) error {
	lits := make([]sat.Literal, len(tmp))
	for i, l := range tmp {
		if l < 0 {
			lits[i] = sat.NegativeLiteral(sat.Variable(-l - 1))
		} else {
			lits[i] = sat.PositiveLiteral(sat.Variable(l - 1))
		}
	}
	b.solver.AddClause(lits)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil
}
