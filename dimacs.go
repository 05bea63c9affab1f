package saturday

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseDIMACS parses text in the DIMACS CNF format.
//
// For convenience, a few non-standard variations are accepted, matching
// real-world DIMACS files in the wild:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in
//     the preamble.
//   - A trailing '%' line, as emitted by some generators, ends the clause
//     section; anything after it is ignored.
//   - A final clause missing its terminating 0 is accepted, as long as it
//     is the only clause short of the declared count.
func ParseDIMACS(r io.Reader) ([]*Clause, error) {
	var nClauses int
	var haveProblem bool
	var clauses []*Clause
	var current *Clause

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.ToLower(s.Text())
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if len(clauses) > 0 {
				return nil, errors.New("problem line appears after clauses")
			}
			if haveProblem {
				return nil, errors.New("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, errors.Errorf("malformed problem line %q", line)
			}
			if _, err := strconv.Atoi(fields[2]); err != nil {
				return nil, errors.Wrap(err, "malformed #vars in problem line")
			}
			n, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, errors.Wrap(err, "malformed #clauses in problem line")
			}
			if n < 0 {
				return nil, errors.Errorf("invalid #clauses %d", n)
			}
			nClauses = n
			haveProblem = true
			continue
		}

		for _, c := range line {
			if !(c >= '0' && c <= '9') && c != '-' && !isSpace(c) {
				return nil, errors.Errorf("invalid character %q in clause line %q", c, line)
			}
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrap(err, "invalid literal")
			}
			if n == 0 {
				if current == nil {
					current = NewClause()
				}
				clauses = append(clauses, current)
				current = nil
				continue
			}
			lit, _ := LiteralFromDIMACS(int32(n))
			if current == nil {
				current = NewClause()
			}
			current.AddLiteral(lit)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	if current != nil {
		clauses = append(clauses, current)
	}

	if haveProblem && len(clauses) != nClauses {
		return nil, errors.Errorf("problem line specifies %d clauses, but there are %d", nClauses, len(clauses))
	}

	return clauses, nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// Result is the outcome of a solve, ready to be printed in DIMACS form:
// either no satisfying assignment exists, or Literals holds one.
type Result struct {
	SAT      bool
	Literals []Literal
}

// WriteDIMACS writes res in the conventional DIMACS solution format:
// "s UNSATISFIABLE", or "s SATISFIABLE" followed by a "v ... 0" line
// listing the satisfying literals.
func WriteDIMACS(w io.Writer, res *Result) error {
	if !res.SAT {
		_, err := fmt.Fprintln(w, "s UNSATISFIABLE")
		return err
	}
	if _, err := fmt.Fprintln(w, "s SATISFIABLE"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "v "); err != nil {
		return err
	}
	for _, l := range res.Literals {
		if _, err := fmt.Fprintf(w, "%d ", l.DIMACS()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "0")
	return err
}
