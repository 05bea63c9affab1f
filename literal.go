package saturday

import "fmt"

// A Variable is a dense, positive identifier for a propositional variable.
// Variable 0 is never valid; it is reserved by the DIMACS format to mean
// end-of-clause.
type Variable uint32

// A Literal is a variable together with a polarity: the variable itself
// (positive) or its negation (negative).
type Literal struct {
	v        Variable
	polarity bool
}

// NewLiteral returns the literal for v under the given polarity.
func NewLiteral(v Variable, polarity bool) Literal {
	return Literal{v: v, polarity: polarity}
}

// Variable returns the variable l refers to.
func (l Literal) Variable() Variable { return l.v }

// Polarity reports whether l is the positive (unnegated) form of its variable.
func (l Literal) Polarity() bool { return l.polarity }

// Negate returns the literal for the same variable with the opposite polarity.
func (l Literal) Negate() Literal {
	return Literal{v: l.v, polarity: !l.polarity}
}

func (l Literal) String() string {
	if l.polarity {
		return fmt.Sprintf("%d", l.v)
	}
	return fmt.Sprintf("-%d", l.v)
}

// LiteralFromDIMACS converts a signed DIMACS literal (as found in a clause
// body) into a Literal. It reports false for 0, which DIMACS reserves for
// end-of-clause, and is therefore not a valid literal.
func LiteralFromDIMACS(n int32) (Literal, bool) {
	if n == 0 {
		return Literal{}, false
	}
	if n < 0 {
		return Literal{v: Variable(-n), polarity: false}, true
	}
	return Literal{v: Variable(n), polarity: true}, true
}

// DIMACS returns the signed DIMACS integer for l.
func (l Literal) DIMACS() int32 {
	n := int32(l.v)
	if !l.polarity {
		n = -n
	}
	return n
}
