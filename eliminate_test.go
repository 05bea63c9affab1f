package saturday

import "testing"

func TestEliminatePureLiterals(t *testing.T) {
	// x appears only positively, y appears both ways.
	clauses := []*Clause{clauseOf(1, 2), clauseOf(1, -2)}
	trail := NewTrail()

	Eliminate(clauses, trail)

	if a := trail.GetLit(lit(1)); !a.Known() || !a.Bool() {
		t.Errorf("pure literal 1 should have been assumed true, got %v", a)
	}
	if trail.GetLit(lit(2)).Known() {
		t.Error("2 is not pure and should remain unassigned")
	}
}

func TestEliminateSkipsSatisfiedClauses(t *testing.T) {
	// Once clause 0 is satisfied by assuming 1, clause 1's occurrence of 2
	// is the only one left to consider and 2 becomes pure.
	clauses := []*Clause{clauseOf(1, -2), clauseOf(2, 3)}
	trail := NewTrail()
	trail.Assume(lit(1))

	Eliminate(clauses, trail)

	if a := trail.GetLit(lit(2)); !a.Known() || !a.Bool() {
		t.Errorf("2 should be pure once clause 0 is already satisfied, got %v", a)
	}
}

func TestEliminateNoPureLiterals(t *testing.T) {
	clauses := []*Clause{clauseOf(1, 2), clauseOf(-1, -2)}
	trail := NewTrail()

	Eliminate(clauses, trail)

	if trail.GetLit(lit(1)).Known() || trail.GetLit(lit(2)).Known() {
		t.Error("neither variable is pure; elimination must leave the trail untouched")
	}
}

func TestEliminateIgnoresAssignedVariables(t *testing.T) {
	clauses := []*Clause{clauseOf(1, -2), clauseOf(-1, 2)}
	trail := NewTrail()
	trail.Assume(lit(1))
	trail.Assume(lit(-2))

	// Clause 0 is satisfied; clause 1 is not, but both of its literals are
	// already assigned, so elimination has nothing to add.
	Eliminate(clauses, trail)

	if len(trail.GetSolution()) != 2 {
		t.Errorf("elimination should not have added assumptions, got %v", trail.GetSolution())
	}
}
