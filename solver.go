// Package saturday implements a DPLL SAT solver: chronological
// backtracking search over a transactional assumption trail, combined with
// unit propagation and pure-literal elimination.
package saturday

import "sort"

func sortVariables(vs []Variable) {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
}

// variableSet returns every variable mentioned by clauses, in ascending
// order, for deterministic traversal during variable selection.
func variableSet(clauses []*Clause) []Variable {
	seen := make(map[Variable]struct{})
	var vars []Variable
	for _, c := range clauses {
		for _, l := range c.Literals() {
			if _, ok := seen[l.Variable()]; !ok {
				seen[l.Variable()] = struct{}{}
				vars = append(vars, l.Variable())
			}
		}
	}
	sortVariables(vars)
	return vars
}

// Satisfiable decides whether clauses is satisfiable. On success it
// returns the satisfying trail and true; on failure it returns (nil,
// false).
//
// The search is classical DPLL with chronological backtracking: at each
// decision it tries the positive literal, then (on conflict) the negative
// literal, then (on a second conflict) reports failure to its caller. Since
// each decision recurses into the next one through an ordinary Go call,
// a conflict several decisions deep naturally unwinds back through every
// enclosing frame, retrying each one's untried polarity in turn, rather
// than giving up the entire search the first time both polarities fail at
// a single level.
func Satisfiable(clauses []*Clause) ([]Literal, bool) {
	vars := variableSet(clauses)
	trail := NewTrail()
	if !search(clauses, vars, trail) {
		return nil, false
	}
	return trail.GetSolution(), true
}

// search drives one decision level: it finds the next unassigned variable
// (if any), guesses both polarities in turn, and recurses into the next
// level on success. It returns false only when every avenue from this
// level down has been exhausted.
func search(clauses []*Clause, vars []Variable, trail *Trail) bool {
	if allSatisfied(clauses, trail) {
		return true
	}
	if anyUnsatisfiable(clauses, trail) {
		return false
	}

	v, ok := nextUnassigned(vars, trail)
	if !ok {
		return true
	}

	if makeGuess(NewLiteral(v, true), clauses, trail) {
		if search(clauses, vars, trail) {
			return true
		}
		// Deeper search exhausted both polarities at some later level;
		// undo this level's positive guess and try negative.
		trail.RollbackInference()
	}

	if makeGuess(NewLiteral(v, false), clauses, trail) {
		if search(clauses, vars, trail) {
			return true
		}
		trail.RollbackInference()
	}

	return false
}

func allSatisfied(clauses []*Clause, trail *Trail) bool {
	for _, c := range clauses {
		if !c.IsSatisfied(trail) {
			return false
		}
	}
	return true
}

func anyUnsatisfiable(clauses []*Clause, trail *Trail) bool {
	for _, c := range clauses {
		if c.IsUnsatisfiable(trail) {
			return true
		}
	}
	return false
}

func nextUnassigned(vars []Variable, trail *Trail) (Variable, bool) {
	for _, v := range vars {
		if !trail.GetVar(v).Known() {
			return v, true
		}
	}
	return 0, false
}

// makeGuess opens a checkpoint, propagates lit, and on success runs
// pure-literal elimination. It reports whether the guess survived; on
// failure the checkpoint has already been rolled back.
func makeGuess(lit Literal, clauses []*Clause, trail *Trail) bool {
	trail.NewInference()
	if !Propagate(clauses, lit, trail) {
		trail.RollbackInference()
		return false
	}
	Eliminate(clauses, trail)
	return true
}
