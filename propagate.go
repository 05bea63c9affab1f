package saturday

// Propagate assumes seed, then drives forced assignments to fixpoint: any
// clause left with exactly one unassigned literal forces that literal,
// which is enqueued and assumed in turn. It reports false the moment a
// conflict is found — either Assume itself conflicts, or a clause becomes
// unsatisfiable under the updated trail. On conflict, the trail retains
// whatever was assumed before the conflict; rolling back is the caller's
// responsibility.
//
// Clauses are rescanned in order on every worklist pop, so the same clause
// may yield its unit literal more than once; Assume and the conflict check
// both tolerate that without any extra bookkeeping here.
func Propagate(clauses []*Clause, seed Literal, trail *Trail) bool {
	worklist := []Literal{seed}
	for len(worklist) > 0 {
		l := worklist[0]
		worklist = worklist[1:]

		if !trail.Assume(l) {
			return false
		}

		for _, c := range clauses {
			if c.IsUnsatisfiable(trail) {
				return false
			}
			if u, ok := c.GetUnit(trail); ok {
				worklist = append(worklist, u)
			}
		}
	}
	return true
}
