package saturday

// Assumption is the tri-state value a Trail holds for a variable.
type Assumption struct {
	known bool
	value bool
}

// Unknown is the Assumption reported for a variable the trail has not
// bound.
var Unknown = Assumption{}

// Assumed reports the assumption that a variable has been bound to b.
func Assumed(b bool) Assumption { return Assumption{known: true, value: b} }

// Known reports whether a is Assumed(true) or Assumed(false), as opposed to
// Unknown.
func (a Assumption) Known() bool { return a.known }

// Bool returns the bound value. It must only be called when a.Known().
func (a Assumption) Bool() bool { return a.value }

func (a Assumption) String() string {
	if !a.known {
		return "unknown"
	}
	if a.value {
		return "true"
	}
	return "false"
}

// Trail (the AssumptionStore of the design) is the ordered, checkpointable
// log of literal assumptions the solver has committed to during search.
//
// assumptions is the source of truth; bound is a per-variable cache that
// makes GetVar/GetLit O(1) instead of an O(len(assumptions)) backward scan.
// The cache is rebuilt incrementally as assumptions are appended and is
// repaired on rollback by replaying the surviving prefix, so assumptions
// never needs an out-of-band undo log of its own.
type Trail struct {
	assumptions []Literal
	boundaries  []int
	bound       map[Variable]Assumption
}

// NewTrail returns an empty trail.
func NewTrail() *Trail {
	return &Trail{bound: make(map[Variable]Assumption)}
}

// GetVar returns the assumption currently bound to v, or Unknown.
func (t *Trail) GetVar(v Variable) Assumption {
	if a, ok := t.bound[v]; ok {
		return a
	}
	return Unknown
}

// GetLit returns Unknown if l's variable is unbound; otherwise Assumed(true)
// if the trail's polarity for the variable matches l's, else Assumed(false).
func (t *Trail) GetLit(l Literal) Assumption {
	a := t.GetVar(l.Variable())
	if !a.known {
		return Unknown
	}
	return Assumed(a.value == l.Polarity())
}

// Assume appends l to the trail. It reports false without modifying the
// trail if l's variable is already bound to the opposite polarity. If the
// variable is already bound to the same polarity, l is appended anyway
// (see spec note on duplicate assumptions); callers must not depend on
// trail length equaling the number of distinct assumed variables.
func (t *Trail) Assume(l Literal) bool {
	if a := t.GetVar(l.Variable()); a.known && a.value != l.Polarity() {
		return false
	}
	t.assumptions = append(t.assumptions, l)
	t.bound[l.Variable()] = Assumed(l.Polarity())
	return true
}

// NewInference pushes a checkpoint at the current trail length.
func (t *Trail) NewInference() {
	t.boundaries = append(t.boundaries, len(t.assumptions))
}

// RollbackInference pops the most recent checkpoint and discards every
// assumption appended since. Calling it with no open checkpoint is a
// programmer error.
func (t *Trail) RollbackInference() {
	n := len(t.boundaries)
	if n == 0 {
		panic("saturday: rollback_inference called with no matching new_inference")
	}
	k := t.boundaries[n-1]
	t.boundaries = t.boundaries[:n-1]
	discarded := t.assumptions[k:]
	t.assumptions = t.assumptions[:k]

	// Repair the direct-lookup cache. A discarded variable may still be
	// bound by an earlier, surviving entry (duplicate assumes, or the same
	// variable assumed twice consistently); recompute from the surviving
	// prefix for every variable that appears in the discarded suffix.
	dirty := make(map[Variable]struct{}, len(discarded))
	for _, l := range discarded {
		dirty[l.Variable()] = struct{}{}
	}
	for v := range dirty {
		delete(t.bound, v)
	}
	for _, l := range t.assumptions {
		if _, ok := dirty[l.Variable()]; ok {
			t.bound[l.Variable()] = Assumed(l.Polarity())
		}
	}
}

// GetSolution returns the trail's assumptions as-is. Callers should only
// treat this as a solution once the driver has concluded SATISFIABLE.
func (t *Trail) GetSolution() []Literal {
	return t.assumptions
}
