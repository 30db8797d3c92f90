// Package reduce implements the interaction calculus rewrite engine: the
// substitution kernel plus the small-step rule system of APP, OP2, and
// DUP redexes, driven to a fixpoint by Reducer.Normalise.
package reduce

import (
	"fmt"

	"github.com/icalc/icalc/term"
)

// DefaultBound is the number of successor attempts Normalise will make
// before giving up and returning the current best-effort term. It exists
// to keep non-terminating inputs from hanging the caller; it is not an
// error condition.
const DefaultBound = 10000

// Reducer owns the fresh-name counter and step budget for one
// normalisation. It is not safe for concurrent use, but two Reducers
// operating on independent terms never interact.
type Reducer struct {
	counter   int
	steps     int
	bound     int
	exhausted bool

	// Trace, if set, is called with the result of every successor
	// attempt Normalise makes. It exists for the CLI's step-by-step
	// debug trace and has no effect on the reduction itself.
	Trace func(step int, t term.Term)
}

// New returns a Reducer with the default safety bound.
func New() *Reducer {
	return &Reducer{bound: DefaultBound}
}

// NewWithBound returns a Reducer whose safety bound is the given number
// of successor attempts rather than DefaultBound.
func NewWithBound(bound int) *Reducer {
	return &Reducer{bound: bound}
}

// Steps reports how many successor attempts the last Normalise call made.
func (r *Reducer) Steps() int { return r.steps }

// Exhausted reports whether the last Normalise call hit the safety bound
// before reaching a fixpoint.
func (r *Reducer) Exhausted() bool { return r.exhausted }

func (r *Reducer) fresh() string {
	r.counter++
	return fmt.Sprintf("$v%d", r.counter)
}

// Normalise reduces t to normal form by repeatedly applying one full pass
// of the rule system and comparing the result to the previous term. It
// returns the current term unchanged, with Exhausted set, if the safety
// bound is reached first.
func (r *Reducer) Normalise(t term.Term) term.Term {
	r.steps = 0
	r.exhausted = false
	cur := t
	for i := 0; i < r.bound; i++ {
		next := r.reduceOnce(cur)
		r.steps++
		if r.Trace != nil {
			r.Trace(r.steps, next)
		}
		if equalTerm(next, cur) {
			return next
		}
		cur = next
	}
	r.exhausted = true
	return cur
}

// Normalise is a convenience entry point for callers that don't need the
// step count: it allocates a Reducer with the default bound and returns
// the normal form.
func Normalise(t term.Term) term.Term {
	return New().Normalise(t)
}

// reduceOnce performs one full top-down pass over t, contracting every
// redex it finds in a head-first order: a position is driven to a head
// shape before the rule table is consulted, and already-reduced value
// positions recurse into their immediate subterms. Repeated calls
// converge to a fixpoint, which Normalise treats as the result.
func (r *Reducer) reduceOnce(t term.Term) term.Term {
	switch n := t.(type) {
	case term.Num:
		return n
	case term.Var:
		return n
	case term.DP0:
		return n
	case term.DP1:
		return n
	case term.Era:
		return n
	case *term.Lam:
		return &term.Lam{X: n.X, Body: r.reduceOnce(n.Body)}
	case *term.Pair:
		return &term.Pair{First: r.reduceOnce(n.First), Second: r.reduceOnce(n.Second)}
	case *term.Sup:
		return &term.Sup{Label: n.Label, A: r.reduceOnce(n.A), B: r.reduceOnce(n.B)}
	case *term.App:
		return r.reduceApp(n)
	case *term.Op2:
		return r.reduceOp2(n)
	case *term.Dup:
		return r.reduceDup(n)
	default:
		panic(fmt.Sprintf("reduce: unhandled variant %T", t))
	}
}

func (r *Reducer) reduceApp(n *term.App) term.Term {
	fun := r.reduceOnce(n.Fun)
	switch f := fun.(type) {
	case *term.Lam:
		// APP-LAM
		return substVar(f.Body, f.X, n.Arg)
	case term.Era:
		// APP-ERA
		return term.Era{}
	case *term.Sup:
		// APP-SUP
		y := r.fresh()
		return &term.Dup{
			X: y, Label: f.Label, Val: n.Arg,
			Body: &term.Sup{
				Label: f.Label,
				A:     &term.App{Fun: f.A, Arg: term.DP0{X: y}},
				B:     &term.App{Fun: f.B, Arg: term.DP1{X: y}},
			},
		}
	default:
		return &term.App{Fun: fun, Arg: r.reduceOnce(n.Arg)}
	}
}

func (r *Reducer) reduceOp2(n *term.Op2) term.Term {
	left := r.reduceOnce(n.Left)
	right := r.reduceOnce(n.Right)

	if _, ok := left.(term.Era); ok {
		// OP2-ERA-L
		return term.Era{}
	}
	if sup, ok := left.(*term.Sup); ok {
		// OP2-SUP-L
		y := r.fresh()
		return &term.Dup{
			X: y, Label: sup.Label, Val: right,
			Body: &term.Sup{
				Label: sup.Label,
				A:     &term.Op2{Op: n.Op, Left: sup.A, Right: term.DP0{X: y}},
				B:     &term.Op2{Op: n.Op, Left: sup.B, Right: term.DP1{X: y}},
			},
		}
	}
	if _, ok := right.(term.Era); ok {
		// OP2-ERA-R
		return term.Era{}
	}
	if sup, ok := right.(*term.Sup); ok {
		// OP2-SUP-R
		return &term.Sup{
			Label: sup.Label,
			A:     &term.Op2{Op: n.Op, Left: left, Right: sup.A},
			B:     &term.Op2{Op: n.Op, Left: left, Right: sup.B},
		}
	}
	if ln, ok := left.(term.Num); ok {
		if rn, ok := right.(term.Num); ok {
			// OP2-NUM
			return term.Num{V: applyOp(n.Op, ln.V, rn.V)}
		}
	}
	return &term.Op2{Op: n.Op, Left: left, Right: right}
}

// applyOp implements the four arithmetic operators. Division truncates
// toward zero, matching Go's native integer division, and division by
// zero yields 0 rather than failing.
func applyOp(op term.Op, a, b int64) int64 {
	switch op {
	case term.Add:
		return a + b
	case term.Sub:
		return a - b
	case term.Mul:
		return a * b
	case term.Div:
		if b == 0 {
			return 0
		}
		return a / b
	default:
		panic(fmt.Sprintf("reduce: unhandled operator %v", op))
	}
}

func (r *Reducer) reduceDup(n *term.Dup) term.Term {
	// DUP-UNUSED takes priority over reducing the value: a value that
	// never terminates must not be forced just because it is discarded.
	if !term.MentionsEitherProjection(n.Body, n.X) {
		return r.reduceOnce(n.Body)
	}

	val := r.reduceOnce(n.Val)
	switch v := val.(type) {
	case term.Num:
		// DUP-NUM
		return r.reduceOnce(substProj(n.Body, n.X, v, v))
	case term.Era:
		// DUP-ERA
		return r.reduceOnce(substProj(n.Body, n.X, term.Era{}, term.Era{}))
	case *term.Sup:
		if v.Label == n.Label {
			// DUP-SUP, same label: annihilation
			return r.reduceOnce(substProj(n.Body, n.X, v.A, v.B))
		}
		// DUP-SUP, other label: commutation
		aPrime := r.fresh()
		bPrime := r.fresh()
		newBody := substProj(n.Body, n.X,
			&term.Sup{Label: v.Label, A: term.DP0{X: aPrime}, B: term.DP0{X: bPrime}},
			&term.Sup{Label: v.Label, A: term.DP1{X: aPrime}, B: term.DP1{X: bPrime}},
		)
		return r.reduceOnce(&term.Dup{
			X: aPrime, Label: n.Label, Val: v.A,
			Body: &term.Dup{X: bPrime, Label: n.Label, Val: v.B, Body: newBody},
		})
	case *term.Lam:
		// DUP-LAM
		y0 := r.fresh()
		y1 := r.fresh()
		z := r.fresh()
		newM := substVar(v.Body, v.X, &term.Sup{Label: n.Label, A: term.Var{X: y0}, B: term.Var{X: y1}})
		newBody := substProj(n.Body, n.X,
			&term.Lam{X: y0, Body: term.DP0{X: z}},
			&term.Lam{X: y1, Body: term.DP1{X: z}},
		)
		return r.reduceOnce(&term.Dup{X: z, Label: n.Label, Val: newM, Body: newBody})
	case *term.Pair:
		// DUP-PAIR
		aPrime := r.fresh()
		bPrime := r.fresh()
		newBody := substProj(n.Body, n.X,
			&term.Pair{First: term.DP0{X: aPrime}, Second: term.DP0{X: bPrime}},
			&term.Pair{First: term.DP1{X: aPrime}, Second: term.DP1{X: bPrime}},
		)
		return r.reduceOnce(&term.Dup{
			X: aPrime, Label: n.Label, Val: v.First,
			Body: &term.Dup{X: bPrime, Label: n.Label, Val: v.Second, Body: newBody},
		})
	default:
		// No head rule fires for the value's current shape (e.g. an
		// App/Op2/Dup head blocked on a free variable): the dup is kept
		// with the once-reduced value, and its body, which may still have
		// redexes, is reduced as well.
		return &term.Dup{X: n.X, Label: n.Label, Val: val, Body: r.reduceOnce(n.Body)}
	}
}

// equalTerm is a cheap structural equality check used as the driver's
// fixpoint test; it substitutes for comparing pretty-printed output.
func equalTerm(a, b term.Term) bool {
	switch x := a.(type) {
	case term.Num:
		y, ok := b.(term.Num)
		return ok && x.V == y.V
	case term.Var:
		y, ok := b.(term.Var)
		return ok && x.X == y.X
	case term.DP0:
		y, ok := b.(term.DP0)
		return ok && x.X == y.X
	case term.DP1:
		y, ok := b.(term.DP1)
		return ok && x.X == y.X
	case term.Era:
		_, ok := b.(term.Era)
		return ok
	case *term.Lam:
		y, ok := b.(*term.Lam)
		return ok && x.X == y.X && equalTerm(x.Body, y.Body)
	case *term.App:
		y, ok := b.(*term.App)
		return ok && equalTerm(x.Fun, y.Fun) && equalTerm(x.Arg, y.Arg)
	case *term.Sup:
		y, ok := b.(*term.Sup)
		return ok && x.Label == y.Label && equalTerm(x.A, y.A) && equalTerm(x.B, y.B)
	case *term.Dup:
		y, ok := b.(*term.Dup)
		return ok && x.X == y.X && x.Label == y.Label && equalTerm(x.Val, y.Val) && equalTerm(x.Body, y.Body)
	case *term.Op2:
		y, ok := b.(*term.Op2)
		return ok && x.Op == y.Op && equalTerm(x.Left, y.Left) && equalTerm(x.Right, y.Right)
	case *term.Pair:
		y, ok := b.(*term.Pair)
		return ok && equalTerm(x.First, y.First) && equalTerm(x.Second, y.Second)
	default:
		return false
	}
}
