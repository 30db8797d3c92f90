package reduce

import (
	"fmt"

	"github.com/icalc/icalc/term"
)

// substVar replaces every Var(x) occurrence in t with v. The traversal
// stops at a Lam binding the same name (shadowing); DP0/DP1 occurrences
// are never targets. Terms are immutable and never mutated after
// construction, so substitution shares v's subtree at each occurrence
// rather than deep-copying it — the reference-counted optimisation the
// term model's design notes call out, taken as the default rather than a
// fallback.
func substVar(t term.Term, x string, v term.Term) term.Term {
	switch n := t.(type) {
	case term.Num:
		return n
	case term.Var:
		if n.X == x {
			return v
		}
		return n
	case term.DP0:
		return n
	case term.DP1:
		return n
	case *term.Lam:
		if n.X == x {
			return n
		}
		return &term.Lam{X: n.X, Body: substVar(n.Body, x, v)}
	case *term.App:
		return &term.App{Fun: substVar(n.Fun, x, v), Arg: substVar(n.Arg, x, v)}
	case *term.Sup:
		return &term.Sup{Label: n.Label, A: substVar(n.A, x, v), B: substVar(n.B, x, v)}
	case *term.Dup:
		return &term.Dup{X: n.X, Label: n.Label, Val: substVar(n.Val, x, v), Body: substVar(n.Body, x, v)}
	case term.Era:
		return n
	case *term.Op2:
		return &term.Op2{Op: n.Op, Left: substVar(n.Left, x, v), Right: substVar(n.Right, x, v)}
	case *term.Pair:
		return &term.Pair{First: substVar(n.First, x, v), Second: substVar(n.Second, x, v)}
	default:
		panic(fmt.Sprintf("reduce: substVar: unhandled variant %T", t))
	}
}

// substProj replaces every DP0(x) occurrence in t with v0 and every
// DP1(x) occurrence with v1. Var occurrences, even of x itself, are never
// targets.
func substProj(t term.Term, x string, v0, v1 term.Term) term.Term {
	switch n := t.(type) {
	case term.Num:
		return n
	case term.Var:
		return n
	case term.DP0:
		if n.X == x {
			return v0
		}
		return n
	case term.DP1:
		if n.X == x {
			return v1
		}
		return n
	case *term.Lam:
		return &term.Lam{X: n.X, Body: substProj(n.Body, x, v0, v1)}
	case *term.App:
		return &term.App{Fun: substProj(n.Fun, x, v0, v1), Arg: substProj(n.Arg, x, v0, v1)}
	case *term.Sup:
		return &term.Sup{Label: n.Label, A: substProj(n.A, x, v0, v1), B: substProj(n.B, x, v0, v1)}
	case *term.Dup:
		return &term.Dup{X: n.X, Label: n.Label, Val: substProj(n.Val, x, v0, v1), Body: substProj(n.Body, x, v0, v1)}
	case term.Era:
		return n
	case *term.Op2:
		return &term.Op2{Op: n.Op, Left: substProj(n.Left, x, v0, v1), Right: substProj(n.Right, x, v0, v1)}
	case *term.Pair:
		return &term.Pair{First: substProj(n.First, x, v0, v1), Second: substProj(n.Second, x, v0, v1)}
	default:
		panic(fmt.Sprintf("reduce: substProj: unhandled variant %T", t))
	}
}
