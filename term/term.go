// Package term defines the algebraic term model of the interaction
// calculus: integers, variables, duplication projections, abstractions,
// applications, superpositions, duplications, erasure, arithmetic, and
// pairs.
//
// Terms are immutable trees. Reduction never mutates a term in place; it
// builds a new one from the pieces of the old.
package term

import (
	"fmt"
	"strconv"
)

// DefaultLabel is the label superpositions and duplications carry when the
// surface syntax omits one.
const DefaultLabel = "L"

// Op identifies a binary arithmetic operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
)

func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

// Term is the common interface implemented by every term variant. Variants
// are matched exhaustively by the substitution kernel and the reducer;
// there is no dynamic dispatch on the hot path beyond the type switch.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Num is an integer literal.
type Num struct {
	V int64
}

// Var is an ordinary, linear variable occurrence.
type Var struct {
	X string
}

// DP0 is the left projection of the duplication binder X.
type DP0 struct {
	X string
}

// DP1 is the right projection of the duplication binder X.
type DP1 struct {
	X string
}

// Lam is an abstraction binding X in Body.
type Lam struct {
	X    string
	Body Term
}

// App is the application of Fun to Arg.
type App struct {
	Fun Term
	Arg Term
}

// Sup is a labelled superposition of two alternatives.
type Sup struct {
	Label string
	A     Term
	B     Term
}

// Dup binds the two projections of Val, labelled Label, as X0/X1 inside
// Body.
type Dup struct {
	X     string
	Label string
	Val   Term
	Body  Term
}

// Era is the erasure / null term.
type Era struct{}

// Op2 is a binary arithmetic operation.
type Op2 struct {
	Op    Op
	Left  Term
	Right Term
}

// Pair is an ordinary, non-shared product of two terms.
type Pair struct {
	First  Term
	Second Term
}

func (Num) isTerm()  {}
func (Var) isTerm()  {}
func (DP0) isTerm()  {}
func (DP1) isTerm()  {}
func (*Lam) isTerm() {}
func (*App) isTerm() {}
func (*Sup) isTerm() {}
func (*Dup) isTerm() {}
func (Era) isTerm()  {}
func (*Op2) isTerm() {}
func (*Pair) isTerm() {}

func (t Num) String() string { return strconv.FormatInt(t.V, 10) }
func (t Var) String() string { return t.X }
func (t DP0) String() string { return t.X + "₀" }
func (t DP1) String() string { return t.X + "₁" }

func (t *Lam) String() string {
	return fmt.Sprintf("λ%s.%s", t.X, t.Body)
}

func (t *App) String() string {
	return fmt.Sprintf("(%s %s)", t.Fun, t.Arg)
}

func (t *Sup) String() string {
	return fmt.Sprintf("&%s{%s, %s}", t.Label, t.A, t.B)
}

func (t *Dup) String() string {
	return fmt.Sprintf("! %s &%s= %s; %s", t.X, t.Label, t.Val, t.Body)
}

func (t Era) String() string { return "&{}" }

func (t *Op2) String() string {
	return fmt.Sprintf("(%s %s %s)", t.Left, t.Op, t.Right)
}

func (t *Pair) String() string {
	return fmt.Sprintf("(%s, %s)", t.First, t.Second)
}

// Print renders t in the canonical surface syntax (Unicode projections and
// lambda sigil), the same syntax the parser accepts.
func Print(t Term) string {
	return t.String()
}

// MentionsProjection reports whether t contains a DPi{x} occurrence for
// the given x (i is 0 or 1). The reducer uses this to detect a duplication
// whose body never touches the shared value, short-circuiting DUP-UNUSED.
func MentionsProjection(t Term, x string, i int) bool {
	switch n := t.(type) {
	case Num:
		return false
	case Var:
		return false
	case DP0:
		return i == 0 && n.X == x
	case DP1:
		return i == 1 && n.X == x
	case *Lam:
		return MentionsProjection(n.Body, x, i)
	case *App:
		return MentionsProjection(n.Fun, x, i) || MentionsProjection(n.Arg, x, i)
	case *Sup:
		return MentionsProjection(n.A, x, i) || MentionsProjection(n.B, x, i)
	case *Dup:
		return MentionsProjection(n.Val, x, i) || MentionsProjection(n.Body, x, i)
	case Era:
		return false
	case *Op2:
		return MentionsProjection(n.Left, x, i) || MentionsProjection(n.Right, x, i)
	case *Pair:
		return MentionsProjection(n.First, x, i) || MentionsProjection(n.Second, x, i)
	default:
		panic(fmt.Sprintf("term: unhandled variant %T", t))
	}
}

// MentionsEitherProjection reports whether t contains DP0(x) or DP1(x)
// anywhere, the condition DUP-UNUSED tests.
func MentionsEitherProjection(t Term, x string) bool {
	return MentionsProjection(t, x, 0) || MentionsProjection(t, x, 1)
}
