// Package icalc ties together the interaction calculus term model,
// parser, and reducer behind the three entry points a caller needs:
// Parse, Normalise, and the Evaluate convenience that composes them.
package icalc

import (
	"github.com/icalc/icalc/parse"
	"github.com/icalc/icalc/reduce"
	"github.com/icalc/icalc/term"
)

// Term re-exports the term model's root type so callers of this package
// don't need a second import for it.
type Term = term.Term

// Parse parses src into a Term, or fails with a *error.ParseError.
func Parse(src string) (Term, error) {
	return parse.Parse(src)
}

// Normalise reduces t to normal form, or to the best-effort fixpoint if
// the default safety bound is exhausted. Use reduce.Reducer directly to
// observe the step count or set a custom bound.
func Normalise(t Term) Term {
	return reduce.Normalise(t)
}

// Evaluate parses src and normalises the result in one call.
func Evaluate(src string) (Term, error) {
	t, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	return reduce.Normalise(t), nil
}

// Print renders t in the canonical surface syntax.
func Print(t Term) string {
	return term.Print(t)
}
