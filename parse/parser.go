// Package parse implements a hand-written recursive-descent parser from
// the interaction calculus surface syntax to the term model.
package parse

import (
	"fmt"

	icerr "github.com/icalc/icalc/error"
	"github.com/icalc/icalc/term"
)

type parser struct {
	lx  *lexer
	tok token
}

func newParser(src string) *parser {
	return &parser{lx: newLexer(src)}
}

func (p *parser) advance() error {
	tok, err := p.lx.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) errf(format string, args ...interface{}) error {
	return &icerr.ParseError{Offset: p.tok.offset, Cause: fmt.Errorf(format, args...)}
}

func (p *parser) expect(kind tokenKind) (token, error) {
	if p.tok.kind != kind {
		if p.tok.kind == tokEOF {
			return token{}, p.errf("unexpected end of input, expected %v", kind)
		}
		return token{}, p.errf("unexpected %v, expected %v", p.tok.kind, kind)
	}
	tok := p.tok
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

// Parse parses a complete interaction calculus term from src. It fails
// with a *error.ParseError carrying the offending character offset when
// the input is malformed or has trailing content.
func Parse(src string) (term.Term, error) {
	p := newParser(src)
	if err := p.advance(); err != nil {
		return nil, err
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.errf("unexpected trailing input after complete term")
	}
	return t, nil
}

func (p *parser) parseTerm() (term.Term, error) {
	switch p.tok.kind {
	case tokNum:
		n := p.tok.num
		if err := p.advance(); err != nil {
			return nil, err
		}
		return term.Num{V: n}, nil
	case tokIdent:
		x := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return term.Var{X: x}, nil
	case tokDP0:
		x := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return term.DP0{X: x}, nil
	case tokDP1:
		x := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return term.DP1{X: x}, nil
	case tokLambda:
		return p.parseLam()
	case tokAmp:
		return p.parseAmp()
	case tokBang:
		return p.parseDup()
	case tokLParen:
		return p.parseParen()
	case tokEOF:
		return nil, p.errf("unexpected end of input, expected a term")
	default:
		return nil, p.errf("unexpected %v, expected a term", p.tok.kind)
	}
}

func (p *parser) parseLam() (term.Term, error) {
	if _, err := p.expect(tokLambda); err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, p.errf("expected a variable name after λ")
	}
	if _, err := p.expect(tokDot); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return &term.Lam{X: name.text, Body: body}, nil
}

// parseAmp handles the three surface forms that share the `&` sigil
// outside of a duplication header: `&{}` (Era), `&{a,b}` (Sup with the
// default label), and `&L{a,b}` (Sup with an explicit label). Disambiguation
// only needs to look one token past the sigil: an identifier there is a
// label, otherwise the brace follows directly.
func (p *parser) parseAmp() (term.Term, error) {
	if _, err := p.expect(tokAmp); err != nil {
		return nil, err
	}
	label := term.DefaultLabel
	hasLabel := false
	if p.tok.kind == tokIdent {
		label = p.tok.text
		hasLabel = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokLBrace); err != nil {
		return nil, err
	}
	if p.tok.kind == tokRBrace {
		if hasLabel {
			return nil, p.errf("erasure &{} does not take a label")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return term.Era{}, nil
	}
	a, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokComma); err != nil {
		return nil, err
	}
	b, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRBrace); err != nil {
		return nil, err
	}
	return &term.Sup{Label: label, A: a, B: b}, nil
}

// parseDup handles `! x &L= v; t`, where the label is optional and
// defaults to term.DefaultLabel.
func (p *parser) parseDup() (term.Term, error) {
	if _, err := p.expect(tokBang); err != nil {
		return nil, err
	}
	name, err := p.expect(tokIdent)
	if err != nil {
		return nil, p.errf("expected a variable name after !")
	}
	if _, err := p.expect(tokAmp); err != nil {
		return nil, err
	}
	label := term.DefaultLabel
	if p.tok.kind == tokIdent {
		label = p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokEquals); err != nil {
		return nil, err
	}
	val, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokSemi); err != nil {
		return nil, err
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return &term.Dup{X: name.text, Label: label, Val: val, Body: body}, nil
}

// parseParen distinguishes Pair, Op2, and App by the token that follows
// the first nested term: `,` is a Pair, one of `+ - * /` is an Op2,
// anything else starts a second full term and the whole thing is an App.
func (p *parser) parseParen() (term.Term, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	switch p.tok.kind {
	case tokComma:
		if err := p.advance(); err != nil {
			return nil, err
		}
		second, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return &term.Pair{First: first, Second: second}, nil
	case tokPlus, tokMinus, tokStar, tokSlash:
		op := opFromToken(p.tok.kind)
		if err := p.advance(); err != nil {
			return nil, err
		}
		second, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return &term.Op2{Op: op, Left: first, Right: second}, nil
	default:
		second, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return &term.App{Fun: first, Arg: second}, nil
	}
}

func opFromToken(k tokenKind) term.Op {
	switch k {
	case tokPlus:
		return term.Add
	case tokMinus:
		return term.Sub
	case tokStar:
		return term.Mul
	default:
		return term.Div
	}
}
