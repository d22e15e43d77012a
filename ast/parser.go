package ast

import (
	"github.com/coregx/regexcore/internal/rcerror"
	"github.com/coregx/regexcore/token"
)

// parser walks a Tok2 stream with a cursor, the idiomatic Go shape for the
// original implementation's "reverse the slice, pop from the end" stack
// discipline — both consume tokens strictly left to right.
type parser struct {
	tokens []token.Tok2
	pos    int
}

func (p *parser) eof() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() (token.Tok2, bool) {
	if p.eof() {
		return token.Tok2{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) advance() (token.Tok2, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// Parse runs the recursive-descent grammar from spec §4.3 over a Tok2
// stream, producing an RAST. It fails on an unexpected token where an atom
// is required, a missing ')', unconsumed trailing tokens, or running out of
// tokens mid-parse.
func Parse(tokens []token.Tok2) (*RAST, error) {
	p := &parser{tokens: tokens}
	rast, err := p.parseRegex()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, rcerror.New(rcerror.StageParse, rcerror.ErrParse, "trailing tokens after a complete parse")
	}
	return rast, nil
}

// parseRegex := binary
func (p *parser) parseRegex() (*RAST, error) {
	return p.parseBinary()
}

// binary := unary binary'
//
// binary' folds right (spec §4.3): "abc" parses as Concat(a, Concat(b, c)).
// Concat and Alternation are both associative, so right-folding and
// left-folding are semantically equivalent; right-folding falls out
// naturally from a recursive binary' production.
func (p *parser) parseBinary() (*RAST, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	rest, op, ok, err := p.parseBinaryPrime()
	if err != nil {
		return nil, err
	}
	if !ok {
		return left, nil
	}
	return NewBinary(left, rest, op), nil
}

// binary' := ( '|' | Concat ) unary binary' | epsilon
func (p *parser) parseBinaryPrime() (*RAST, BinaryOp, bool, error) {
	t, ok := p.peek()
	if !ok {
		return nil, 0, false, nil
	}
	var op BinaryOp
	switch t.Kind {
	case token.Concat2:
		op = Concat
	case token.Alternation2:
		op = Alternation
	default:
		return nil, 0, false, nil
	}
	p.pos++

	unary, err := p.parseUnary()
	if err != nil {
		return nil, 0, false, err
	}
	rest, restOp, ok, err := p.parseBinaryPrime()
	if err != nil {
		return nil, 0, false, err
	}
	if !ok {
		return unary, op, true, nil
	}
	return NewBinary(unary, rest, restOp), op, true, nil
}

// unary := group unary*
//
// Multiple postfix operators stack outermost-last: "a*+" parses as
// Unary(Unary(a, *), +) (spec §4.3). The validator then rejects two
// stacked unary operators.
func (p *parser) parseUnary() (*RAST, error) {
	group, err := p.parseGroup()
	if err != nil {
		return nil, err
	}
	ops, err := p.parseUnaryOps()
	if err != nil {
		return nil, err
	}
	rast := group
	for _, apply := range ops {
		rast = apply(rast)
	}
	return rast, nil
}

// parseUnaryOps collects zero or more postfix operators in the order they
// must be applied (first operator read wraps innermost).
func (p *parser) parseUnaryOps() ([]func(*RAST) *RAST, error) {
	var ops []func(*RAST) *RAST
	for {
		t, ok := p.peek()
		if !ok {
			return ops, nil
		}
		var apply func(*RAST) *RAST
		switch t.Kind {
		case token.KleeneClosure2:
			apply = func(r *RAST) *RAST { return NewUnary(r, KleeneClosure) }
		case token.Question2:
			apply = func(r *RAST) *RAST { return NewUnary(r, Question) }
		case token.Plus2:
			apply = func(r *RAST) *RAST { return NewUnary(r, Plus) }
		case token.Times2:
			n := t.Min
			apply = func(r *RAST) *RAST { return NewTimes(r, n) }
		case token.MinMax2:
			min, max := t.Min, t.Max
			apply = func(r *RAST) *RAST { return NewMinMax(r, min, max) }
		default:
			return ops, nil
		}
		p.pos++
		ops = append(ops, apply)
	}
}

// group := Character | '(' regex ')'
func (p *parser) parseGroup() (*RAST, error) {
	t, ok := p.advance()
	if !ok {
		return nil, rcerror.New(rcerror.StageParse, rcerror.ErrParse, "reached end of pattern while parsing")
	}
	switch t.Kind {
	case token.Character2:
		return NewAtomic(t.Byte), nil
	case token.LParen2:
		inner, err := p.parseRegex()
		if err != nil {
			return nil, err
		}
		close, ok := p.advance()
		if !ok {
			return nil, rcerror.New(rcerror.StageParse, rcerror.ErrParse, "reached end of pattern while parsing, expected ')'")
		}
		if close.Kind != token.RParen2 {
			return nil, rcerror.New(rcerror.StageParse, rcerror.ErrParse, "unexpected token, expected ')'")
		}
		return inner, nil
	default:
		return nil, rcerror.New(rcerror.StageParse, rcerror.ErrParse, "unexpected token, expected a character or '('")
	}
}
