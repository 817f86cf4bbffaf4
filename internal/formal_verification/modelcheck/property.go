package modelcheck

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidProperty = errors.New("invalid property")

// Expr is a predicate over a single state.
type Expr interface {
	Eval(s *State) bool
	String() string
}

type ActiveAtom struct{ Component string }
type EstablishedAtom struct{ Connection string }
type NotExpr struct{ X Expr }
type AndExpr struct{ L, R Expr }
type OrExpr struct{ L, R Expr }

// Names that are not in the state evaluate to false.
func (a ActiveAtom) Eval(s *State) bool { return s.Components[a.Component] == ComponentActive }

func (a EstablishedAtom) Eval(s *State) bool {
	return s.Connections[a.Connection].Status == ConnectionConnected
}

func (n NotExpr) Eval(s *State) bool { return !n.X.Eval(s) }
func (a AndExpr) Eval(s *State) bool { return a.L.Eval(s) && a.R.Eval(s) }
func (o OrExpr) Eval(s *State) bool  { return o.L.Eval(s) || o.R.Eval(s) }

func (a ActiveAtom) String() string      { return "component_active(" + a.Component + ")" }
func (a EstablishedAtom) String() string { return "connection_established(" + a.Connection + ")" }
func (n NotExpr) String() string         { return "!" + n.X.String() }
func (a AndExpr) String() string         { return "(" + a.L.String() + " && " + a.R.String() + ")" }
func (o OrExpr) String() string          { return "(" + o.L.String() + " || " + o.R.String() + ")" }

const (
	atomComponentActive       = "component_active"
	atomConnectionEstablished = "connection_established"
	livenessKeyword           = "eventually"
)

// ParseProperty parses a state predicate:
//
//	expr  := or
//	or    := and { ("||" | "or") and }
//	and   := unary { ("&&" | "and") unary }
//	unary := ("!" | "not") unary | "(" expr ")" | atom
//	atom  := component_active(<name>) | connection_established(<name>)
func ParseProperty(text string) (Expr, error) {
	p := &propParser{src: []rune(text)}
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q", string(p.src[p.pos:]))
	}
	return e, nil
}

// ParseLiveness parses eventually(<expr>) and returns the inner predicate.
func ParseLiveness(text string) (Expr, error) {
	p := &propParser{src: []rune(text)}
	if p.word() != livenessKeyword || !p.accept("(") {
		return nil, fmt.Errorf("%w: expected %s(<expr>) in %q", ErrInvalidProperty, livenessKeyword, text)
	}
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.accept(")") {
		return nil, p.errorf("missing ')'")
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q", string(p.src[p.pos:]))
	}
	return e, nil
}

type propParser struct {
	src []rune
	pos int
}

func (p *propParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrInvalidProperty, p.pos, fmt.Sprintf(format, args...))
}

func (p *propParser) eof() bool { return p.pos >= len(p.src) }

func (p *propParser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *propParser) accept(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(string(p.src[p.pos:]), tok) {
		p.pos += len([]rune(tok))
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (p *propParser) word() string {
	p.skipSpace()
	start := p.pos
	for !p.eof() && isWordRune(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

// acceptWord consumes w only if it is a whole word.
func (p *propParser) acceptWord(w string) bool {
	save := p.pos
	if p.word() == w {
		return true
	}
	p.pos = save
	return false
}

func (p *propParser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.accept("||") || p.acceptWord("or") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = OrExpr{L: left, R: right}
	}
	return left, nil
}

func (p *propParser) parseAnd() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.accept("&&") || p.acceptWord("and") {
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = AndExpr{L: left, R: right}
	}
	return left, nil
}

func (p *propParser) parseUnary() (Expr, error) {
	if p.accept("!") || p.acceptWord("not") {
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return NotExpr{X: x}, nil
	}
	if p.accept("(") {
		e, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if !p.accept(")") {
			return nil, p.errorf("missing ')'")
		}
		return e, nil
	}
	return p.parseAtom()
}

func (p *propParser) parseAtom() (Expr, error) {
	kind := p.word()
	switch kind {
	case atomComponentActive, atomConnectionEstablished:
	case "":
		if p.eof() {
			return nil, p.errorf("unexpected end of input")
		}
		return nil, p.errorf("unexpected %q", string(p.src[p.pos]))
	default:
		return nil, p.errorf("unknown predicate %q", kind)
	}
	if !p.accept("(") {
		return nil, p.errorf("expected '(' after %s", kind)
	}
	start := p.pos
	for !p.eof() && p.src[p.pos] != ')' && p.src[p.pos] != '(' {
		p.pos++
	}
	if p.eof() || p.src[p.pos] != ')' {
		return nil, p.errorf("unterminated %s", kind)
	}
	name := strings.TrimSpace(string(p.src[start:p.pos]))
	p.pos++
	if name == "" {
		return nil, p.errorf("%s needs a name", kind)
	}
	if kind == atomComponentActive {
		return ActiveAtom{Component: name}, nil
	}
	return EstablishedAtom{Connection: name}, nil
}
