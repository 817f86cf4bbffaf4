package typesystem

import (
	"strings"
	"unicode"
)

const interfacePrefix = "interface:"

var primitiveByName = map[string]Primitive{
	"bool":   Bool,
	"int":    Int,
	"float":  Float,
	"string": String,
	"unit":   Unit,
}

// Parse turns a type string into a Type. The five primitive keywords and
// "interface:<name>" are always recognised. Tuples "(T, U)", records
// "{a: T}", functions "fn(T) -> R", generics "Name<T>", variables "'a"
// and catalog names are accepted too. Anything else yields Unknown.
func (ts *TypeSystem) Parse(s string) Type {
	text := strings.TrimSpace(s)
	if strings.HasPrefix(text, interfacePrefix) {
		name := strings.TrimSpace(strings.TrimPrefix(text, interfacePrefix))
		if name == "" {
			return Unknown{Raw: s}
		}
		return Interface{Name: name}
	}

	p := &parser{src: []rune(text), ts: ts}
	t, ok := p.parseType()
	if !ok {
		return Unknown{Raw: s}
	}
	p.skipSpace()
	if !p.eof() {
		return Unknown{Raw: s}
	}
	return t
}

type parser struct {
	src []rune
	pos int
	ts  *TypeSystem
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) peek() rune {
	p.skipSpace()
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) accept(r rune) bool {
	if p.peek() == r {
		p.pos++
		return true
	}
	return false
}

func (p *parser) acceptArrow() bool {
	p.skipSpace()
	if p.pos+1 < len(p.src) && p.src[p.pos] == '-' && p.src[p.pos+1] == '>' {
		p.pos += 2
		return true
	}
	return false
}

func (p *parser) ident() string {
	p.skipSpace()
	start := p.pos
	for !p.eof() {
		r := p.src[p.pos]
		if r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			p.pos++
			continue
		}
		break
	}
	return string(p.src[start:p.pos])
}

func (p *parser) parseType() (Type, bool) {
	switch p.peek() {
	case '(':
		p.pos++
		elems, ok := p.parseList(')')
		if !ok {
			return nil, false
		}
		return Tuple{Elems: elems}, true
	case '{':
		p.pos++
		return p.parseRecord()
	case '\'':
		p.pos++
		name := p.ident()
		if name == "" {
			return nil, false
		}
		return Variable{Name: name}, true
	}

	name := p.ident()
	if name == "" {
		return nil, false
	}
	if name == "fn" && p.peek() == '(' {
		p.pos++
		params, ok := p.parseList(')')
		if !ok || !p.acceptArrow() {
			return nil, false
		}
		ret, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return Function{Params: params, Return: ret}, true
	}
	if name == "interface" && p.accept(':') {
		iface := p.ident()
		if iface == "" {
			return nil, false
		}
		return Interface{Name: iface}, true
	}
	if prim, ok := primitiveByName[name]; ok {
		return prim, true
	}
	if p.accept('<') {
		args, ok := p.parseList('>')
		if !ok || len(args) == 0 {
			return nil, false
		}
		return Generic{Name: name, Args: args}, true
	}

	t := p.ts.resolve(name)
	if _, unknown := t.(Unknown); unknown {
		return nil, false
	}
	return t, true
}

// parseList reads comma separated types up to and including the closer.
func (p *parser) parseList(closer rune) ([]Type, bool) {
	out := []Type{}
	if p.accept(closer) {
		return out, true
	}
	for {
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		out = append(out, t)
		if p.accept(',') {
			continue
		}
		if p.accept(closer) {
			return out, true
		}
		return nil, false
	}
}

func (p *parser) parseRecord() (Type, bool) {
	fields := map[string]Type{}
	if p.accept('}') {
		return Record{Fields: fields}, true
	}
	for {
		name := p.ident()
		if name == "" || !p.accept(':') {
			return nil, false
		}
		if _, dup := fields[name]; dup {
			return nil, false
		}
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		fields[name] = t
		if p.accept(',') {
			continue
		}
		if p.accept('}') {
			return Record{Fields: fields}, true
		}
		return nil, false
	}
}
