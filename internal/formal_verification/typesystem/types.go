package typesystem

import (
	"sort"
	"strings"
)

// Type is a closed set of structural types. Only the types in this file
// implement it.
type Type interface {
	String() string
	isType()
}

type Primitive int

const (
	Bool Primitive = iota
	Int
	Float
	String
	Unit
)

var primitiveNames = [...]string{"bool", "int", "float", "string", "unit"}

func (p Primitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return "primitive?"
}

type Tuple struct {
	Elems []Type
}

// Record fields are unordered; String renders them sorted.
type Record struct {
	Fields map[string]Type
}

type Case struct {
	Name string
	// nil when the case carries no payload
	Payload Type
}

type Variant struct {
	Cases []Case
}

type Function struct {
	Params []Type
	Return Type
}

type Generic struct {
	Name string
	Args []Type
}

type Interface struct {
	Name string
}

type Variable struct {
	Name string
}

// Unknown marks text that failed to parse. Raw keeps the original input.
type Unknown struct {
	Raw string
}

func (Primitive) isType() {}
func (Tuple) isType()     {}
func (Record) isType()    {}
func (Variant) isType()   {}
func (Function) isType()  {}
func (Generic) isType()   {}
func (Interface) isType() {}
func (Variable) isType()  {}
func (Unknown) isType()   {}

func (t Tuple) String() string {
	return "(" + joinTypes(t.Elems) + ")"
}

func (r Record) String() string {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + typeString(r.Fields[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (v Variant) String() string {
	parts := make([]string, len(v.Cases))
	for i, c := range v.Cases {
		if c.Payload != nil {
			parts[i] = c.Name + "(" + c.Payload.String() + ")"
		} else {
			parts[i] = c.Name
		}
	}
	return "variant[" + strings.Join(parts, " | ") + "]"
}

func (f Function) String() string {
	return "fn(" + joinTypes(f.Params) + ") -> " + typeString(f.Return)
}

func (g Generic) String() string {
	if len(g.Args) == 0 {
		return g.Name
	}
	return g.Name + "<" + joinTypes(g.Args) + ">"
}

func (i Interface) String() string { return "interface:" + i.Name }
func (v Variable) String() string  { return "'" + v.Name }
func (Unknown) String() string     { return "<unknown>" }

func joinTypes(ts []Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = typeString(t)
	}
	return strings.Join(parts, ", ")
}

func typeString(t Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
