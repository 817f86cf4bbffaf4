package typesystem

import "sort"

type DefinitionKind string

const (
	KindPrimitive DefinitionKind = "primitive"
	KindComposite DefinitionKind = "composite"
	KindFunction  DefinitionKind = "function"
	KindInterface DefinitionKind = "interface"
	KindGeneric   DefinitionKind = "generic"
)

// Definition names a type so that bare identifiers in type strings resolve
// through the catalog. Type may be nil for interface and generic
// declarations.
type Definition struct {
	Name   string
	Kind   DefinitionKind
	Params []string
	Type   Type
}

// TypeSystem is the catalog of named definitions plus declared constraints.
// It is not safe for concurrent mutation; checkers only read it.
type TypeSystem struct {
	defs        map[string]Definition
	constraints []Constraint
}

func New() *TypeSystem {
	ts := &TypeSystem{defs: map[string]Definition{}}
	for _, p := range []Primitive{Bool, Int, Float, String, Unit} {
		ts.defs[p.String()] = Definition{Name: p.String(), Kind: KindPrimitive, Type: p}
	}
	return ts
}

// Define adds or replaces a definition.
func (ts *TypeSystem) Define(d Definition) {
	ts.defs[d.Name] = d
}

func (ts *TypeSystem) Lookup(name string) (Definition, bool) {
	d, ok := ts.defs[name]
	return d, ok
}

// Definitions returns the catalog sorted by name.
func (ts *TypeSystem) Definitions() []Definition {
	out := make([]Definition, 0, len(ts.defs))
	for _, d := range ts.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// resolve maps a bare catalog name to a type, or Unknown.
func (ts *TypeSystem) resolve(name string) Type {
	d, ok := ts.defs[name]
	if !ok {
		return Unknown{Raw: name}
	}
	if d.Type != nil {
		return d.Type
	}
	switch d.Kind {
	case KindInterface:
		return Interface{Name: d.Name}
	case KindGeneric:
		if len(d.Params) == 0 {
			return Generic{Name: d.Name}
		}
	}
	return Unknown{Raw: name}
}

// Constraint is a named boolean condition over types.
type Constraint struct {
	ID   string
	Expr ConstraintExpr
}

// ConstraintExpr is a closed expression tree.
type ConstraintExpr interface {
	Holds() bool
}

type ConstraintEqual struct{ Left, Right Type }
type ConstraintSubtype struct{ Sub, Super Type }
type ConstraintAnd struct{ Left, Right ConstraintExpr }
type ConstraintOr struct{ Left, Right ConstraintExpr }
type ConstraintNot struct{ Expr ConstraintExpr }

func (c ConstraintEqual) Holds() bool   { return Equal(c.Left, c.Right) }
func (c ConstraintSubtype) Holds() bool { return IsSubtype(c.Sub, c.Super) }
func (c ConstraintAnd) Holds() bool     { return c.Left.Holds() && c.Right.Holds() }
func (c ConstraintOr) Holds() bool      { return c.Left.Holds() || c.Right.Holds() }
func (c ConstraintNot) Holds() bool     { return !c.Expr.Holds() }

func (ts *TypeSystem) AddConstraint(c Constraint) {
	ts.constraints = append(ts.constraints, c)
}

func (ts *TypeSystem) Constraints() []Constraint {
	return append([]Constraint(nil), ts.constraints...)
}

// CheckConstraints returns the IDs of violated constraints in declaration
// order.
func (ts *TypeSystem) CheckConstraints() []string {
	var violated []string
	for _, c := range ts.constraints {
		if c.Expr == nil || !c.Expr.Holds() {
			violated = append(violated, c.ID)
		}
	}
	return violated
}
