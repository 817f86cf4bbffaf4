package typesystem

// Equal is structural equality. Variant and Unknown have no equality rule
// and never compare equal, not even to themselves.
func Equal(a, b Type) bool {
	switch x := a.(type) {
	case Primitive:
		y, ok := b.(Primitive)
		return ok && x == y
	case Tuple:
		y, ok := b.(Tuple)
		return ok && allEqual(x.Elems, y.Elems)
	case Record:
		y, ok := b.(Record)
		if !ok || len(x.Fields) != len(y.Fields) {
			return false
		}
		for name, ft := range x.Fields {
			other, ok := y.Fields[name]
			if !ok || !Equal(ft, other) {
				return false
			}
		}
		return true
	case Function:
		y, ok := b.(Function)
		return ok && allEqual(x.Params, y.Params) && Equal(x.Return, y.Return)
	case Generic:
		y, ok := b.(Generic)
		return ok && x.Name == y.Name && allEqual(x.Args, y.Args)
	case Interface:
		y, ok := b.(Interface)
		return ok && x.Name == y.Name
	case Variable:
		y, ok := b.(Variable)
		return ok && x.Name == y.Name
	default:
		return false
	}
}

func allEqual(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IsSubtype reports sub <: super.
func IsSubtype(sub, super Type) bool {
	if Equal(sub, super) {
		return true
	}

	switch x := sub.(type) {
	case Primitive:
		y, ok := super.(Primitive)
		return ok && x == Int && y == Float
	case Tuple:
		y, ok := super.(Tuple)
		if !ok || len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !IsSubtype(x.Elems[i], y.Elems[i]) {
				return false
			}
		}
		return true
	case Record:
		// width and depth: sub may carry extra fields
		y, ok := super.(Record)
		if !ok {
			return false
		}
		for name, want := range y.Fields {
			have, ok := x.Fields[name]
			if !ok || !IsSubtype(have, want) {
				return false
			}
		}
		return true
	case Function:
		y, ok := super.(Function)
		if !ok || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if !IsSubtype(y.Params[i], x.Params[i]) {
				return false
			}
		}
		return IsSubtype(x.Return, y.Return)
	case Interface:
		// nominal; no inheritance yet
		y, ok := super.(Interface)
		return ok && x.Name == y.Name
	default:
		return false
	}
}

// IsWellFormed is false for Unknown, nil, or anything containing them.
func IsWellFormed(t Type) bool {
	switch x := t.(type) {
	case Primitive:
		return x >= Bool && x <= Unit
	case Tuple:
		return allWellFormed(x.Elems)
	case Record:
		for _, ft := range x.Fields {
			if !IsWellFormed(ft) {
				return false
			}
		}
		return true
	case Variant:
		for _, c := range x.Cases {
			if c.Payload != nil && !IsWellFormed(c.Payload) {
				return false
			}
		}
		return true
	case Function:
		return allWellFormed(x.Params) && IsWellFormed(x.Return)
	case Generic:
		return allWellFormed(x.Args)
	case Interface, Variable:
		return true
	default:
		return false
	}
}

func allWellFormed(ts []Type) bool {
	for _, t := range ts {
		if !IsWellFormed(t) {
			return false
		}
	}
	return true
}
