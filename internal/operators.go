package internal

// This file implements the polymorphic arithmetic/comparison table of
// spec.md §4.2. Each function handles its documented type combinations and
// falls through to a *RuntimeError otherwise, including the ClassInstance
// dunder-dispatch fallbacks (__add__, __eq__, __lt__).

// Add implements `+`: numeric sum, string concatenation, or a ClassInstance
// LHS's __add__(rhs).
func Add(lhs, rhs *ObjectHolder, ctx *Context) (*ObjectHolder, error) {
	if ln, ok := lhs.AsNumber(); ok {
		rn, ok := rhs.AsNumber()
		if !ok {
			return nil, runtimeErrorf("cannot add Number and non-Number")
		}
		return NewNumber(ln + rn), nil
	}
	if ls, ok := lhs.AsString(); ok {
		rs, ok := rhs.AsString()
		if !ok {
			return nil, runtimeErrorf("cannot add String and non-String")
		}
		return NewString(ls + rs), nil
	}
	if inst, ok := lhs.AsInstance(); ok {
		if !inst.HasMethod("__add__", 1) {
			return nil, runtimeErrorf("class %s has no __add__(rhs) method", inst.Class.Name)
		}
		return inst.Call("__add__", []*ObjectHolder{rhs}, ctx)
	}
	return nil, runtimeErrorf("unsupported operand types for +")
}

// Sub implements `-`: integer arithmetic on Number×Number only.
func Sub(lhs, rhs *ObjectHolder) (*ObjectHolder, error) {
	ln, rn, err := bothNumbers(lhs, rhs, "-")
	if err != nil {
		return nil, err
	}
	return NewNumber(ln - rn), nil
}

// Mul implements `*`: integer arithmetic on Number×Number only.
func Mul(lhs, rhs *ObjectHolder) (*ObjectHolder, error) {
	ln, rn, err := bothNumbers(lhs, rhs, "*")
	if err != nil {
		return nil, err
	}
	return NewNumber(ln * rn), nil
}

// Div implements `/`: integer division on Number×Number only; a zero RHS
// is a runtime error.
func Div(lhs, rhs *ObjectHolder) (*ObjectHolder, error) {
	ln, rn, err := bothNumbers(lhs, rhs, "/")
	if err != nil {
		return nil, err
	}
	if rn == 0 {
		return nil, runtimeErrorf("division by zero")
	}
	return NewNumber(ln / rn), nil
}

func bothNumbers(lhs, rhs *ObjectHolder, op string) (int32, int32, error) {
	ln, ok := lhs.AsNumber()
	if !ok {
		return 0, 0, runtimeErrorf("operator %s requires Number operands", op)
	}
	rn, ok := rhs.AsNumber()
	if !ok {
		return 0, 0, runtimeErrorf("operator %s requires Number operands", op)
	}
	return ln, rn, nil
}

// Equal implements `==`. Two None holders compare equal; any other
// type mismatch (outside the documented same-type buckets) is an error.
func Equal(lhs, rhs *ObjectHolder, ctx *Context) (bool, error) {
	if lhs.IsNone() && rhs.IsNone() {
		return true, nil
	}
	if ln, ok := lhs.AsNumber(); ok {
		rn, ok := rhs.AsNumber()
		if !ok {
			return false, runtimeErrorf("cannot compare Number to non-Number")
		}
		return ln == rn, nil
	}
	if ls, ok := lhs.AsString(); ok {
		rs, ok := rhs.AsString()
		if !ok {
			return false, runtimeErrorf("cannot compare String to non-String")
		}
		return ls == rs, nil
	}
	if lb, ok := lhs.AsBool(); ok {
		rb, ok := rhs.AsBool()
		if !ok {
			return false, runtimeErrorf("cannot compare Bool to non-Bool")
		}
		return lb == rb, nil
	}
	if inst, ok := lhs.AsInstance(); ok {
		if !inst.HasMethod("__eq__", 1) {
			return false, runtimeErrorf("class %s has no __eq__(rhs) method", inst.Class.Name)
		}
		result, err := inst.Call("__eq__", []*ObjectHolder{rhs}, ctx)
		if err != nil {
			return false, err
		}
		b, ok := result.AsBool()
		if !ok {
			return false, runtimeErrorf("__eq__ must return a Bool")
		}
		return b, nil
	}
	return false, runtimeErrorf("unsupported operand types for ==")
}

// Less implements `<`. There is no None×None special case here — that
// asymmetry with Equal is intentional (spec.md §9).
func Less(lhs, rhs *ObjectHolder, ctx *Context) (bool, error) {
	if ln, ok := lhs.AsNumber(); ok {
		rn, ok := rhs.AsNumber()
		if !ok {
			return false, runtimeErrorf("cannot order Number against non-Number")
		}
		return ln < rn, nil
	}
	if ls, ok := lhs.AsString(); ok {
		rs, ok := rhs.AsString()
		if !ok {
			return false, runtimeErrorf("cannot order String against non-String")
		}
		return ls < rs, nil
	}
	if lb, ok := lhs.AsBool(); ok {
		rb, ok := rhs.AsBool()
		if !ok {
			return false, runtimeErrorf("cannot order Bool against non-Bool")
		}
		return !lb && rb, nil
	}
	if inst, ok := lhs.AsInstance(); ok {
		if !inst.HasMethod("__lt__", 1) {
			return false, runtimeErrorf("class %s has no __lt__(rhs) method", inst.Class.Name)
		}
		result, err := inst.Call("__lt__", []*ObjectHolder{rhs}, ctx)
		if err != nil {
			return false, err
		}
		b, ok := result.AsBool()
		if !ok {
			return false, runtimeErrorf("__lt__ must return a Bool")
		}
		return b, nil
	}
	return false, runtimeErrorf("unsupported operand types for <")
}

// CompareKind names which of the six comparison operators a Comparison
// node applies; spec.md §4.2's !=, >, <=, >= rows are all derived from
// Equal and Less rather than having their own dunder hooks.
type CompareKind int

const (
	CompareEq CompareKind = iota
	CompareNotEq
	CompareLess
	CompareGreater
	CompareLessOrEq
	CompareGreaterOrEq
)

// Compare applies kind to lhs/rhs, deriving !=, >, <=, >= from Equal/Less.
func Compare(kind CompareKind, lhs, rhs *ObjectHolder, ctx *Context) (bool, error) {
	switch kind {
	case CompareEq:
		return Equal(lhs, rhs, ctx)
	case CompareNotEq:
		eq, err := Equal(lhs, rhs, ctx)
		return !eq, err
	case CompareLess:
		return Less(lhs, rhs, ctx)
	case CompareGreater:
		lt, err := Less(lhs, rhs, ctx)
		if err != nil {
			return false, err
		}
		eq, err := Equal(lhs, rhs, ctx)
		if err != nil {
			return false, err
		}
		return !lt && !eq, nil
	case CompareLessOrEq:
		lt, err := Less(lhs, rhs, ctx)
		if err != nil {
			return false, err
		}
		if lt {
			return true, nil
		}
		return Equal(lhs, rhs, ctx)
	case CompareGreaterOrEq:
		lt, err := Less(lhs, rhs, ctx)
		return !lt, err
	default:
		return false, runtimeErrorf("undefined comparison operator")
	}
}
