package internal

import "strconv"

// ClassInstance is a non-owning back-reference to its Class plus a field
// table. Fields are stored in a Closure purely to reuse the same
// name->holder map type the language already has for lexical scope;
// insertion order is never observed by any operation.
type ClassInstance struct {
	Class  *Class
	fields *Closure
}

// Fields exposes the instance's field table for VariableValue's dotted-path
// lookup (spec.md §4.4).
func (inst *ClassInstance) Fields() *Closure {
	return inst.fields
}

// GetField reads a field by name.
func (inst *ClassInstance) GetField(name string) (*ObjectHolder, bool) {
	return inst.fields.Get(name)
}

// SetField writes a field by name, creating it if absent.
func (inst *ClassInstance) SetField(name string, value *ObjectHolder) {
	inst.fields.Define(name, value)
}

// HasMethod reports whether name resolves to a method of exactly argc
// formal parameters — no variadics, no defaults (spec.md §4.3).
func (inst *ClassInstance) HasMethod(name string, argc int) bool {
	m, ok := inst.Class.GetMethod(name)
	return ok && m.arity() == argc
}

// Call resolves name, binds self and the positional arguments into a fresh
// closure, and executes the method body. The method's *MethodBody node
// (spec.md §4.4) is responsible for catching the Return unwind; Call never
// sees a *ReturnSignal escape.
func (inst *ClassInstance) Call(name string, args []*ObjectHolder, ctx *Context) (*ObjectHolder, error) {
	method, ok := inst.Class.GetMethod(name)
	if !ok {
		return nil, runtimeErrorf("no method %q on class %s", name, inst.Class.Name)
	}
	if method.arity() != len(args) {
		return nil, runtimeErrorf("method %q of class %s expects %d argument(s), got %d",
			name, inst.Class.Name, method.arity(), len(args))
	}

	scope := NewClosure(ctx.Globals)
	scope.Define("self", Share(NewInstanceValue(inst)))
	for i, param := range method.Params {
		scope.Define(param, args[i])
	}

	return method.Body.Execute(scope, ctx)
}

// FormatValue renders h exactly as Print/Stringify would: integers in
// decimal, booleans as True/False, strings raw, None as the literal text
// None, and class instances via __str__() when defined, recursing on its
// result (spec.md §4.3/§6), or the identity fallback otherwise.
func FormatValue(h *ObjectHolder, ctx *Context) (string, error) {
	if h == nil || h.IsNone() {
		return "None", nil
	}
	if n, ok := h.AsNumber(); ok {
		return strconv.FormatInt(int64(n), 10), nil
	}
	if b, ok := h.AsBool(); ok {
		if b {
			return "True", nil
		}
		return "False", nil
	}
	if s, ok := h.AsString(); ok {
		return s, nil
	}
	if inst, ok := h.AsInstance(); ok {
		if inst.HasMethod("__str__", 0) {
			result, err := inst.Call("__str__", nil, ctx)
			if err != nil {
				return "", err
			}
			return FormatValue(result, ctx)
		}
		return "<" + inst.Class.Name + " instance>", nil
	}
	if cls, ok := h.AsClass(); ok {
		return "<class " + cls.Name + ">", nil
	}
	return "None", nil
}
