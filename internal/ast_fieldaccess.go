package internal

// FieldAccess generalizes VariableValue's per-segment field lookup to an
// arbitrary base expression, needed once a dotted chain continues after a
// MethodCall result (e.g. `x.f().y`) rather than starting from a plain
// scope variable. A constructor call such as `A()` ends its expression in
// the parser, so `A().y` is not accepted. It is parser plumbing, not a distinct
// spec.md §4.4 node kind: it applies the exact same
// "must be a ClassInstance, then Fields()[name]" rule VariableValue uses.
type FieldAccess struct {
	Base  Node
	Field string
}

func (f *FieldAccess) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	base, err := f.Base.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	inst, ok := base.AsInstance()
	if !ok {
		return nil, runtimeErrorf("cannot access field %q of a non-instance value", f.Field)
	}
	val, ok := inst.GetField(f.Field)
	if !ok {
		return nil, runtimeErrorf("undefined field %q on class %s", f.Field, inst.Class.Name)
	}
	return val, nil
}
