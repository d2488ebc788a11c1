package internal

// VariableValue resolves Path[0] in the current scope, then follows each
// subsequent segment through ClassInstance.Fields() (spec.md §4.4). A
// mid-path non-instance value is a *RuntimeError (spec.md §9 Open
// Question 5).
type VariableValue struct {
	Path []string
}

func (v *VariableValue) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	cur, ok := scope.Get(v.Path[0])
	if !ok {
		return nil, runtimeErrorf("undefined variable %q", v.Path[0])
	}
	for _, seg := range v.Path[1:] {
		inst, ok := cur.AsInstance()
		if !ok {
			return nil, runtimeErrorf("cannot access field %q of a non-instance value", seg)
		}
		next, ok := inst.GetField(seg)
		if !ok {
			return nil, runtimeErrorf("undefined field %q on class %s", seg, inst.Class.Name)
		}
		cur = next
	}
	return cur, nil
}

// BinaryOp implements Add/Sub/Mult/Div (spec.md §4.4, dispatch table in
// operators.go).
type BinaryOp struct {
	Op  string // "+", "-", "*", "/"
	Lhs Node
	Rhs Node
}

func (b *BinaryOp) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	lhs, err := b.Lhs.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	rhs, err := b.Rhs.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	switch b.Op {
	case "+":
		return Add(lhs, rhs, ctx)
	case "-":
		return Sub(lhs, rhs)
	case "*":
		return Mul(lhs, rhs)
	case "/":
		return Div(lhs, rhs)
	default:
		return nil, runtimeErrorf("undefined binary operator %q", b.Op)
	}
}

// Comparison evaluates both sides and applies the chosen comparator,
// wrapping the result as an owned Bool (spec.md §4.4).
type Comparison struct {
	Kind CompareKind
	Lhs  Node
	Rhs  Node
}

func (c *Comparison) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	lhs, err := c.Lhs.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	rhs, err := c.Rhs.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	result, err := Compare(c.Kind, lhs, rhs, ctx)
	if err != nil {
		return nil, err
	}
	return NewBool(result), nil
}

// And evaluates both operands unconditionally — spec.md §4.4 and §9 Open
// Question 6 both settle on no short-circuiting.
type And struct {
	Lhs Node
	Rhs Node
}

func (a *And) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	lb, err := coerceBool(a.Lhs, scope, ctx)
	if err != nil {
		return nil, err
	}
	rb, err := coerceBool(a.Rhs, scope, ctx)
	if err != nil {
		return nil, err
	}
	return NewBool(lb && rb), nil
}

// Or evaluates both operands unconditionally, matching And.
type Or struct {
	Lhs Node
	Rhs Node
}

func (o *Or) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	lb, err := coerceBool(o.Lhs, scope, ctx)
	if err != nil {
		return nil, err
	}
	rb, err := coerceBool(o.Rhs, scope, ctx)
	if err != nil {
		return nil, err
	}
	return NewBool(lb || rb), nil
}

// Not coerces Inner to Bool and negates it.
type Not struct {
	Inner Node
}

func (n *Not) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	b, err := coerceBool(n.Inner, scope, ctx)
	if err != nil {
		return nil, err
	}
	return NewBool(!b), nil
}

// NewInstance allocates an owned ClassInstance referring to ClassExpr's
// value, then invokes __init__ (if present and arity-matched) with the
// evaluated arguments (spec.md §4.4).
type NewInstance struct {
	ClassExpr Node
	Args      []Node
}

func (n *NewInstance) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	classHolder, err := n.ClassExpr.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	cls, ok := classHolder.AsClass()
	if !ok {
		return nil, runtimeErrorf("cannot instantiate a non-class value")
	}

	args := make([]*ObjectHolder, len(n.Args))
	for i, arg := range n.Args {
		val, err := arg.Execute(scope, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	inst := cls.Instantiate()
	if inst.HasMethod("__init__", len(args)) {
		if _, err := inst.Call("__init__", args, ctx); err != nil {
			return nil, err
		}
	}
	return NewInstanceValue(inst), nil
}

// MethodCall evaluates Receiver (must be a ClassInstance), evaluates Args
// in order, and delegates to ClassInstance.Call (spec.md §4.3/§4.4).
type MethodCall struct {
	Receiver Node
	Name     string
	Args     []Node
}

func (m *MethodCall) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	recv, err := m.Receiver.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	inst, ok := recv.AsInstance()
	if !ok {
		return nil, runtimeErrorf("cannot call method %q on a non-instance value", m.Name)
	}

	args := make([]*ObjectHolder, len(m.Args))
	for i, arg := range m.Args {
		val, err := arg.Execute(scope, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	return inst.Call(m.Name, args, ctx)
}
