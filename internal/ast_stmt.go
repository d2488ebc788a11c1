package internal

import (
	"fmt"
	"strings"
)

// Literal is the AST leaf for a constant already known at parse time
// (a number, string, boolean, or None token). spec.md §4.4 does not name
// a dedicated literal node because the parser's internal shape is out of
// scope, but some leaf is needed to plumb constants into the Execute tree;
// it does nothing beyond handing back the holder it was built with.
type Literal struct {
	Value *ObjectHolder
}

func (l *Literal) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	return l.Value, nil
}

// Assignment evaluates Rhs and stores the result under Name in the current
// scope, returning the stored holder (spec.md §4.4).
type Assignment struct {
	Name string
	Rhs  Node
}

func (a *Assignment) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	val, err := a.Rhs.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	scope.Define(a.Name, val)
	return val, nil
}

// FieldAssignment evaluates Receiver (must be a ClassInstance), evaluates
// Rhs, assigns it into the instance's fields, and returns it.
type FieldAssignment struct {
	Receiver Node
	Field    string
	Rhs      Node
}

func (f *FieldAssignment) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	recv, err := f.Receiver.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	inst, ok := recv.AsInstance()
	if !ok {
		return nil, runtimeErrorf("cannot assign field %q on a non-instance value", f.Field)
	}
	val, err := f.Rhs.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	inst.SetField(f.Field, val)
	return val, nil
}

// Print evaluates each argument left to right and writes its printed form
// to ctx.Out, space-separated and newline-terminated (spec.md §4.4).
type Print struct {
	Args []Node
}

func (p *Print) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	parts := make([]string, len(p.Args))
	for i, arg := range p.Args {
		val, err := arg.Execute(scope, ctx)
		if err != nil {
			return nil, err
		}
		text, err := FormatValue(val, ctx)
		if err != nil {
			return nil, err
		}
		parts[i] = text
	}
	if _, err := fmt.Fprintln(ctx.Out, strings.Join(parts, " ")); err != nil {
		return nil, runtimeErrorf("write failed: %v", err)
	}
	return NewNone(), nil
}

// Stringify evaluates Inner and returns a freshly-owned String holding
// exactly what Print would emit for that single value, with no trailing
// newline (spec.md §4.4).
type Stringify struct {
	Inner Node
}

func (s *Stringify) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	val, err := s.Inner.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	text, err := FormatValue(val, ctx)
	if err != nil {
		return nil, err
	}
	return NewString(text), nil
}

// IfElse executes Then when Cond is truthy, Else otherwise (if present),
// and always itself returns a None holder — any Return unwind from the
// chosen branch still propagates via the error return (spec.md §4.4).
type IfElse struct {
	Cond Node
	Then Node
	Else Node // nil if there is no else branch
}

func (i *IfElse) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	cond, err := coerceBool(i.Cond, scope, ctx)
	if err != nil {
		return nil, err
	}
	if cond {
		if _, err := i.Then.Execute(scope, ctx); err != nil {
			return nil, err
		}
	} else if i.Else != nil {
		if _, err := i.Else.Execute(scope, ctx); err != nil {
			return nil, err
		}
	}
	return NewNone(), nil
}

// Compound executes its statements in program order and returns None; a
// Return unwind from any statement propagates immediately (spec.md §4.4).
type Compound struct {
	Stmts []Node
}

func (c *Compound) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	for _, stmt := range c.Stmts {
		if _, err := stmt.Execute(scope, ctx); err != nil {
			return nil, err
		}
	}
	return NewNone(), nil
}

// Return evaluates Expr and raises a *ReturnSignal carrying its value,
// caught exactly at MethodBody (spec.md §4.4, §9 Open Question 7).
type Return struct {
	Expr Node
}

func (r *Return) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	val, err := r.Expr.Execute(scope, ctx)
	if err != nil {
		return nil, err
	}
	return val, &ReturnSignal{Value: val}
}

// MethodBody wraps a method's statement body and is the sole boundary
// where a *ReturnSignal is caught: absent a Return, it yields None.
type MethodBody struct {
	Body Node
}

func (m *MethodBody) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	_, err := m.Body.Execute(scope, ctx)
	if rs, ok := err.(*ReturnSignal); ok {
		return rs.Value, nil
	}
	if err != nil {
		return nil, err
	}
	return NewNone(), nil
}

// MethodDecl is a parsed method declaration awaiting its owning class at
// ClassDefinition.Execute time (methods bind to a *Class, but the parser
// builds them before the class object exists).
type MethodDecl struct {
	Name   string
	Params []string
	Body   Node // always a *MethodBody
}

// ClassDefinition resolves an optional parent class from scope, builds the
// *Class from its method declarations, installs a Share of it under Name,
// and returns that holder (spec.md §4.4). Parent resolution happens here,
// at execution time, because a superclass is itself just a name bound in
// an enclosing scope — identical in kind to any other variable lookup.
type ClassDefinition struct {
	Name        string
	ParentName  string // empty if the class has no declared parent
	MethodDecls []MethodDecl
}

func (c *ClassDefinition) Execute(scope *Closure, ctx *Context) (*ObjectHolder, error) {
	var parent *Class
	if c.ParentName != "" {
		ph, ok := scope.Get(c.ParentName)
		if !ok {
			return nil, runtimeErrorf("undefined class %q", c.ParentName)
		}
		parent, ok = ph.AsClass()
		if !ok {
			return nil, runtimeErrorf("%q is not a class", c.ParentName)
		}
	}

	class := NewClass(c.Name, parent)
	for _, decl := range c.MethodDecls {
		class.Methods[decl.Name] = &Method{Name: decl.Name, Params: decl.Params, Body: decl.Body}
	}

	holder := NewClassValue(class)
	scope.Define(c.Name, Share(holder))
	return holder, nil
}
