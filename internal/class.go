package internal

// Method is a named, callable piece of a class: an ordered parameter list
// and a shared pointer to its AST body. Body is always a *MethodBody node
// so Return-unwinding is caught at exactly the right boundary (spec.md
// §4.3/§4.4) regardless of where Call is invoked from.
type Method struct {
	Name   string
	Params []string
	Body   Node
}

func (m *Method) arity() int {
	return len(m.Params)
}

// Class is the metadata object for a user-defined class: a name, an
// optional parent (single inheritance), and its own method table. Lookup
// walks the parent chain only on a miss in the current class — a method
// present in a class always shadows a same-named parent method, never
// blending with it.
type Class struct {
	Name    string
	Parent  *Class
	Methods map[string]*Method
}

// NewClass allocates a class with an empty method table.
func NewClass(name string, parent *Class) *Class {
	return &Class{Name: name, Parent: parent, Methods: make(map[string]*Method)}
}

// GetMethod returns the first method named name found walking
// self -> parent -> parent.parent -> ... . If name exists in c's own
// table the parent chain is never consulted, even on an arity mismatch —
// shadowing is by name alone (spec.md §4.3).
func (c *Class) GetMethod(name string) (*Method, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil, false
}

// Instantiate allocates a fresh instance referring to c, with no fields set.
func (c *Class) Instantiate() *ClassInstance {
	return &ClassInstance{Class: c, fields: NewClosure(nil)}
}
