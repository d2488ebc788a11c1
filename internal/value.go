package internal

// valueKind tags which field of ObjectHolder is live.
type valueKind int

const (
	kindNone valueKind = iota
	kindNumber
	kindBool
	kindString
	kindClass
	kindInstance
)

// ObjectHolder is a handle to a runtime value. spec.md models it as a
// reference-counted handle with three construction modes (Own/Share/None);
// Go's garbage collector makes manual refcounting unnecessary, so Own and
// Share here both just hand back an *ObjectHolder and let the collector
// track liveness. Share is kept as a distinct, explicitly-named
// constructor purely to preserve the spec's documented call sites (the
// `self` binding on every method call, a class handle stored in an
// enclosing scope) rather than because this repo needs to track ownership.
type ObjectHolder struct {
	kind     valueKind
	num      int32
	boolean  bool
	str      string
	class    *Class
	instance *ClassInstance
}

// NewNone returns a null-valued holder.
func NewNone() *ObjectHolder {
	return &ObjectHolder{kind: kindNone}
}

// The Own construction mode has no single function here: each of the five
// typed constructors below allocates a fresh holder around a value, which
// keeps the value domain closed to Number, Bool, String, Class and
// ClassInstance.
func NewNumber(n int32) *ObjectHolder   { return &ObjectHolder{kind: kindNumber, num: n} }
func NewBool(b bool) *ObjectHolder      { return &ObjectHolder{kind: kindBool, boolean: b} }
func NewString(s string) *ObjectHolder  { return &ObjectHolder{kind: kindString, str: s} }
func NewClassValue(c *Class) *ObjectHolder {
	return &ObjectHolder{kind: kindClass, class: c}
}
func NewInstanceValue(i *ClassInstance) *ObjectHolder {
	return &ObjectHolder{kind: kindInstance, instance: i}
}

// Share returns a non-owning view of an existing holder. Under Go's GC this
// is the same pointer: there is no lifetime to extend or borrow.
func Share(h *ObjectHolder) *ObjectHolder {
	return h
}

// IsNone reports whether h holds no value.
func (h *ObjectHolder) IsNone() bool {
	return h == nil || h.kind == kindNone
}

func (h *ObjectHolder) AsNumber() (int32, bool) {
	if h == nil || h.kind != kindNumber {
		return 0, false
	}
	return h.num, true
}

func (h *ObjectHolder) AsBool() (bool, bool) {
	if h == nil || h.kind != kindBool {
		return false, false
	}
	return h.boolean, true
}

func (h *ObjectHolder) AsString() (string, bool) {
	if h == nil || h.kind != kindString {
		return "", false
	}
	return h.str, true
}

func (h *ObjectHolder) AsClass() (*Class, bool) {
	if h == nil || h.kind != kindClass {
		return nil, false
	}
	return h.class, true
}

func (h *ObjectHolder) AsInstance() (*ClassInstance, bool) {
	if h == nil || h.kind != kindInstance {
		return nil, false
	}
	return h.instance, true
}

// IsTrue implements the truthiness rule of spec.md §3: a holder is truthy
// iff it holds a non-zero Number, a non-empty String, or Bool(true).
func IsTrue(h *ObjectHolder) bool {
	if h == nil {
		return false
	}
	switch h.kind {
	case kindNumber:
		return h.num != 0
	case kindString:
		return h.str != ""
	case kindBool:
		return h.boolean
	default:
		return false
	}
}

// Closure is a name -> holder mapping serving as a lexical scope or an
// instance's field table. Assignments mutate it in place.
type Closure struct {
	enclosing *Closure
	values    map[string]*ObjectHolder
}

// NewClosure creates a scope nested inside enclosing (nil for the top level).
func NewClosure(enclosing *Closure) *Closure {
	return &Closure{enclosing: enclosing, values: make(map[string]*ObjectHolder)}
}

// Get resolves name in this scope or, failing that, an enclosing one.
func (c *Closure) Get(name string) (*ObjectHolder, bool) {
	for cur := c; cur != nil; cur = cur.enclosing {
		if v, ok := cur.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in this exact scope, shadowing any enclosing binding.
func (c *Closure) Define(name string, value *ObjectHolder) {
	c.values[name] = value
}

// Assign stores into the nearest scope (this one or an enclosing one) that
// already defines name. It reports whether such a scope was found.
func (c *Closure) Assign(name string, value *ObjectHolder) bool {
	for cur := c; cur != nil; cur = cur.enclosing {
		if _, ok := cur.values[name]; ok {
			cur.values[name] = value
			return true
		}
	}
	return false
}
