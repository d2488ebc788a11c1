package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Context is threaded through every Execute call: the output byte sink
// (spec.md §6's "OutputStream()") plus a structured logger the pipeline
// stages use for diagnostics. The driver owns the concrete writer and
// logger; nothing under internal/ ever reaches for os.Stdout directly.
//
// Globals is the program's top-level scope. There is no module/import
// system (spec.md §1 Non-goals), so every class is effectively a global;
// ClassInstance.Call chains a method's fresh scope to Globals so a method
// body can reference a sibling top-level class or variable by name, the
// same way the teacher's closures capture their defining environment.
type Context struct {
	Out     io.Writer
	Log     *logrus.Logger
	Globals *Closure
}

// NewContext builds a Context around out, defaulting to a logger that
// discards everything below Warn when log is nil.
func NewContext(out io.Writer, log *logrus.Logger) *Context {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &Context{Out: out, Log: log, Globals: NewClosure(nil)}
}
