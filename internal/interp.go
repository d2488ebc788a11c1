package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Interpret runs the full Lex -> Parse -> Execute pipeline over source and
// writes Print output to out, grounded on the teacher's
// RunSourceWithPrinter (internal/interp.go): one entry point that wires a
// fresh Lexer and Parser, then drives the resulting tree to completion. A
// *LexerError or *parseError aborts before execution ever starts; a
// *RuntimeError aborts mid-execution. log receives a Debug trace of each
// pipeline stage and an Error entry on failure; nil selects a
// Warn-and-above-only logger (Context.NewContext's default).
func Interpret(out io.Writer, log *logrus.Logger, source []byte) error {
	ctx := NewContext(out, log)

	ctx.Log.Debug("lexing source")
	lex, err := NewLexer(source)
	if err != nil {
		ctx.Log.WithError(err).Error("lex failed")
		return err
	}

	ctx.Log.Debug("parsing token stream")
	parser := NewParser(lex)
	program, err := parser.ParseProgram()
	if err != nil {
		ctx.Log.WithError(err).Error("parse failed")
		return err
	}

	ctx.Log.Debug("executing program")
	if _, err := program.Execute(ctx.Globals, ctx); err != nil {
		if _, ok := err.(*ReturnSignal); ok {
			err = runtimeErrorf("return outside of a method body")
		}
		ctx.Log.WithError(err).Error("execution failed")
		return err
	}
	return nil
}
