package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokensOf(t *testing.T, src string) []Token {
	t.Helper()
	lex, err := NewLexer([]byte(src))
	require.NoError(t, err)

	var out []Token
	for {
		tok := lex.Current()
		out = append(out, tok)
		if tok.Kind == KindEOF {
			break
		}
		_, err := lex.Advance()
		require.NoError(t, err)
	}
	return out
}

func TestLexerSimpleAssignment(t *testing.T) {
	toks := tokensOf(t, "x = 1\n")
	want := []Token{
		{Kind: KindID, Text: "x"},
		{Kind: KindChar, Ch: '='},
		{Kind: KindNumber, Num: 1},
		{Kind: KindNewline},
		{Kind: KindEOF},
	}
	require.Len(t, toks, len(want))
	for i, w := range want {
		require.Truef(t, toks[i].Equal(w), "token %d: got %s, want %s", i, toks[i].String(), w.String())
	}
}

func TestLexerIndentAndDedent(t *testing.T) {
	toks := tokensOf(t, "if x == 2:\n  y = 3\n")
	wantKinds := []Kind{
		KindIf, KindID, KindEq, KindNumber, KindChar, KindNewline,
		KindIndent, KindID, KindChar, KindNumber, KindNewline,
		KindDedent, KindEOF,
	}
	require.Len(t, toks, len(wantKinds))
	for i, k := range wantKinds {
		require.Equalf(t, k, toks[i].Kind, "token %d (%s)", i, toks[i].String())
	}
}

func TestLexerMultipleDedentsAtEOF(t *testing.T) {
	toks := tokensOf(t, "if True:\n  if True:\n    x = 1\n")
	var dedents int
	for _, tok := range toks {
		if tok.Kind == KindDedent {
			dedents++
		}
	}
	require.Equal(t, 2, dedents)
	require.Equal(t, KindEOF, toks[len(toks)-1].Kind)
}

func TestLexerBlankAndCommentLinesCollapse(t *testing.T) {
	toks := tokensOf(t, "x = 1\n\n# a comment\n\ny = 2\n")
	var newlines int
	for _, tok := range toks {
		if tok.Kind == KindNewline {
			newlines++
		}
	}
	require.Equal(t, 2, newlines)
}

func advanceUntilError(t *testing.T, lex *Lexer) error {
	t.Helper()
	for i := 0; i < 20; i++ {
		if lex.Current().Kind == KindEOF {
			return nil
		}
		if _, err := lex.Advance(); err != nil {
			return err
		}
	}
	t.Fatal("did not reach EOF or an error within 20 advances")
	return nil
}

func TestLexerTabIndentationIsAnError(t *testing.T) {
	lex, err := NewLexer([]byte("if True:\n\tx = 1\n"))
	require.NoError(t, err)
	err = advanceUntilError(t, lex)
	require.Error(t, err)
	require.IsType(t, &LexerError{}, err)
}

func TestLexerOddIndentationIsAnError(t *testing.T) {
	lex, err := NewLexer([]byte("if True:\n   x = 1\n"))
	require.NoError(t, err)
	err = advanceUntilError(t, lex)
	require.Error(t, err)
	require.IsType(t, &LexerError{}, err)
}

func TestLexerStringEscapes(t *testing.T) {
	toks := tokensOf(t, `x = "a\nb\tc\\d"` + "\n")
	require.Equal(t, KindString, toks[2].Kind)
	require.Equal(t, "a\nb\tc\\d", toks[2].Text)
}

func TestLexerUnrecognizedEscapeIsAnError(t *testing.T) {
	lex, err := NewLexer([]byte(`x = "a\qb"` + "\n"))
	require.NoError(t, err)
	_, err = lex.Advance() // '='
	require.NoError(t, err)
	_, err = lex.Advance() // the malformed string literal
	require.Error(t, err)
	require.IsType(t, &LexerError{}, err)
}

func TestLexerUnterminatedStringIsAnError(t *testing.T) {
	lex, err := NewLexer([]byte(`x = "unterminated` + "\n"))
	require.NoError(t, err)
	_, err = lex.Advance() // '='
	require.NoError(t, err)
	_, err = lex.Advance() // the unterminated string literal
	require.Error(t, err)
	require.IsType(t, &LexerError{}, err)
}
