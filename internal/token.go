package internal

import "fmt"

// Kind tags the variant of a Token.
type Kind int

const (
	KindNumber Kind = iota
	KindID
	KindString
	KindChar

	KindClass
	KindReturn
	KindIf
	KindElse
	KindDef
	KindPrint
	KindAnd
	KindOr
	KindNot
	KindNone
	KindTrue
	KindFalse

	KindNewline
	KindIndent
	KindDedent
	KindEOF

	KindEq
	KindNotEq
	KindLessOrEq
	KindGreaterOrEq
)

var keywords = map[string]Kind{
	"class":  KindClass,
	"return": KindReturn,
	"if":     KindIf,
	"else":   KindElse,
	"def":    KindDef,
	"print":  KindPrint,
	"and":    KindAnd,
	"or":     KindOr,
	"not":    KindNot,
	"None":   KindNone,
	"True":   KindTrue,
	"False":  KindFalse,
}

// Token is a tagged union: the payload field that matters depends on Kind.
type Token struct {
	Kind Kind
	Num  int32
	Text string
	Ch   byte
	Line int
}

// Equal reports whether two tokens have the same variant and payload.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindNumber:
		return t.Num == other.Num
	case KindID, KindString:
		return t.Text == other.Text
	case KindChar:
		return t.Ch == other.Ch
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return fmt.Sprintf("Number(%d)", t.Num)
	case KindID:
		return fmt.Sprintf("Id(%s)", t.Text)
	case KindString:
		return fmt.Sprintf("String(%q)", t.Text)
	case KindChar:
		return fmt.Sprintf("Char(%c)", t.Ch)
	case KindNewline:
		return "Newline"
	case KindIndent:
		return "Indent"
	case KindDedent:
		return "Dedent"
	case KindEOF:
		return "Eof"
	case KindEq:
		return "Eq"
	case KindNotEq:
		return "NotEq"
	case KindLessOrEq:
		return "LessOrEq"
	case KindGreaterOrEq:
		return "GreaterOrEq"
	default:
		for text, k := range keywords {
			if k == t.Kind {
				return text
			}
		}
		return "?"
	}
}
