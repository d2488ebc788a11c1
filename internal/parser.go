package internal

// Parser is a recursive-descent parser, one function per grammar rule,
// driven by the Lexer's pull-based Current/Advance/Expect contract
// (spec.md §4.5). It is grounded on the teacher's internal/parser.go shape
// (match/expect helpers plus one function per precedence level), adapted
// from grotsky's expression/statement grammar to this language's node
// catalogue (spec.md §4.4).
type Parser struct {
	lex *Lexer
}

// parseError is the parser's own error taxon, distinct from *LexerError
// (tokenization failures) and *RuntimeError (evaluation failures).
type parseError struct {
	Msg  string
	Line int
}

func (e *parseError) Error() string {
	return e.Msg
}

func newParseError(line int, msg string) *parseError {
	return &parseError{Msg: msg, Line: line}
}

// NewParser builds a Parser over an already-constructed Lexer positioned
// at its first token.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// ParseProgram parses the entire token stream into one top-level Compound,
// the root of the node tree consumed by Interpret.
func (p *Parser) ParseProgram() (*Compound, error) {
	var stmts []Node
	for p.lex.Current().Kind != KindEOF {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &Compound{Stmts: stmts}, nil
}

func (p *Parser) cur() Token {
	return p.lex.Current()
}

func (p *Parser) advance() error {
	_, err := p.lex.Advance()
	return err
}

func (p *Parser) expect(k Kind) (Token, error) {
	return p.lex.Expect(k)
}

func (p *Parser) expectChar(ch byte) error {
	tok := p.cur()
	if tok.Kind != KindChar || tok.Ch != ch {
		return newParseError(tok.Line, "expected '"+string(ch)+"', found "+tok.String())
	}
	return nil
}

func (p *Parser) isChar(ch byte) bool {
	tok := p.cur()
	return tok.Kind == KindChar && tok.Ch == ch
}

// statement dispatches on the leading keyword of a logical line.
func (p *Parser) statement() (Node, error) {
	switch p.cur().Kind {
	case KindClass:
		return p.classDecl()
	case KindIf:
		return p.ifStmt()
	case KindReturn:
		return p.returnStmt()
	case KindPrint:
		return p.printStmt()
	default:
		return p.assignOrExprStmt()
	}
}

// block parses "NEWLINE INDENT statement+ DEDENT", the body of any
// colon-headed construct (spec.md §4.1/§4.5).
func (p *Parser) block() (Node, error) {
	if _, err := p.expect(KindNewline); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(KindIndent); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var stmts []Node
	for p.cur().Kind != KindDedent {
		if p.cur().Kind == KindEOF {
			return nil, newParseError(p.cur().Line, "unexpected end of input inside block")
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &Compound{Stmts: stmts}, nil
}

// classDecl parses "class Name[(Parent)]: " followed by a block whose
// statements are all method declarations (spec.md §4.4 ClassDefinition).
func (p *Parser) classDecl() (Node, error) {
	if err := p.advance(); err != nil { // consume 'class'
		return nil, err
	}
	nameTok, err := p.expect(KindID)
	if err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var parentName string
	if p.isChar('(') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		parentTok, err := p.expect(KindID)
		if err != nil {
			return nil, err
		}
		parentName = parentTok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	if _, err := p.expect(KindNewline); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(KindIndent); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var methods []MethodDecl
	for p.cur().Kind != KindDedent {
		if p.cur().Kind == KindEOF {
			return nil, newParseError(p.cur().Line, "unexpected end of input inside class body")
		}
		md, err := p.defDecl()
		if err != nil {
			return nil, err
		}
		methods = append(methods, md)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return &ClassDefinition{Name: nameTok.Text, ParentName: parentName, MethodDecls: methods}, nil
}

// defDecl parses "def name(params):" followed by a block, producing a
// MethodDecl whose Body is wrapped in a *MethodBody.
func (p *Parser) defDecl() (MethodDecl, error) {
	if _, err := p.expect(KindDef); err != nil {
		return MethodDecl{}, err
	}
	if err := p.advance(); err != nil {
		return MethodDecl{}, err
	}
	nameTok, err := p.expect(KindID)
	if err != nil {
		return MethodDecl{}, err
	}
	if err := p.advance(); err != nil {
		return MethodDecl{}, err
	}
	if err := p.expectChar('('); err != nil {
		return MethodDecl{}, err
	}
	if err := p.advance(); err != nil {
		return MethodDecl{}, err
	}

	var params []string
	if !p.isChar(')') {
		for {
			pt, err := p.expect(KindID)
			if err != nil {
				return MethodDecl{}, err
			}
			params = append(params, pt.Text)
			if err := p.advance(); err != nil {
				return MethodDecl{}, err
			}
			if p.isChar(',') {
				if err := p.advance(); err != nil {
					return MethodDecl{}, err
				}
				continue
			}
			break
		}
	}
	if err := p.expectChar(')'); err != nil {
		return MethodDecl{}, err
	}
	if err := p.advance(); err != nil {
		return MethodDecl{}, err
	}
	if err := p.expectChar(':'); err != nil {
		return MethodDecl{}, err
	}
	if err := p.advance(); err != nil {
		return MethodDecl{}, err
	}

	body, err := p.block()
	if err != nil {
		return MethodDecl{}, err
	}
	// A leading parameter named "self" is the implicit receiver;
	// ClassInstance.Call binds "self" itself (instance.go), so it is
	// dropped here rather than double-bound and double-counted against
	// arity (spec.md §4.3). A first parameter with any other name is kept
	// as an ordinary parameter.
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}
	return MethodDecl{Name: nameTok.Text, Params: params, Body: &MethodBody{Body: body}}, nil
}

// ifStmt parses "if cond:" block ["else:" block] (spec.md §4.4 IfElse).
func (p *Parser) ifStmt() (Node, error) {
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	cond, err := p.exprTop()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	thenBlock, err := p.block()
	if err != nil {
		return nil, err
	}

	var elseBlock Node
	if p.cur().Kind == KindElse {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err = p.block()
		if err != nil {
			return nil, err
		}
	}

	return &IfElse{Cond: cond, Then: thenBlock, Else: elseBlock}, nil
}

// returnStmt parses "return [expr]" NEWLINE, defaulting to None
// (spec.md §4.4 Return).
func (p *Parser) returnStmt() (Node, error) {
	if err := p.advance(); err != nil { // consume 'return'
		return nil, err
	}
	var expr Node
	if p.cur().Kind == KindNewline {
		expr = &Literal{Value: NewNone()}
	} else {
		var err error
		expr, err = p.exprTop()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(KindNewline); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &Return{Expr: expr}, nil
}

// printStmt parses "print expr (',' expr)*" NEWLINE (spec.md §4.4 Print).
func (p *Parser) printStmt() (Node, error) {
	if err := p.advance(); err != nil { // consume 'print'
		return nil, err
	}
	var args []Node
	arg, err := p.exprTop()
	if err != nil {
		return nil, err
	}
	args = append(args, arg)
	for p.isChar(',') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.exprTop()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(KindNewline); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &Print{Args: args}, nil
}

// assignOrExprStmt parses a logical line that is either an assignment
// ("path = expr") or a bare expression evaluated for effect (e.g. a
// standalone method call), per spec.md §4.4 Assignment/FieldAssignment.
func (p *Parser) assignOrExprStmt() (Node, error) {
	expr, err := p.exprTop()
	if err != nil {
		return nil, err
	}

	if p.isChar('=') {
		vv, ok := expr.(*VariableValue)
		if !ok {
			return nil, newParseError(p.cur().Line, "invalid assignment target")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.exprTop()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(KindNewline); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if len(vv.Path) == 1 {
			return &Assignment{Name: vv.Path[0], Rhs: rhs}, nil
		}
		receiver := &VariableValue{Path: vv.Path[:len(vv.Path)-1]}
		field := vv.Path[len(vv.Path)-1]
		return &FieldAssignment{Receiver: receiver, Field: field, Rhs: rhs}, nil
	}

	if _, err := p.expect(KindNewline); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return expr, nil
}

// exprTop is the entry point of the expression grammar: or-level and down.
func (p *Parser) exprTop() (Node, error) {
	return p.orExpr()
}

func (p *Parser) orExpr() (Node, error) {
	lhs, err := p.andExpr()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == KindOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		lhs = &Or{Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) andExpr() (Node, error) {
	lhs, err := p.notExpr()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == KindAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.notExpr()
		if err != nil {
			return nil, err
		}
		lhs = &And{Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) notExpr() (Node, error) {
	if p.cur().Kind == KindNot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.notExpr()
		if err != nil {
			return nil, err
		}
		return &Not{Inner: inner}, nil
	}
	return p.equality()
}

func (p *Parser) equality() (Node, error) {
	lhs, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == KindEq || p.cur().Kind == KindNotEq {
		kind := CompareEq
		if p.cur().Kind == KindNotEq {
			kind = CompareNotEq
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.comparison()
		if err != nil {
			return nil, err
		}
		lhs = &Comparison{Kind: kind, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) comparison() (Node, error) {
	lhs, err := p.additive()
	if err != nil {
		return nil, err
	}
	for {
		var kind CompareKind
		switch {
		case p.isChar('<'):
			kind = CompareLess
		case p.isChar('>'):
			kind = CompareGreater
		case p.cur().Kind == KindLessOrEq:
			kind = CompareLessOrEq
		case p.cur().Kind == KindGreaterOrEq:
			kind = CompareGreaterOrEq
		default:
			return lhs, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.additive()
		if err != nil {
			return nil, err
		}
		lhs = &Comparison{Kind: kind, Lhs: lhs, Rhs: rhs}
	}
}

func (p *Parser) additive() (Node, error) {
	lhs, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.isChar('+') || p.isChar('-') {
		op := string(p.cur().Ch)
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		lhs = &BinaryOp{Op: op, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) multiplicative() (Node, error) {
	lhs, err := p.postfix()
	if err != nil {
		return nil, err
	}
	for p.isChar('*') || p.isChar('/') {
		op := string(p.cur().Ch)
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := p.postfix()
		if err != nil {
			return nil, err
		}
		lhs = &BinaryOp{Op: op, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

// parseArgs parses a parenthesized, comma-separated argument list whose
// opening '(' is the current token.
func (p *Parser) parseArgs() ([]Node, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var args []Node
	if !p.isChar(')') {
		for {
			arg, err := p.exprTop()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.isChar(',') {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return args, nil
}

// postfix parses literals, parenthesized groups, and identifier chains —
// dotted field paths, constructor calls, and method calls, including
// chains continuing off a call result (spec.md §4.4 VariableValue,
// NewInstance, MethodCall; FieldAccess is parser plumbing, see
// ast_fieldaccess.go).
func (p *Parser) postfix() (Node, error) {
	tok := p.cur()

	switch tok.Kind {
	case KindNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: NewNumber(tok.Num)}, nil
	case KindString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: NewString(tok.Text)}, nil
	case KindTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: NewBool(true)}, nil
	case KindFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: NewBool(false)}, nil
	case KindNone:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Literal{Value: NewNone()}, nil
	}

	if tok.Kind == KindChar && tok.Ch == '(' {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.exprTop()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return inner, nil
	}

	if tok.Kind != KindID {
		return nil, newParseError(tok.Line, "unexpected token "+tok.String())
	}

	pendingPath := []string{tok.Text}
	var expr Node
	if err := p.advance(); err != nil {
		return nil, err
	}

	for p.isChar('.') {
		if err := p.advance(); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(KindID)
		if err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}

		if p.isChar('(') {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			var receiver Node
			if pendingPath != nil {
				receiver = &VariableValue{Path: pendingPath}
				pendingPath = nil
			} else {
				receiver = expr
			}
			expr = &MethodCall{Receiver: receiver, Name: nameTok.Text, Args: args}
			continue
		}

		if pendingPath != nil {
			pendingPath = append(pendingPath, nameTok.Text)
		} else {
			expr = &FieldAccess{Base: expr, Field: nameTok.Text}
		}
	}

	if p.isChar('(') && expr == nil {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if len(pendingPath) == 1 && pendingPath[0] == "str" && len(args) == 1 {
			return &Stringify{Inner: args[0]}, nil
		}
		return &NewInstance{ClassExpr: &VariableValue{Path: pendingPath}, Args: args}, nil
	}

	if pendingPath != nil {
		return &VariableValue{Path: pendingPath}, nil
	}
	return expr, nil
}
