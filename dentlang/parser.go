package dentlang

// Parse builds the program AST from a token sequence by recursive
// descent. The grammar is LL(1) once INDENT/DEDENT are materialized; the
// only lookahead is distinguishing assignment from an expression
// statement starting with an identifier.
func Parse(tokens []*Token) (*Program, error) {
	p := &parser{
		stream: NewSliceTokenStream(tokens),
	}
	return p.parseProgram()
}

type parser struct {
	stream TokenStream
}

func (p *parser) expect(kind TokenKind) (*Token, error) {
	t := p.stream.Current()
	if t.Kind != kind {
		return nil, &ParseError{
			Expected: kind.String(),
			Found:    t,
		}
	}
	p.stream.Consume()
	return t, nil
}

func (p *parser) parseProgram() (*Program, error) {
	program := &Program{}
	for p.stream.Current().Kind != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Stmts = append(program.Stmts, stmt)
	}
	return program, nil
}

func (p *parser) parseStatement() (Stmt, error) {
	t := p.stream.Current()

	switch t.Kind {

	case TokenIf:
		return p.parseIf()

	case TokenWhile:
		return p.parseWhile()

	case TokenIdent:
		if p.stream.Peek().Kind == TokenAssign {
			return p.parseAssign()
		}
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: expr}, nil
}

// endOfStatement consumes the statement-terminating NEWLINE. A missing
// terminator is tolerated only at end of input.
func (p *parser) endOfStatement() error {
	t := p.stream.Current()
	switch t.Kind {
	case TokenNewline:
		p.stream.Consume()
		return nil
	case TokenEOF:
		return nil
	}
	return &ParseError{
		Expected: TokenNewline.String(),
		Found:    t,
	}
}

func (p *parser) parseAssign() (Stmt, error) {
	name, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenAssign); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &Assign{
		Name: name.Text,
		Expr: expr,
		Pos:  name.Pos,
	}, nil
}

func (p *parser) parseIf() (Stmt, error) {
	if _, err := p.expect(TokenIf); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBlock *Block
	if p.stream.Current().Kind == TokenElse {
		p.stream.Consume()
		if _, err := p.expect(TokenColon); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	return &If{
		Cond: cond,
		Then: then,
		Else: elseBlock,
	}, nil
}

func (p *parser) parseWhile() (Stmt, error) {
	if _, err := p.expect(TokenWhile); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &While{
		Cond: cond,
		Body: body,
	}, nil
}

// parseBlock consumes INDENT statement+ DEDENT. The tokenizer suppresses
// the NEWLINE of the introducing ':' line, but a stray one is accepted so
// hand-built token sequences also parse. An empty indented block is a
// parse error.
func (p *parser) parseBlock() (*Block, error) {
	if p.stream.Current().Kind == TokenNewline {
		p.stream.Consume()
	}
	if _, err := p.expect(TokenIndent); err != nil {
		return nil, err
	}

	block := &Block{}
	for {
		t := p.stream.Current()
		if t.Kind == TokenDedent || t.Kind == TokenEOF {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}

	if len(block.Stmts) == 0 {
		return nil, &ParseError{
			Expected: "statement",
			Found:    p.stream.Current(),
		}
	}
	if _, err := p.expect(TokenDedent); err != nil {
		return nil, err
	}
	return block, nil
}

func (p *parser) parseExpression() (Expr, error) {
	left, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	for {
		t := p.stream.Current()
		switch t.Kind {
		case TokenLt, TokenGt, TokenLe, TokenGe, TokenEq, TokenNe:
		default:
			return left, nil
		}
		p.stream.Consume()
		right, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Op:    t.Kind,
			Left:  left,
			Right: right,
			Pos:   t.Pos,
		}
	}
}

func (p *parser) parseArith() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		t := p.stream.Current()
		if t.Kind != TokenAdd && t.Kind != TokenSub {
			return left, nil
		}
		p.stream.Consume()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Op:    t.Kind,
			Left:  left,
			Right: right,
			Pos:   t.Pos,
		}
	}
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		t := p.stream.Current()
		if t.Kind != TokenMul && t.Kind != TokenDiv {
			return left, nil
		}
		p.stream.Consume()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Op:    t.Kind,
			Left:  left,
			Right: right,
			Pos:   t.Pos,
		}
	}
}

func (p *parser) parseFactor() (Expr, error) {
	t := p.stream.Current()

	switch t.Kind {

	case TokenNumber:
		p.stream.Consume()
		return &Number{
			Value: t.Value,
			Pos:   t.Pos,
		}, nil

	case TokenIdent:
		p.stream.Consume()
		return &Variable{
			Name: t.Text,
			Pos:  t.Pos,
		}, nil

	case TokenLParen:
		p.stream.Consume()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, &ParseError{
		Expected: "expression",
		Found:    t,
	}
}
