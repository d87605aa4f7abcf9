package monkey

func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case TokenLet:
		return p.parseLetStatement()
	case TokenReturn:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() Statement {
	tok := p.curToken
	if !p.expectPeek(TokenIdent) {
		return nil
	}
	name := &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(TokenAssign) {
		return nil
	}
	if p.valueMissing() {
		p.noPrefixParseFnError(p.peekToken)
		return &LetStatement{Token: tok, Name: name}
	}

	p.nextToken()
	value := p.parseExpression(lowestPrec)
	p.finishStatement(value)

	return &LetStatement{Token: tok, Name: name, Value: value}
}

// parseReturnStatement accepts a bare return: `return;`, or a return that
// is the last thing in a block or the input.
func (p *Parser) parseReturnStatement() Statement {
	tok := p.curToken
	if p.peekTokenIs(TokenSemicolon) {
		p.nextToken()
		return &ReturnStatement{Token: tok}
	}
	if p.valueMissing() {
		return &ReturnStatement{Token: tok}
	}

	p.nextToken()
	value := p.parseExpression(lowestPrec)
	p.finishStatement(value)

	return &ReturnStatement{Token: tok, Value: value}
}

func (p *Parser) parseExpressionStatement() Statement {
	tok := p.curToken
	expr := p.parseExpression(lowestPrec)
	if p.peekTokenIs(TokenSemicolon) {
		p.nextToken()
	}
	if expr == nil {
		return nil
	}
	return &ExpressionStatement{Token: tok, Expression: expr}
}

// valueMissing reports whether the token after `=` or `return` closes the
// enclosing block or ends the input. curToken is left alone so the block
// still sees its '}'.
func (p *Parser) valueMissing() bool {
	return p.peekTokenIs(TokenRBrace) || p.peekTokenIs(TokenEOF)
}

// finishStatement leaves curToken on the statement's last token. A failed
// value skips ahead to the terminating semicolon, stopping early at or before
// a closing brace.
func (p *Parser) finishStatement(value Expression) {
	if value == nil {
		for !p.curTokenIs(TokenSemicolon) && !p.curTokenIs(TokenEOF) &&
			!p.curTokenIs(TokenRBrace) && !p.peekTokenIs(TokenRBrace) {
			p.nextToken()
		}
		return
	}
	if p.peekTokenIs(TokenSemicolon) {
		p.nextToken()
	}
}

// parseBlockStatement expects curToken to be '{' and stops on the matching
// '}' or at end of input.
func (p *Parser) parseBlockStatement() *BlockStatement {
	tok := p.curToken
	stmts := []Statement{}

	p.nextToken()
	for !p.curTokenIs(TokenRBrace) && !p.curTokenIs(TokenEOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.nextToken()
	}

	return &BlockStatement{Token: tok, Statements: stmts}
}
