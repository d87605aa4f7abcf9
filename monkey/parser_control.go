package monkey

func (p *Parser) parseIfExpression() Expression {
	tok := p.curToken
	if !p.expectPeek(TokenLParen) {
		return nil
	}

	p.nextToken()
	condition := p.parseExpression(lowestPrec)
	if condition == nil {
		return nil
	}

	if !p.expectPeek(TokenRParen) {
		return nil
	}
	if !p.expectPeek(TokenLBrace) {
		return nil
	}
	consequence := p.parseBlockStatement()

	var alternative *BlockStatement
	if p.peekTokenIs(TokenElse) {
		p.nextToken()
		if !p.expectPeek(TokenLBrace) {
			return nil
		}
		alternative = p.parseBlockStatement()
	}

	return &IfExpression{
		Token:       tok,
		Condition:   condition,
		Consequence: consequence,
		Alternative: alternative,
	}
}

func (p *Parser) parseFunctionLiteral() Expression {
	tok := p.curToken
	if !p.expectPeek(TokenLParen) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}

	if !p.expectPeek(TokenLBrace) {
		return nil
	}
	body := p.parseBlockStatement()

	return &FunctionLiteral{Token: tok, Parameters: params, Body: body}
}

// parseFunctionParameters expects curToken to be '(' and leaves it on ')'.
func (p *Parser) parseFunctionParameters() ([]*Identifier, bool) {
	params := []*Identifier{}

	if p.peekTokenIs(TokenRParen) {
		p.nextToken()
		return params, true
	}

	if !p.expectPeek(TokenIdent) {
		return nil, false
	}
	params = append(params, &Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(TokenComma) {
		p.nextToken()
		if !p.expectPeek(TokenIdent) {
			return nil, false
		}
		params = append(params, &Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(TokenRParen) {
		return nil, false
	}

	return params, true
}
