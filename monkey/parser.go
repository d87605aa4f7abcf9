package monkey

type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression
)

// Parser builds a Program from a Lexer using two tokens of lookahead.
// A Parser is single use.
type Parser struct {
	l *Lexer

	curToken  Token
	peekToken Token

	errors []*ParseError

	prefixFns map[TokenType]prefixParseFn
	infixFns  map[TokenType]infixParseFn
}

// NewParser returns a parser reading from l.
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = make(map[TokenType]prefixParseFn)
	p.infixFns = make(map[TokenType]infixParseFn)

	p.registerPrefix(TokenIdent, p.parseIdentifier)
	p.registerPrefix(TokenInt, p.parseIntegerLiteral)
	p.registerPrefix(TokenTrue, p.parseBoolean)
	p.registerPrefix(TokenFalse, p.parseBoolean)
	p.registerPrefix(TokenBang, p.parsePrefixExpression)
	p.registerPrefix(TokenMinus, p.parsePrefixExpression)
	p.registerPrefix(TokenLParen, p.parseGroupedExpression)
	p.registerPrefix(TokenIf, p.parseIfExpression)
	p.registerPrefix(TokenFunction, p.parseFunctionLiteral)

	for _, tt := range []TokenType{
		TokenPlus, TokenMinus, TokenSlash, TokenAsterisk,
		TokenEQ, TokenNotEQ, TokenLT, TokenGT,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}

	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(tt TokenType, fn prefixParseFn) {
	p.prefixFns[tt] = fn
}

func (p *Parser) registerInfix(tt TokenType, fn infixParseFn) {
	p.infixFns[tt] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(tt TokenType) bool {
	return p.curToken.Type == tt
}

func (p *Parser) peekTokenIs(tt TokenType) bool {
	return p.peekToken.Type == tt
}

// expectPeek advances only when the peek token has type tt.
func (p *Parser) expectPeek(tt TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

// ParseProgram consumes the whole token stream. Malformed input produces
// diagnostics, available through Errors and Diagnostics, and a partial tree.
func (p *Parser) ParseProgram() *Program {
	program := &Program{Statements: []Statement{}}

	for !p.curTokenIs(TokenEOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}
