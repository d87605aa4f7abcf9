package monkey

// Lexer turns source text into tokens one call at a time. Input is read
// byte by byte; nothing is decoded as UTF-8.
type Lexer struct {
	input string

	position     int
	readPosition int
	ch           byte

	line   int
	column int
}

// NewLexer returns a lexer positioned at the first byte of input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken returns the next token. Once the input is exhausted every call
// returns an EOF token.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := Position{Line: l.line, Column: l.column}
	if l.position >= len(l.input) {
		return Token{Type: TokenEOF, Literal: "", Pos: pos}
	}

	var tok Token
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenEQ, Literal: "=="}
		} else {
			tok = l.makeToken(TokenAssign)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenNotEQ, Literal: "!="}
		} else {
			tok = l.makeToken(TokenBang)
		}
	case '+':
		tok = l.makeToken(TokenPlus)
	case '-':
		tok = l.makeToken(TokenMinus)
	case '*':
		tok = l.makeToken(TokenAsterisk)
	case '/':
		tok = l.makeToken(TokenSlash)
	case '<':
		tok = l.makeToken(TokenLT)
	case '>':
		tok = l.makeToken(TokenGT)
	case ',':
		tok = l.makeToken(TokenComma)
	case ';':
		tok = l.makeToken(TokenSemicolon)
	case '(':
		tok = l.makeToken(TokenLParen)
	case ')':
		tok = l.makeToken(TokenRParen)
	case '{':
		tok = l.makeToken(TokenLBrace)
	case '}':
		tok = l.makeToken(TokenRBrace)
	default:
		switch {
		case isLetter(l.ch):
			literal := l.readIdentifier()
			return Token{Type: LookupIdent(literal), Literal: literal, Pos: pos}
		case isDigit(l.ch):
			return Token{Type: TokenInt, Literal: l.readNumber(), Pos: pos}
		default:
			tok = l.makeToken(TokenIllegal)
		}
	}

	tok.Pos = pos
	l.readChar()
	return tok
}

// makeToken slices the current byte out of the input so bytes >= 0x80 are
// kept as-is rather than re-encoded as runes.
func (l *Lexer) makeToken(tt TokenType) Token {
	return Token{Type: tt, Literal: l.input[l.position : l.position+1]}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
