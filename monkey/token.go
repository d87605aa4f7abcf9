package monkey

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	TokenIllegal TokenType = "ILLEGAL"
	TokenEOF     TokenType = "EOF"

	TokenIdent TokenType = "IDENT"
	TokenInt   TokenType = "INT"

	TokenAssign   TokenType = "="
	TokenPlus     TokenType = "+"
	TokenMinus    TokenType = "-"
	TokenBang     TokenType = "!"
	TokenAsterisk TokenType = "*"
	TokenSlash    TokenType = "/"
	TokenLT       TokenType = "<"
	TokenGT       TokenType = ">"
	TokenEQ       TokenType = "=="
	TokenNotEQ    TokenType = "!="

	TokenComma     TokenType = ","
	TokenSemicolon TokenType = ";"
	TokenLParen    TokenType = "("
	TokenRParen    TokenType = ")"
	TokenLBrace    TokenType = "{"
	TokenRBrace    TokenType = "}"

	TokenFunction TokenType = "FUNCTION"
	TokenLet      TokenType = "LET"
	TokenTrue     TokenType = "TRUE"
	TokenFalse    TokenType = "FALSE"
	TokenIf       TokenType = "IF"
	TokenElse     TokenType = "ELSE"
	TokenReturn   TokenType = "RETURN"
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies the line and column of a token's first byte.
type Position struct {
	Line   int
	Column int
}

// keywords is filled at package init and only read afterwards.
var keywords = map[string]TokenType{
	"fn":     TokenFunction,
	"let":    TokenLet,
	"true":   TokenTrue,
	"false":  TokenFalse,
	"if":     TokenIf,
	"else":   TokenElse,
	"return": TokenReturn,
}

// LookupIdent returns the keyword type for ident, or TokenIdent.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return TokenIdent
}

// Keywords returns the reserved words in no particular order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for word := range keywords {
		out = append(out, word)
	}
	return out
}
