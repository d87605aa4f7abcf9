package monkey

const (
	_ int = iota
	lowestPrec
	precEquals
	precLessGreater
	precSum
	precProduct
	precPrefix
	precCall
)

// precCall sits at the top of the ladder but no token maps to it: the call
// operator is not registered.
var precedences = map[TokenType]int{
	TokenEQ:       precEquals,
	TokenNotEQ:    precEquals,
	TokenLT:       precLessGreater,
	TokenGT:       precLessGreater,
	TokenPlus:     precSum,
	TokenMinus:    precSum,
	TokenSlash:    precProduct,
	TokenAsterisk: precProduct,
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return lowestPrec
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return lowestPrec
}
