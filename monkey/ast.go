package monkey

// Node is implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() Position
}

// Statement is the closed set of statement nodes.
type Statement interface {
	Node
	stmtNode()
}

// Expression is the closed set of expression nodes.
type Expression interface {
	Node
	exprNode()
}

// Program is the root of every tree the parser produces.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) == 0 {
		return ""
	}
	return p.Statements[0].TokenLiteral()
}

func (p *Program) Pos() Position {
	if len(p.Statements) == 0 {
		return Position{}
	}
	return p.Statements[0].Pos()
}

type LetStatement struct {
	Token Token
	Name  *Identifier
	Value Expression
}

func (s *LetStatement) stmtNode()            {}
func (s *LetStatement) TokenLiteral() string { return s.Token.Literal }
func (s *LetStatement) Pos() Position        { return s.Token.Pos }

type ReturnStatement struct {
	Token Token
	Value Expression
}

func (s *ReturnStatement) stmtNode()            {}
func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ReturnStatement) Pos() Position        { return s.Token.Pos }

type ExpressionStatement struct {
	Token      Token
	Expression Expression
}

func (s *ExpressionStatement) stmtNode()            {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal }
func (s *ExpressionStatement) Pos() Position        { return s.Token.Pos }

// BlockStatement is a brace-delimited statement list. It appears only as the
// body of if and fn expressions.
type BlockStatement struct {
	Token      Token
	Statements []Statement
}

func (s *BlockStatement) stmtNode()            {}
func (s *BlockStatement) TokenLiteral() string { return s.Token.Literal }
func (s *BlockStatement) Pos() Position        { return s.Token.Pos }

type Identifier struct {
	Token Token
	Value string
}

func (e *Identifier) exprNode()            {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal }
func (e *Identifier) Pos() Position        { return e.Token.Pos }

type IntegerLiteral struct {
	Token Token
	Value int64
}

func (e *IntegerLiteral) exprNode()            {}
func (e *IntegerLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *IntegerLiteral) Pos() Position        { return e.Token.Pos }

type Boolean struct {
	Token Token
	Value bool
}

func (e *Boolean) exprNode()            {}
func (e *Boolean) TokenLiteral() string { return e.Token.Literal }
func (e *Boolean) Pos() Position        { return e.Token.Pos }

type PrefixExpression struct {
	Token    Token
	Operator string
	Right    Expression
}

func (e *PrefixExpression) exprNode()            {}
func (e *PrefixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *PrefixExpression) Pos() Position        { return e.Token.Pos }

type InfixExpression struct {
	Token    Token
	Left     Expression
	Operator string
	Right    Expression
}

func (e *InfixExpression) exprNode()            {}
func (e *InfixExpression) TokenLiteral() string { return e.Token.Literal }
func (e *InfixExpression) Pos() Position        { return e.Token.Pos }

// IfExpression has a nil Alternative when there is no else branch.
type IfExpression struct {
	Token       Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (e *IfExpression) exprNode()            {}
func (e *IfExpression) TokenLiteral() string { return e.Token.Literal }
func (e *IfExpression) Pos() Position        { return e.Token.Pos }

type FunctionLiteral struct {
	Token      Token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (e *FunctionLiteral) exprNode()            {}
func (e *FunctionLiteral) TokenLiteral() string { return e.Token.Literal }
func (e *FunctionLiteral) Pos() Position        { return e.Token.Pos }

// CallExpression is part of the tree model for later stages. The parser
// registers no call operator, so it never builds one.
type CallExpression struct {
	Token     Token
	Function  Expression
	Arguments []Expression
}

func (e *CallExpression) exprNode()            {}
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal }
func (e *CallExpression) Pos() Position        { return e.Token.Pos }
