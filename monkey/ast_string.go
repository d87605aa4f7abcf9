package monkey

import "strings"

// The String methods render the canonical form: infix and prefix expressions
// are fully parenthesised, so re-parsing the output of an expression yields
// the same tree. Missing children from a failed parse render as "".

func (p *Program) String() string {
	parts := make([]string, 0, len(p.Statements))
	for _, stmt := range p.Statements {
		parts = append(parts, stmt.String())
	}
	return strings.Join(parts, "\n")
}

func (s *LetStatement) String() string {
	var b strings.Builder
	b.WriteString(s.TokenLiteral())
	b.WriteString(" ")
	if s.Name != nil {
		b.WriteString(s.Name.String())
	}
	b.WriteString(" = ")
	b.WriteString(exprString(s.Value))
	b.WriteString(";")
	return b.String()
}

func (s *ReturnStatement) String() string {
	if s.Value == nil {
		return s.TokenLiteral() + ";"
	}
	return s.TokenLiteral() + " " + s.Value.String() + ";"
}

func (s *ExpressionStatement) String() string {
	return exprString(s.Expression)
}

func (s *BlockStatement) String() string {
	if s == nil {
		return ""
	}
	if len(s.Statements) == 0 {
		return "{ }"
	}
	parts := make([]string, 0, len(s.Statements))
	for _, stmt := range s.Statements {
		parts = append(parts, stmt.String())
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (e *Identifier) String() string     { return e.Value }
func (e *IntegerLiteral) String() string { return e.Token.Literal }
func (e *Boolean) String() string        { return e.Token.Literal }

func (e *PrefixExpression) String() string {
	return "(" + e.Operator + exprString(e.Right) + ")"
}

func (e *InfixExpression) String() string {
	return "(" + exprString(e.Left) + " " + e.Operator + " " + exprString(e.Right) + ")"
}

func (e *IfExpression) String() string {
	var b strings.Builder
	b.WriteString("if (")
	b.WriteString(exprString(e.Condition))
	b.WriteString(") ")
	b.WriteString(e.Consequence.String())
	if e.Alternative != nil {
		b.WriteString(" else ")
		b.WriteString(e.Alternative.String())
	}
	return b.String()
}

func (e *FunctionLiteral) String() string {
	params := make([]string, 0, len(e.Parameters))
	for _, param := range e.Parameters {
		params = append(params, param.String())
	}
	return e.TokenLiteral() + "(" + strings.Join(params, ", ") + ") " + e.Body.String()
}

func (e *CallExpression) String() string {
	args := make([]string, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		args = append(args, exprString(arg))
	}
	return exprString(e.Function) + "(" + strings.Join(args, ", ") + ")"
}

func exprString(expr Expression) string {
	if expr == nil {
		return ""
	}
	return expr.String()
}
