package monkey

import "testing"

func TestProgramString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: Token{Type: TokenLet, Literal: "let"},
				Name: &Identifier{
					Token: Token{Type: TokenIdent, Literal: "myVar"},
					Value: "myVar",
				},
				Value: &Identifier{
					Token: Token{Type: TokenIdent, Literal: "anotherVar"},
					Value: "anotherVar",
				},
			},
		},
	}

	if got := program.String(); got != "let myVar = anotherVar;" {
		t.Fatalf("program.String() wrong. got=%q", got)
	}
	if got := program.TokenLiteral(); got != "let" {
		t.Fatalf("program.TokenLiteral() wrong. got=%q", got)
	}
}

func TestCallExpressionString(t *testing.T) {
	call := &CallExpression{
		Token:    Token{Type: TokenLParen, Literal: "("},
		Function: &Identifier{Token: Token{Type: TokenIdent, Literal: "add"}, Value: "add"},
		Arguments: []Expression{
			&IntegerLiteral{Token: Token{Type: TokenInt, Literal: "1"}, Value: 1},
			&InfixExpression{
				Token:    Token{Type: TokenAsterisk, Literal: "*"},
				Left:     &IntegerLiteral{Token: Token{Type: TokenInt, Literal: "2"}, Value: 2},
				Operator: "*",
				Right:    &IntegerLiteral{Token: Token{Type: TokenInt, Literal: "3"}, Value: 3},
			},
		},
	}
	if got := call.String(); got != "add(1, (2 * 3))" {
		t.Fatalf("call.String() = %q", got)
	}
}

func TestPartialNodesRender(t *testing.T) {
	cases := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "let_without_value",
			node: &LetStatement{
				Token: Token{Type: TokenLet, Literal: "let"},
				Name:  &Identifier{Token: Token{Type: TokenIdent, Literal: "x"}, Value: "x"},
			},
			want: "let x = ;",
		},
		{
			name: "return_without_value",
			node: &ReturnStatement{Token: Token{Type: TokenReturn, Literal: "return"}},
			want: "return;",
		},
		{
			name: "empty_block",
			node: &BlockStatement{Token: Token{Type: TokenLBrace, Literal: "{"}},
			want: "{ }",
		},
		{
			name: "empty_program",
			node: &Program{},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.node.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNodePositions(t *testing.T) {
	program := parseSource(t, "let x = 1;\nif (x) { fn(a) { a } }")
	if pos := program.Pos(); pos.Line != 1 || pos.Column != 1 {
		t.Fatalf("program position = %+v", pos)
	}
	ifStmt := program.Statements[1].(*ExpressionStatement)
	if pos := ifStmt.Pos(); pos.Line != 2 || pos.Column != 1 {
		t.Fatalf("if statement position = %+v", pos)
	}
	fn := ifStmt.Expression.(*IfExpression).Consequence.Statements[0].(*ExpressionStatement).Expression
	if pos := fn.Pos(); pos.Line != 2 || pos.Column != 10 {
		t.Fatalf("fn position = %+v", pos)
	}
}

func TestCanonicalRenderingReparses(t *testing.T) {
	inputs := []string{
		"-a * b",
		"a + b + c",
		"a + b * c + d / e - f",
		"!(true == true)",
		"!-a == -(b - c) * d",
		"1 < 2 != false",
		"x / (y / z)",
		"if (x < y) { x } else { y }",
		"let f = fn(a, b) { return a * b; };",
		"if (a) { if (b) { 1 } } else { }",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := parseSource(t, input).String()
			second := parseSource(t, first).String()
			if first != second {
				t.Fatalf("rendering is not stable: %q -> %q", first, second)
			}
		})
	}
}
