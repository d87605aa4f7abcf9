package monkey

import (
	"strings"
	"testing"
)

func TestParserRecordsDiagnostics(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "let_missing_assign",
			input: "let x 5;",
			want:  []string{"expected next token to be =, got INT instead"},
		},
		{
			name:  "let_missing_identifier",
			input: "let = 10;",
			want: []string{
				"expected next token to be IDENT, got = instead",
				"no prefix parse function for = found",
			},
		},
		{
			name:  "let_keyword_as_name",
			input: "let 838383;",
			want:  []string{"expected next token to be IDENT, got INT instead"},
		},
		{
			name:  "integer_overflow",
			input: "92233720368547758070;",
			want:  []string{`could not parse "92233720368547758070" as integer`},
		},
		{
			name:  "missing_prefix",
			input: "+;",
			want:  []string{"no prefix parse function for + found"},
		},
		{
			name:  "illegal_token",
			input: "@",
			want:  []string{"no prefix parse function for ILLEGAL found"},
		},
		{
			name:  "unclosed_group",
			input: "(1 + 2",
			want:  []string{"expected next token to be ), got EOF instead"},
		},
		{
			name:  "if_without_paren",
			input: "if x { 1 }",
			want:  []string{"expected next token to be (, got IDENT instead"},
		},
		{
			name:  "fn_bad_parameter",
			input: "fn(1) { }",
			want:  []string{"expected next token to be IDENT, got INT instead"},
		},
		{
			name:  "fn_missing_body",
			input: "fn(x)",
			want:  []string{"expected next token to be {, got EOF instead"},
		},
		{
			name:  "else_without_brace",
			input: "if (x) { 1 } else 2",
			want:  []string{"expected next token to be {, got INT instead"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParser(NewLexer(tc.input))
			_ = p.ParseProgram()
			errs := p.Errors()
			if len(errs) < len(tc.want) {
				t.Fatalf("expected at least %d errors, got %q", len(tc.want), errs)
			}
			for i, want := range tc.want {
				if errs[i] != want {
					t.Fatalf("errors[%d] = %q, want %q (all: %q)", i, errs[i], want, errs)
				}
			}
		})
	}
}

func TestParserContinuesAfterBrokenStatement(t *testing.T) {
	p := NewParser(NewLexer("let x 5; let y = 10; let = ; let z = 3;"))
	program := p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected diagnostics")
	}

	var names []string
	for _, stmt := range program.Statements {
		if let, ok := stmt.(*LetStatement); ok {
			names = append(names, let.Name.Value)
		}
	}
	if strings.Join(names, ",") != "y,z" {
		t.Fatalf("expected recovered let statements y and z, got %v", names)
	}
}

func TestParserSkipsBrokenLetValue(t *testing.T) {
	p := NewParser(NewLexer("let x = * 2 3; let y = 1;"))
	program := p.ParseProgram()
	if len(p.Errors()) != 1 {
		t.Fatalf("expected a single diagnostic, got %q", p.Errors())
	}
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %s", len(program.Statements), program.String())
	}
	first := program.Statements[0].(*LetStatement)
	if first.Value != nil {
		t.Fatalf("expected missing value, got %s", first.Value.String())
	}
	if got := program.Statements[1].String(); got != "let y = 1;" {
		t.Fatalf("second statement = %q", got)
	}
}

func TestParserTerminatesOnUnclosedBlocks(t *testing.T) {
	inputs := []string{
		"fn(x) { x",
		"if (x) { if (y) { let z = ",
		"{{{{",
		"let",
		"return",
		")))",
	}
	for _, input := range inputs {
		p := NewParser(NewLexer(input))
		program := p.ParseProgram()
		if program == nil {
			t.Fatalf("%q: nil program", input)
		}
	}
}

func TestDiagnosticsCarryPositions(t *testing.T) {
	p := NewParser(NewLexer("let a = 1;\nlet b 2;"))
	_ = p.ParseProgram()
	diags := p.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Pos.Line != 2 || diags[0].Pos.Column != 7 {
		t.Fatalf("diagnostic at %d:%d, want 2:7", diags[0].Pos.Line, diags[0].Pos.Column)
	}

	msg := diags[0].Error()
	if !strings.HasPrefix(msg, "parse error at 2:7: expected next token to be =, got INT instead") {
		t.Fatalf("unexpected message %q", msg)
	}
	if !strings.Contains(msg, " 2 | let b 2;\n   |       ^") {
		t.Fatalf("missing code frame in %q", msg)
	}
}

func TestFormatCodeFrameOutOfRange(t *testing.T) {
	if frame := formatCodeFrame("", Position{Line: 1, Column: 1}); frame != "" {
		t.Fatalf("expected empty frame for empty source, got %q", frame)
	}
	if frame := formatCodeFrame("x", Position{Line: 3, Column: 1}); frame != "" {
		t.Fatalf("expected empty frame past last line, got %q", frame)
	}
	frame := formatCodeFrame("ab", Position{Line: 1, Column: 9})
	if !strings.HasSuffix(frame, "|   ^") {
		t.Fatalf("expected caret clamped to line end, got %q", frame)
	}
}

func TestMissingValueBeforeClosingBraceKeepsLaterStatements(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "let_in_if", input: "if (a) { let x = } let y = 2;", want: "if (a) { let x = ; }\nlet y = 2;"},
		{name: "let_in_fn", input: "fn() { let x = }; let y = 2;", want: "fn() { let x = ; }\nlet y = 2;"},
		{name: "broken_group_in_block", input: "if (a) { let x = (1 + } let y = 2;", want: "let y = 2;"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParser(NewLexer(tc.input))
			program := p.ParseProgram()
			if len(p.Errors()) == 0 {
				t.Fatalf("expected a diagnostic for the missing value")
			}
			if p.Errors()[0] != "no prefix parse function for } found" {
				t.Fatalf("unexpected first diagnostic %q", p.Errors()[0])
			}
			if got := program.String(); !strings.Contains(got, tc.want) {
				t.Fatalf("rendered %q, want it to contain %q", got, tc.want)
			}
		})
	}
}

func TestMissingLetValuePointsAtClosingBrace(t *testing.T) {
	p := NewParser(NewLexer("{ }\nif (a) { let x = }"))
	_ = p.ParseProgram()
	diags := p.Diagnostics()
	var found bool
	for _, diag := range diags {
		if diag.Msg == "no prefix parse function for } found" && diag.Pos.Line == 2 && diag.Pos.Column == 18 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diagnostic at 2:18, got %v", p.Errors())
	}
}
