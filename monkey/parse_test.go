package monkey

import (
	"strings"
	"testing"
)

func TestParseReturnsProgramWithoutError(t *testing.T) {
	program, err := Parse("let x = 1; x + 2;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
}

func TestParseReturnsPartialProgramWithError(t *testing.T) {
	program, err := Parse("let x 5;\nlet y = (1;")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if program == nil {
		t.Fatalf("expected partial program alongside the error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "parse error at 1:7: expected next token to be =, got INT instead") {
		t.Fatalf("missing first diagnostic in %q", msg)
	}
	if !strings.Contains(msg, "parse error at 2:11: expected next token to be ), got ; instead") {
		t.Fatalf("missing second diagnostic in %q", msg)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "let   x=1+2*3", want: "let x = (1 + (2 * 3));\n"},
		{input: "if(a<b){a}else{b}", want: "if ((a < b)) { a } else { b }\n"},
		{input: "let f = fn(x,y){x+y;};\nf", want: "let f = fn(x, y) { (x + y) };\nf\n"},
		{input: "return -1;", want: "return (-1);\n"},
		{input: "fn(){return}", want: "fn() { return; }\n"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Format(tc.input)
			if err != nil {
				t.Fatalf("format failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Format() = %q, want %q", got, tc.want)
			}
			again, err := Format(got)
			if err != nil {
				t.Fatalf("re-format failed: %v", err)
			}
			if again != got {
				t.Fatalf("format is not a fixed point: %q -> %q", got, again)
			}
		})
	}
}

func TestFormatRejectsInvalidSource(t *testing.T) {
	if _, err := Format("let = 1;"); err == nil {
		t.Fatalf("expected format to reject invalid source")
	}
}
