package monkey

import "errors"

// Tokenize lexes input to completion. The last token is the single EOF.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// Parse parses input and returns the program together with an error that
// carries every diagnostic. The program is returned even when err is non-nil
// so callers can inspect the partial tree; it must not be handed to an
// evaluator in that case.
func Parse(input string) (*Program, error) {
	p := NewParser(NewLexer(input))
	program := p.ParseProgram()
	if diags := p.Diagnostics(); len(diags) > 0 {
		return program, combineErrors(diags)
	}
	return program, nil
}

// Format returns the canonical rendering of input followed by a newline.
// Input with diagnostics is rejected unchanged.
func Format(input string) (string, error) {
	program, err := Parse(input)
	if err != nil {
		return "", err
	}
	if len(program.Statements) == 0 {
		return "", nil
	}
	return program.String() + "\n", nil
}

func combineErrors(errs []*ParseError) error {
	if len(errs) == 1 {
		return errs[0]
	}
	msg := ""
	for _, err := range errs {
		if msg != "" {
			msg += "\n\n"
		}
		msg += err.Error()
	}
	return errors.New(msg)
}
