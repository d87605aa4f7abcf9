package monkey

import (
	"fmt"
	"strings"
)

// ParseError is a single parser diagnostic.
type ParseError struct {
	Pos    Position
	Msg    string
	source string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
	if frame := formatCodeFrame(e.source, e.Pos); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}

// Errors returns the diagnostic messages in the order they were recorded.
// An empty result means the input parsed cleanly.
func (p *Parser) Errors() []string {
	msgs := make([]string, 0, len(p.errors))
	for _, err := range p.errors {
		msgs = append(msgs, err.Msg)
	}
	return msgs
}

// Diagnostics returns the recorded diagnostics with their positions.
func (p *Parser) Diagnostics() []*ParseError {
	out := make([]*ParseError, len(p.errors))
	copy(out, p.errors)
	return out
}

func (p *Parser) peekError(tt TokenType) {
	p.addParseError(p.peekToken.Pos, fmt.Sprintf("expected next token to be %s, got %s instead", tt, p.peekToken.Type))
}

func (p *Parser) noPrefixParseFnError(tok Token) {
	p.addParseError(tok.Pos, fmt.Sprintf("no prefix parse function for %s found", tok.Type))
}

func (p *Parser) addParseError(pos Position, msg string) {
	p.errors = append(p.errors, &ParseError{Pos: pos, Msg: msg, source: p.l.input})
}
