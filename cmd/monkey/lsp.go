package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/textproto"
	"os"
	"sort"
	"strconv"

	"github.com/mgomes/monkey/monkey"
)

const lspServerName = "monkey-lsp"

type lspInboundMessage struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method,omitempty"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type lspResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type lspOutboundMessage struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      *json.RawMessage  `json:"id,omitempty"`
	Method  string            `json:"method,omitempty"`
	Params  any               `json:"params,omitempty"`
	Result  any               `json:"result,omitempty"`
	Error   *lspResponseError `json:"error,omitempty"`
}

// lspDocumentParams covers the params of every textDocument/* method the
// server handles; each method reads only its own fields.
type lspDocumentParams struct {
	TextDocument struct {
		URI  string `json:"uri"`
		Text string `json:"text"`
	} `json:"textDocument"`
	ContentChanges []struct {
		Text string `json:"text"`
	} `json:"contentChanges"`
	Position lspPosition `json:"position"`
}

// lspPosition is zero-based, unlike monkey.Position.
type lspPosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

type lspRange struct {
	Start lspPosition `json:"start"`
	End   lspPosition `json:"end"`
}

type lspDiagnostic struct {
	Range    lspRange `json:"range"`
	Severity int      `json:"severity"`
	Source   string   `json:"source"`
	Message  string   `json:"message"`
}

type lspPublishDiagnosticsParams struct {
	URI         string          `json:"uri"`
	Diagnostics []lspDiagnostic `json:"diagnostics"`
}

type lspCompletionItem struct {
	Label  string `json:"label"`
	Kind   int    `json:"kind"`
	Detail string `json:"detail"`
}

const (
	severityError        = 1
	completionKeyword    = 14
	textDocumentSyncFull = 1

	errMethodNotFound = -32601
	errInvalidParams  = -32602
)

type lspServer struct {
	in     *textproto.Reader
	out    io.Writer
	logger *slog.Logger
	docs   map[string]string
}

func lspCommand(args []string) error {
	fs := flag.NewFlagSet("lsp", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	logLevel := fs.String("log-level", "", "trace protocol traffic to stderr at this level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger, err := newLSPLogger(*logLevel, os.Stderr)
	if err != nil {
		return err
	}
	return runLSP(os.Stdin, os.Stdout, logger)
}

// newLSPLogger discards everything when level is empty. stdout carries the
// protocol, so logs only ever go to w.
func newLSPLogger(level string, w io.Writer) (*slog.Logger, error) {
	if level == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("monkey lsp: invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func newLSPServer(in io.Reader, out io.Writer, logger *slog.Logger) *lspServer {
	return &lspServer{
		in:     textproto.NewReader(bufio.NewReader(in)),
		out:    out,
		logger: logger,
		docs:   make(map[string]string),
	}
}

func runLSP(in io.Reader, out io.Writer, logger *slog.Logger) error {
	s := newLSPServer(in, out, logger)
	for {
		payload, err := s.readPayload()
		if errors.Is(err, io.EOF) {
			logger.Info("client closed input")
			return nil
		}
		if err != nil {
			return err
		}

		var msg lspInboundMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			logger.Warn("dropping malformed message", "error", err)
			continue
		}
		logger.Debug("received", "method", msg.Method)

		for _, out := range s.handleMessage(msg) {
			if err := s.send(out); err != nil {
				return err
			}
		}
		if msg.Method == "exit" {
			return nil
		}
	}
}

func (s *lspServer) handleMessage(msg lspInboundMessage) []lspOutboundMessage {
	switch msg.Method {
	case "initialized", "exit":
		return nil
	case "initialize":
		return reply(msg.ID, map[string]any{
			"capabilities": map[string]any{
				"textDocumentSync":   textDocumentSyncFull,
				"hoverProvider":      true,
				"completionProvider": map[string]any{"resolveProvider": false},
			},
			"serverInfo": map[string]any{"name": lspServerName},
		})
	case "shutdown":
		return reply(msg.ID, nil)
	case "textDocument/completion":
		return reply(msg.ID, map[string]any{"isIncomplete": false, "items": completionItems()})
	case "textDocument/didOpen", "textDocument/didChange", "textDocument/didClose", "textDocument/hover":
		return s.handleDocument(msg)
	}

	s.logger.Warn("unsupported method", "method", msg.Method)
	return replyError(msg.ID, errMethodNotFound, "method not found")
}

func (s *lspServer) handleDocument(msg lspInboundMessage) []lspOutboundMessage {
	var params lspDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.logger.Warn("bad params", "method", msg.Method, "error", err)
		return replyError(msg.ID, errInvalidParams, "invalid params")
	}
	uri := params.TextDocument.URI

	switch msg.Method {
	case "textDocument/didOpen":
		s.docs[uri] = params.TextDocument.Text
		return []lspOutboundMessage{s.publishDiagnostics(uri)}
	case "textDocument/didChange":
		if n := len(params.ContentChanges); n > 0 {
			s.docs[uri] = params.ContentChanges[n-1].Text
			return []lspOutboundMessage{s.publishDiagnostics(uri)}
		}
		return nil
	case "textDocument/didClose":
		delete(s.docs, uri)
		return []lspOutboundMessage{s.publishDiagnostics(uri)}
	default:
		return reply(msg.ID, hoverResult(s.docs[uri], params.Position))
	}
}

// reply answers a request; notifications (no id) get nothing back.
func reply(id *json.RawMessage, result any) []lspOutboundMessage {
	if id == nil {
		return nil
	}
	return []lspOutboundMessage{{JSONRPC: "2.0", ID: id, Result: result}}
}

func replyError(id *json.RawMessage, code int, message string) []lspOutboundMessage {
	if id == nil {
		return nil
	}
	return []lspOutboundMessage{{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &lspResponseError{Code: code, Message: message},
	}}
}

// publishDiagnostics reports the parse diagnostics of the stored document. A
// closed document has no entry and so publishes an empty list.
func (s *lspServer) publishDiagnostics(uri string) lspOutboundMessage {
	diags := []lspDiagnostic{}
	if source, ok := s.docs[uri]; ok {
		diags = diagnosticsForSource(source)
	}
	s.logger.Debug("publishing diagnostics", "uri", uri, "count", len(diags))
	return lspOutboundMessage{
		JSONRPC: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params:  lspPublishDiagnosticsParams{URI: uri, Diagnostics: diags},
	}
}

func diagnosticsForSource(source string) []lspDiagnostic {
	p := monkey.NewParser(monkey.NewLexer(source))
	_ = p.ParseProgram()

	out := []lspDiagnostic{}
	for _, diag := range p.Diagnostics() {
		start := lspPosition{Line: max(0, diag.Pos.Line-1), Character: max(0, diag.Pos.Column-1)}
		end := start
		end.Character++
		out = append(out, lspDiagnostic{
			Range:    lspRange{Start: start, End: end},
			Severity: severityError,
			Source:   lspServerName,
			Message:  diag.Msg,
		})
	}
	return out
}

func completionItems() []lspCompletionItem {
	words := monkey.Keywords()
	sort.Strings(words)

	items := make([]lspCompletionItem, len(words))
	for i, word := range words {
		items[i] = lspCompletionItem{Label: word, Kind: completionKeyword, Detail: "keyword"}
	}
	return items
}

// hoverResult describes the token under pos, or returns nil when there is
// none.
func hoverResult(source string, pos lspPosition) any {
	tok, ok := tokenAtPosition(source, pos)
	if !ok || tok.Type == monkey.TokenIllegal {
		return nil
	}
	return map[string]any{
		"contents": map[string]any{
			"kind":  "markdown",
			"value": fmt.Sprintf("`%s`\n\nMonkey %s", tok.Literal, describeToken(tok)),
		},
	}
}

// tokenAtPosition lexes source and returns the token whose literal covers the
// zero-based position.
func tokenAtPosition(source string, pos lspPosition) (monkey.Token, bool) {
	line, column := pos.Line+1, pos.Character+1
	for _, tok := range monkey.Tokenize(source) {
		if tok.Type == monkey.TokenEOF || tok.Pos.Line > line {
			break
		}
		if tok.Pos.Line == line && tok.Pos.Column <= column && column < tok.Pos.Column+len(tok.Literal) {
			return tok, true
		}
	}
	return monkey.Token{}, false
}

func describeToken(tok monkey.Token) string {
	switch tok.Type {
	case monkey.TokenIdent:
		return "identifier"
	case monkey.TokenInt:
		return "integer"
	case monkey.TokenComma, monkey.TokenSemicolon,
		monkey.TokenLParen, monkey.TokenRParen, monkey.TokenLBrace, monkey.TokenRBrace:
		return "delimiter"
	}
	if monkey.LookupIdent(tok.Literal) == tok.Type {
		return "keyword"
	}
	return "operator"
}

// readPayload reads one Content-Length framed message.
func (s *lspServer) readPayload() ([]byte, error) {
	header, err := s.in.ReadMIMEHeader()
	if err != nil {
		return nil, err
	}
	raw := header.Get("Content-Length")
	if raw == "" {
		return nil, errors.New("missing Content-Length header")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("invalid Content-Length %q", raw)
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(s.in.R, payload); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return payload, nil
}

func (s *lspServer) send(msg lspOutboundMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	_, err = fmt.Fprintf(s.out, "Content-Length: %d\r\n\r\n%s", len(body), body)
	return err
}
