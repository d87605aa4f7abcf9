package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mgomes/monkey/monkey"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "tokens":
		return tokensCommand(args[2:])
	case "parse":
		return parseCommand(args[2:])
	case "check":
		return checkCommand(args[2:])
	case "fmt":
		return fmtCommand(args[2:])
	case "repl":
		return replCommand(args[2:])
	case "lsp":
		return lspCommand(args[2:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("monkey tokens: source path required")
	}
	input, err := readSource(fs.Arg(0))
	if err != nil {
		return err
	}
	for _, tok := range monkey.Tokenize(input) {
		fmt.Println(formatToken(tok))
	}
	return nil
}

func formatToken(tok monkey.Token) string {
	return fmt.Sprintf("%d:%d\t%-8s %q", tok.Pos.Line, tok.Pos.Column, tok.Type, tok.Literal)
}

func parseCommand(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	format := fs.String("format", formatText, "output format: text, yaml or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("monkey parse: source path required")
	}
	if !validDumpFormat(*format) {
		return fmt.Errorf("monkey parse: unknown format %q", *format)
	}
	input, err := readSource(fs.Arg(0))
	if err != nil {
		return err
	}
	program, err := monkey.Parse(input)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	out, err := renderProgram(program, *format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func checkCommand(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("monkey check: source path required")
	}

	issues := 0
	for _, path := range fs.Args() {
		input, err := readSource(path)
		if err != nil {
			return err
		}
		p := monkey.NewParser(monkey.NewLexer(input))
		_ = p.ParseProgram()
		for _, diag := range p.Diagnostics() {
			issues++
			location := fmt.Sprintf("%s:%d:%d:", path, diag.Pos.Line, diag.Pos.Column)
			fmt.Println(mutedStyle.Render(location) + " " + errorStyle.Render(diag.Msg))
		}
	}

	if issues > 0 {
		return fmt.Errorf("check found %d issue(s)", issues)
	}
	fmt.Println(resultStyle.Render("No issues found"))
	return nil
}

// readSource reads path, or stdin when path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve source path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  tokens <file|->")
	fmt.Fprintln(os.Stderr, "    print the token stream")
	fmt.Fprintln(os.Stderr, "  parse [-format text|yaml|json] <file|->")
	fmt.Fprintln(os.Stderr, "    print the canonical form or a structural AST dump")
	fmt.Fprintln(os.Stderr, "  check <file...>")
	fmt.Fprintln(os.Stderr, "    report parse diagnostics")
	fmt.Fprintln(os.Stderr, "  fmt [-w] [-check] <path...>")
	fmt.Fprintln(os.Stderr, "    rewrite .mk files in canonical form")
	fmt.Fprintln(os.Stderr, "  repl [-config file] [-mode ast|tokens]")
	fmt.Fprintln(os.Stderr, "    interactive parser")
	fmt.Fprintln(os.Stderr, "  lsp [-log-level level]")
	fmt.Fprintln(os.Stderr, "    language server publishing parse diagnostics over stdio")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
