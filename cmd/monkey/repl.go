package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mgomes/monkey/monkey"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
)

type replKeyMap struct {
	Submit     key.Binding
	Complete   key.Binding
	ToggleMode key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func (k replKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.ToggleMode, k.Quit}
}

func (k replKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Complete},
		{k.ToggleMode, k.Help, k.Quit},
	}
}

var replKeys = replKeyMap{
	Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "parse line")),
	Complete:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete keyword")),
	ToggleMode: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "ast/tokens")),
	Help:       key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "help")),
	Quit:       key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
}

// historyEntry is one line of transcript. Completion listings have no input.
type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	input    textinput.Model
	help     help.Model
	cfg      Config
	mode     string
	history  []historyEntry
	ready    bool
	quitting bool
}

func replCommand(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	configPath := fs.String("config", "", "path to a TOML config file")
	mode := fs.String("mode", "", "output mode: ast or tokens")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *mode != "" {
		cfg.Mode = *mode
		if err := cfg.validate(); err != nil {
			return fmt.Errorf("monkey repl: %w", err)
		}
	}

	_, err = tea.NewProgram(newREPLModel(cfg)).Run()
	return err
}

func newREPLModel(cfg Config) replModel {
	in := textinput.New()
	in.Prompt = cfg.Prompt
	in.PromptStyle = promptStyle
	in.Placeholder = "let x = 1 + 2;"
	in.Focus()

	return replModel{
		input: in,
		help:  help.New(),
		cfg:   cfg,
		mode:  cfg.Mode,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(10, msg.Width-len(m.cfg.Prompt)-1)
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, replKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, replKeys.ToggleMode):
			m.mode = toggleMode(m.mode)
			return m, nil
		case key.Matches(msg, replKeys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, replKeys.Complete):
			return m.handleAutocomplete(), nil
		case key.Matches(msg, replKeys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}
	if strings.HasPrefix(line, ":") {
		return m.handleCommand(line)
	}

	output, isErr := m.evaluate(line)
	return m.appendHistory(historyEntry{input: line, output: output, isErr: isErr}), nil
}

// appendHistory keeps at most cfg.HistoryLimit entries, dropping the oldest.
func (m replModel) appendHistory(entry historyEntry) replModel {
	m.history = append(m.history, entry)
	if over := len(m.history) - m.cfg.HistoryLimit; m.cfg.HistoryLimit > 0 && over > 0 {
		m.history = m.history[over:]
	}
	return m
}

func (m replModel) handleCommand(line string) (replModel, tea.Cmd) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	case ":help", ":h":
		m.help.ShowAll = !m.help.ShowAll
	case ":clear", ":c":
		m.history = nil
	case ":mode", ":m":
		switch arg {
		case "":
			m.mode = toggleMode(m.mode)
		case modeAST, modeTokens:
			m.mode = arg
		default:
			return m.appendHistory(historyEntry{input: line, output: "Unknown mode: " + arg, isErr: true}), nil
		}
		m = m.appendHistory(historyEntry{input: line, output: "Mode: " + m.mode})
	default:
		m = m.appendHistory(historyEntry{input: line, output: "Unknown command: " + name, isErr: true})
	}
	return m, nil
}

func toggleMode(mode string) string {
	if mode == modeTokens {
		return modeAST
	}
	return modeTokens
}

// handleAutocomplete completes the keyword prefix under the cursor at the end
// of the line, or lists the candidates when more than one fits.
func (m replModel) handleAutocomplete() replModel {
	value := m.input.Value()
	start := len(value)
	for start > 0 && isWordByte(value[start-1]) {
		start--
	}
	prefix := value[start:]
	if prefix == "" {
		return m
	}

	var matches []string
	for _, kw := range monkey.Keywords() {
		if strings.HasPrefix(kw, prefix) {
			matches = append(matches, kw)
		}
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
	case 1:
		m.input.SetValue(value[:start] + matches[0])
		m.input.CursorEnd()
	default:
		m = m.appendHistory(historyEntry{output: "Completions: " + strings.Join(matches, ", ")})
	}
	return m
}

func isWordByte(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9' || b == '_'
}

// evaluate parses input and renders it for the current mode. Nothing is
// executed.
func (m replModel) evaluate(input string) (string, bool) {
	if m.mode == modeTokens {
		tokens := monkey.Tokenize(input)
		lines := make([]string, len(tokens))
		for i, tok := range tokens {
			lines[i] = formatToken(tok)
		}
		return strings.Join(lines, "\n"), false
	}

	p := monkey.NewParser(monkey.NewLexer(input))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return strings.Join(errs, "\n"), true
	}

	out, err := renderProgram(program, m.cfg.DumpFormat)
	if err != nil {
		return err.Error(), true
	}
	return strings.TrimRight(out, "\n"), false
}

func (m replModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("monkey") + " " + mutedStyle.Render(m.mode) + "\n\n")

	for _, entry := range m.history {
		if entry.input != "" {
			b.WriteString(promptStyle.Render(m.cfg.Prompt) + entry.input + "\n")
		}
		style := resultStyle
		if entry.isErr {
			style = errorStyle
		}
		for _, line := range strings.Split(entry.output, "\n") {
			b.WriteString("  " + style.Render(line) + "\n")
		}
	}

	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(m.help.View(replKeys))
	return b.String()
}
