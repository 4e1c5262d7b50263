// ============================================================================
// soarcli - Soar command interpreter
// ============================================================================
//
// Package:     console
// Description: Bubbletea model for the interactive Soar console
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SoarGroup/soarcli/foundation/cli"
	mdwlog "github.com/SoarGroup/soarcli/foundation/core/log"
	"github.com/SoarGroup/soarcli/foundation/utils/stringx"
	"github.com/SoarGroup/soarcli/internal/commands"
	"github.com/SoarGroup/soarcli/internal/history"
)

const (
	maxInputHistory = 100
	maxScrollback   = 5000
)

// Config holds console configuration
type Config struct {
	Prompt             string
	ContinuationPrompt string
	History            history.Store // nil disables recording and recall from earlier runs
	HistoryLimit       int           // Entries kept when the console exits; 0 keeps all
	Logger             *mdwlog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:             "soar> ",
		ContinuationPrompt: "  ... ",
	}
}

// Model is the Bubbletea model for the console
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Interpreter
	session *cli.Session
	output  *Output
	cfg     Config
	logger  *mdwlog.Logger

	// Scrollback and the input collected so far for an unfinished command
	lines   []Line
	pending string

	// Input history
	inputHistory []string
	historyIndex int    // -1 = new input
	currentInput string // input being typed when recall started

	// Last evaluation
	evaluated int
	lastErr   error
}

// New creates a console model. output must be the writer the session's
// commands print to.
func New(session *cli.Session, output *Output, cfg Config) Model {
	defaults := DefaultConfig()
	cfg.Prompt = stringx.FirstNonBlank(cfg.Prompt, defaults.Prompt)
	cfg.ContinuationPrompt = stringx.FirstNonBlank(cfg.ContinuationPrompt, defaults.ContinuationPrompt)
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}
	if output == nil {
		output = NewOutput()
	}

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.PromptStyle = PromptStyle
	ti.Placeholder = "Soar command (Enter to evaluate)"
	ti.CharLimit = 8000
	ti.Width = 80
	ti.Focus()

	return Model{
		input:        ti,
		session:      session,
		output:       output,
		cfg:          cfg,
		logger:       cfg.Logger.WithField("component", "console"),
		historyIndex: -1,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadHistory,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Logo + session
		footerHeight := 6 // Input + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 6 - lipgloss.Width(m.input.Prompt)
		m.updateViewportContent()
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.logger.WarnWithErr("Failed to load history", msg.err)
			return m, nil
		}
		// Input typed before the store answered stays newest
		m.inputHistory = append(msg.lines, m.inputHistory...)
		if len(m.inputHistory) > maxInputHistory {
			m.inputHistory = m.inputHistory[len(m.inputHistory)-maxInputHistory:]
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		// Esc abandons an unfinished command first
		if m.pending != "" {
			m.pending = ""
			m.input.Prompt = m.cfg.Prompt
			m.appendLine(LineInfo, "(input discarded)")
			m.updateViewportContent()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlL:
		m.lines = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyUp:
		if len(m.inputHistory) > 0 {
			if m.historyIndex == -1 {
				m.currentInput = m.input.Value()
				m.historyIndex = len(m.inputHistory) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.input.SetValue(m.inputHistory[m.historyIndex])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.inputHistory)-1 {
				m.historyIndex++
				m.input.SetValue(m.inputHistory[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.input.SetValue(m.currentInput)
			}
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit takes the current input line. Lines that leave a quote or brace
// open are collected until the command is complete.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.historyIndex = -1
	m.currentInput = ""

	m.appendLine(LineEcho, m.input.Prompt+line)

	if m.pending == "" {
		switch strings.TrimSpace(line) {
		case "exit", "quit":
			m.quitting = true
			return m, tea.Quit
		}
	}

	m.pending += line
	if cli.NeedsMore(m.pending) {
		m.pending += "\n"
		m.input.Prompt = m.cfg.ContinuationPrompt
		m.updateViewportContent()
		return m, nil
	}

	input := m.pending
	m.pending = ""
	m.input.Prompt = m.cfg.Prompt

	if strings.TrimSpace(input) != "" {
		m.evaluate(input)
	}
	m.updateViewportContent()
	return m, nil
}

func (m *Model) evaluate(input string) {
	if len(m.inputHistory) == 0 || m.inputHistory[len(m.inputHistory)-1] != input {
		m.inputHistory = append(m.inputHistory, input)
		if len(m.inputHistory) > maxInputHistory {
			m.inputHistory = m.inputHistory[len(m.inputHistory)-maxInputHistory:]
		}
	}

	err := m.session.Evaluate(input)
	m.evaluated++
	m.lastErr = err

	if out := m.output.Drain(); out != "" {
		for _, text := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
			m.appendLine(LineOutput, text)
		}
	}
	if err != nil {
		m.appendLine(LineError, "Error: "+err.Error())
		if hint := commands.ErrorHint(err); hint != "" {
			m.appendLine(LineInfo, hint)
		}
	}

	if recErr := history.Record(context.Background(), m.cfg.History, m.session.ID(), input, err); recErr != nil {
		m.logger.WarnWithErr("Failed to record history", recErr)
	}
}

func (m *Model) appendLine(kind LineKind, text string) {
	m.lines = append(m.lines, Line{Kind: kind, Text: text})
	if len(m.lines) > maxScrollback {
		m.lines = m.lines[len(m.lines)-maxScrollback:]
	}
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting console..."
	}

	var b strings.Builder

	b.WriteString(LogoStyle.Render(Logo) + "  " + SubHeaderStyle.Render("session "+m.session.ID()))
	b.WriteString("\n")

	b.WriteString(ScrollbackPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderInputArea())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderInputArea() string {
	style := InputStyle
	if m.pending != "" {
		style = ContinuationInputStyle
	}
	return style.Width(m.width - 2).Render(m.input.View())
}

func (m Model) renderStatusBar() string {
	var status string
	switch {
	case m.evaluated == 0:
		status = HelpDescStyle.Render("ready")
	case m.lastErr != nil:
		status = StatusFailedStyle.Render("error")
	default:
		status = StatusOKStyle.Render("ok")
	}

	left := fmt.Sprintf("%d commands", m.session.Registry().Len())
	if n := m.session.Aliases().Len(); n > 0 {
		left += fmt.Sprintf(", %d aliases", n)
	}
	leftPart := HelpDescStyle.Render(left)

	padding := m.width - lipgloss.Width(leftPart) - lipgloss.Width(status) - 4
	if padding < 2 {
		padding = 2
	}
	return StatusBarStyle.Width(m.width - 2).Render(leftPart + strings.Repeat(" ", padding) + status)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "evaluate"),
		RenderKeyHint("↑/↓", "history"),
		RenderKeyHint("PgUp/PgDn", "scroll"),
		RenderKeyHint("Ctrl+L", "clear"),
	}
	if m.pending != "" {
		items = append(items, RenderKeyHint("Esc", "discard"))
	}
	items = append(items, RenderKeyHint("Ctrl+C", "quit"))
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent renders the scrollback into the viewport
func (m *Model) updateViewportContent() {
	var content strings.Builder
	for i, line := range m.lines {
		if i > 0 {
			content.WriteString("\n")
		}
		switch line.Kind {
		case LineEcho:
			content.WriteString(EchoStyle.Render(line.Text))
		case LineError:
			content.WriteString(ErrorStyle.Render(line.Text))
		case LineInfo:
			content.WriteString(InfoStyle.Render(line.Text))
		default:
			content.WriteString(OutputStyle.Render(line.Text))
		}
	}
	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// loadHistory reads the most recent inputs of earlier runs
func (m Model) loadHistory() tea.Msg {
	if m.cfg.History == nil {
		return historyLoadedMsg{}
	}
	entries, err := m.cfg.History.Recent(context.Background(), history.Query{Limit: maxInputHistory})
	if err != nil {
		return historyLoadedMsg{err: err}
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Line)
	}
	return historyLoadedMsg{lines: lines}
}

// Lines returns the scrollback
func (m Model) Lines() []Line {
	return m.lines
}

// Run starts the console TUI and prunes the history store when it exits
func Run(session *cli.Session, output *Output, cfg Config) error {
	model := New(session, output, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	if cfg.History != nil && cfg.HistoryLimit > 0 {
		if _, pruneErr := cfg.History.Prune(context.Background(), cfg.HistoryLimit); pruneErr != nil {
			model.logger.WarnWithErr("Failed to prune history", pruneErr)
		}
	}
	return err
}
