// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     tui
// Description: Interactive evaluator: type an expression, get its truth
//              table, normal forms and classification
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	mdwerror "github.com/msto63/boole/foundation/core/error"
	"github.com/msto63/boole/internal/boole/service"
	"github.com/msto63/boole/internal/boole/store"
)

const (
	historyPageSize = 100
	maxEntries      = 50

	// rows taken by header, input box and footer
	chromeHeight = 9
)

// Model is the main TUI model
type Model struct {
	svc *service.Service
	ctx context.Context

	// State
	view    View
	width   int
	height  int
	ready   bool
	loading bool

	// Components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Results, newest last
	entries []Entry

	// History view
	records    []*store.Record
	historyErr error

	// Input recall with up/down
	inputHistory []string
	historyIndex int
	currentInput string
}

// NewModel creates a new TUI model backed by svc
func NewModel(ctx context.Context, svc *service.Service) Model {
	ta := textarea.New()
	ta.Placeholder = "Expression, e.g. (A & B) -> C"
	ta.Focus()
	ta.CharLimit = 4096
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = fg(violet)

	return Model{
		svc:          svc,
		ctx:          ctx,
		view:         ViewAnalyze,
		textarea:     ta,
		spinner:      sp,
		historyIndex: -1,
	}
}

// Run starts the TUI and blocks until the user quits
func Run(ctx context.Context, svc *service.Service) error {
	p := tea.NewProgram(NewModel(ctx, svc), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.view = (m.view + 1) % viewCount
			m.updateContent()
			if m.view == ViewHistory {
				return m, m.loadHistory()
			}
			return m, nil

		case "enter":
			if m.view != ViewAnalyze || m.loading {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.remember(input)
			m.textarea.Reset()
			m.loading = true
			return m, tea.Batch(m.analyze(input), m.spinner.Tick)

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil

		case "ctrl+r":
			if m.view == ViewHistory {
				return m, m.loadHistory()
			}

		case "up":
			if m.recall(-1) {
				return m, nil
			}

		case "down":
			if m.recall(1) {
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := max(msg.Height-chromeHeight, 3)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.viewport.YPosition = 3
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.updateContent()

	case analyzeMsg:
		m.loading = false
		m.entries = append(m.entries, msg.entry)
		if len(m.entries) > maxEntries {
			m.entries = m.entries[len(m.entries)-maxEntries:]
		}
		m.updateContent()

	case historyMsg:
		m.records = msg.records
		m.historyErr = msg.err
		m.updateContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// analyze computes the normal forms of input in the background
func (m Model) analyze(input string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		expr := service.NormalizeSymbols(input)
		start := time.Now()
		entry := Entry{Expression: expr}
		entry.Result, entry.Err = svc.NormalForms(ctx, expr)
		if mdwerror.HasCode(entry.Err, mdwerror.CodeTooManyVariables) {
			entry.Solved, entry.Err = svc.Solve(ctx, expr)
		}
		entry.Duration = time.Since(start)
		return analyzeMsg{entry: entry}
	}
}

func (m Model) loadHistory() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		records, err := svc.History(ctx, historyPageSize)
		return historyMsg{records: records, err: err}
	}
}

func (m *Model) remember(input string) {
	if n := len(m.inputHistory); n == 0 || m.inputHistory[n-1] != input {
		m.inputHistory = append(m.inputHistory, input)
	}
	m.historyIndex = -1
	m.currentInput = ""
}

// recall steps through previous inputs; dir is -1 for older, 1 for newer
func (m *Model) recall(dir int) bool {
	if m.view != ViewAnalyze || len(m.inputHistory) == 0 {
		return false
	}

	switch {
	case dir < 0 && m.historyIndex == -1:
		m.currentInput = m.textarea.Value()
		m.historyIndex = len(m.inputHistory) - 1
	case dir < 0 && m.historyIndex > 0:
		m.historyIndex--
	case dir > 0 && m.historyIndex >= 0:
		m.historyIndex++
		if m.historyIndex >= len(m.inputHistory) {
			m.historyIndex = -1
			m.textarea.SetValue(m.currentInput)
			m.textarea.CursorEnd()
			return true
		}
	default:
		return false
	}

	m.textarea.SetValue(m.inputHistory[m.historyIndex])
	m.textarea.CursorEnd()
	return true
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.view == ViewAnalyze {
		if m.loading {
			s.WriteString(m.spinner.View())
			s.WriteString(" Evaluating...\n")
		}
		s.WriteString(FocusedInputStyle.Render(m.textarea.View()))
		s.WriteString("\n")
	}

	s.WriteString(m.renderFooter())
	return s.String()
}

func (m Model) renderHeader() string {
	tabs := []string{"Analyze", "History"}
	rendered := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		if View(i) == m.view {
			rendered = append(rendered, ActiveTabStyle.Render(tab))
		} else {
			rendered = append(rendered, TabStyle.Render(tab))
		}
	}

	title := TitleStyle.Render("boole")
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

func (m Model) renderFooter() string {
	help := "Enter: Analyze • ↑/↓: Recall • Tab: Switch • Ctrl+L: Clear • Esc: Quit"
	if m.view == ViewHistory {
		help = "Ctrl+R: Refresh • Tab: Switch • Esc: Quit"
	}
	return StatusBarStyle.Width(m.width).Render(help)
}

func (m *Model) updateContent() {
	var content string
	switch m.view {
	case ViewHistory:
		content = m.historyContent()
	default:
		content = m.analyzeContent()
	}
	m.viewport.SetContent(content)
	if m.view == ViewAnalyze {
		m.viewport.GotoBottom()
	} else {
		m.viewport.GotoTop()
	}
}

func (m *Model) analyzeContent() string {
	if len(m.entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			SubtitleStyle.Render("Type an expression and press Enter."),
			"",
			RenderHelp("Connectives: ¬ (!, ~)  ∧ (&)  ∨ (|)  → (->)  ↔ (<->)"),
			RenderHelp("Operands: true, false, T, F and variables A-Z"),
			RenderHelp("Example: ((A ∧ B) → C) ↔ A"),
		)
	}

	blocks := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		blocks = append(blocks, RenderEntry(e))
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) historyContent() string {
	if m.historyErr != nil {
		return RenderError(m.historyErr.Error())
	}
	if len(m.records) == 0 {
		return SubtitleStyle.Render("No history yet.")
	}

	lines := make([]string, 0, len(m.records)+1)
	lines = append(lines, SubtitleStyle.Render(fmt.Sprintf("%d most recent operations", len(m.records))))
	for _, r := range m.records {
		lines = append(lines, RenderRecord(r, m.width))
	}
	return strings.Join(lines, "\n")
}
