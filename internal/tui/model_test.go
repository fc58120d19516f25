package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	mdwcanonical "github.com/msto63/boole/foundation/logic/canonical"
	"github.com/msto63/boole/internal/boole/service"
	"github.com/msto63/boole/internal/boole/store"
	"github.com/msto63/boole/pkg/core/logging"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := service.DefaultConfig()
	cfg.Logger = logging.New("test").WithLevel(logging.LevelError)
	svc, err := service.New(cfg)
	if err != nil {
		t.Fatalf("service.New() error = %v", err)
	}
	t.Cleanup(func() { svc.Close() })

	m := NewModel(context.Background(), svc)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestModel_LoadingBeforeResize(t *testing.T) {
	m := NewModel(context.Background(), nil)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() = %q", got)
	}
}

func TestModel_Analyze(t *testing.T) {
	m := newTestModel(t)

	msg := m.analyze("(A & B) -> C")()
	am, ok := msg.(analyzeMsg)
	if !ok {
		t.Fatalf("unexpected message %T", msg)
	}
	if am.entry.Err != nil {
		t.Fatalf("analyze error: %v", am.entry.Err)
	}
	if am.entry.Expression != "(A ∧ B) → C" {
		t.Errorf("expression = %q", am.entry.Expression)
	}
	if got := len(am.entry.Result.Table.Rows); got != 8 {
		t.Errorf("rows = %d, want 8", got)
	}

	updated, _ := m.Update(am)
	m = updated.(Model)
	if len(m.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(m.entries))
	}

	view := m.View()
	for _, want := range []string{"DNF:", "CNF:", "contingent"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_AnalyzeFallsBackToSolver(t *testing.T) {
	cfg := service.DefaultConfig()
	cfg.Logger = logging.New("test").WithLevel(logging.LevelError)
	cfg.MaxVariables = 2
	svc, err := service.New(cfg)
	if err != nil {
		t.Fatalf("service.New() error = %v", err)
	}
	t.Cleanup(func() { svc.Close() })

	m := NewModel(context.Background(), svc)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	am := m.analyze("A | B | C")().(analyzeMsg)
	if am.entry.Err != nil {
		t.Fatalf("analyze error: %v", am.entry.Err)
	}
	if am.entry.Result != nil || am.entry.Solved == nil {
		t.Fatalf("entry = %+v, want a solver result", am.entry)
	}

	updated, _ = m.Update(am)
	view := updated.(Model).View()
	for _, want := range []string{"SAT solver", "contingent", "Model:", "Counterexample:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_AnalyzeError(t *testing.T) {
	m := newTestModel(t)

	am := m.analyze("(true ∧ false")().(analyzeMsg)
	if am.entry.Err == nil {
		t.Fatal("expected error")
	}

	updated, _ := m.Update(am)
	m = updated.(Model)
	if !strings.Contains(m.View(), "Error:") {
		t.Error("view should show the error")
	}
}

func TestModel_EnterStartsLoading(t *testing.T) {
	m := newTestModel(t)
	m.textarea.SetValue("A | !A")

	updated, cmd := m.Update(key(tea.KeyEnter))
	m = updated.(Model)
	if !m.loading {
		t.Error("expected loading state")
	}
	if cmd == nil {
		t.Error("expected analyze command")
	}
	if m.textarea.Value() != "" {
		t.Error("input should be cleared")
	}
	if len(m.inputHistory) != 1 || m.inputHistory[0] != "A | !A" {
		t.Errorf("input history = %v", m.inputHistory)
	}

	// Enter while loading is ignored
	m.textarea.SetValue("true")
	updated, cmd = m.Update(key(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command while loading")
	}
	if updated.(Model).textarea.Value() != "true" {
		t.Error("input should be kept while loading")
	}
}

func TestModel_EmptyEnterIgnored(t *testing.T) {
	m := newTestModel(t)
	m.textarea.SetValue("   ")
	updated, cmd := m.Update(key(tea.KeyEnter))
	if cmd != nil || updated.(Model).loading {
		t.Error("blank input must not start an analysis")
	}
}

func TestModel_Recall(t *testing.T) {
	m := newTestModel(t)
	m.remember("A")
	m.remember("B")
	m.remember("B")
	m.textarea.SetValue("draft")

	if len(m.inputHistory) != 2 {
		t.Fatalf("duplicate inputs should collapse, got %v", m.inputHistory)
	}

	steps := []struct {
		dir  int
		want string
	}{
		{-1, "B"},
		{-1, "A"},
		{-1, "A"},
		{1, "B"},
		{1, "draft"},
	}
	for i, s := range steps {
		m.recall(s.dir)
		if got := m.textarea.Value(); got != s.want {
			t.Errorf("step %d: value = %q, want %q", i, got, s.want)
		}
	}
}

func TestModel_ClearAndQuit(t *testing.T) {
	m := newTestModel(t)
	m.entries = []Entry{{Expression: "true", Err: errors.New("x")}}

	updated, _ := m.Update(key(tea.KeyCtrlL))
	if len(updated.(Model).entries) != 0 {
		t.Error("ctrl+l should clear results")
	}

	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%v: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: expected tea.QuitMsg", k)
		}
	}
}

func TestModel_HistoryView(t *testing.T) {
	m := newTestModel(t)
	m.analyze("A -> B")()
	m.analyze("(A")()

	updated, cmd := m.Update(key(tea.KeyTab))
	m = updated.(Model)
	if m.view != ViewHistory {
		t.Fatalf("view = %v, want history", m.view)
	}
	if cmd == nil {
		t.Fatal("expected history load command")
	}

	hm, ok := cmd().(historyMsg)
	if !ok {
		t.Fatal("expected historyMsg")
	}
	if len(hm.records) != 2 {
		t.Fatalf("records = %d, want 2", len(hm.records))
	}

	updated, _ = m.Update(hm)
	view := updated.(Model).View()
	if !strings.Contains(view, "PARSE_MISSING_BRACKET") {
		t.Error("history should show the failed operation's code")
	}
}

func TestRenderTable(t *testing.T) {
	table, err := mdwcanonical.BuildTable("A ∧ B")
	if err != nil {
		t.Fatal(err)
	}
	out := RenderTable(table)
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want header, rule and 4 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Result") {
		t.Errorf("header = %q", lines[0])
	}

	if got := RenderTable(nil); !strings.Contains(got, mdwcanonical.EmptyTableMessage) {
		t.Errorf("RenderTable(nil) = %q", got)
	}
}

func TestRenderRecord(t *testing.T) {
	rec := &store.Record{Kind: store.KindEvaluate, Expression: "(true", ErrorCode: "PARSE_MISSING_BRACKET"}
	if got := RenderRecord(rec, 80); !strings.Contains(got, "PARSE_MISSING_BRACKET") {
		t.Errorf("RenderRecord() = %q", got)
	}
}
