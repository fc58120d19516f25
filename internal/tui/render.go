package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	mdwcanonical "github.com/msto63/boole/foundation/logic/canonical"
	mdwstringx "github.com/msto63/boole/foundation/utils/stringx"
	"github.com/msto63/boole/internal/boole/store"
)

const resultHeader = "Result"

// RenderTable renders a truth table with one column per variable and a
// final result column
func RenderTable(t *mdwcanonical.Table) string {
	if t == nil || len(t.Rows) == 0 {
		return SubtitleStyle.Render(mdwcanonical.EmptyTableMessage)
	}

	width := len("false")
	var b strings.Builder

	header := make([]string, 0, len(t.Variables)+1)
	for _, name := range t.Variables {
		header = append(header, TableHeaderStyle.Render(mdwstringx.Center(name, width, ' ')))
	}
	header = append(header, TableHeaderStyle.Render(resultHeader))
	b.WriteString(strings.Join(header, " │ "))
	b.WriteString("\n")

	rule := make([]string, 0, len(header))
	for range t.Variables {
		rule = append(rule, strings.Repeat("─", width))
	}
	rule = append(rule, strings.Repeat("─", len(resultHeader)))
	b.WriteString(HelpStyle.Render(strings.Join(rule, "─┼─")))
	b.WriteString("\n")

	for _, row := range t.Rows {
		cells := make([]string, 0, len(header))
		for _, name := range t.Variables {
			cells = append(cells, renderBool(row.Assignment[name], width))
		}
		cells = append(cells, renderBool(row.Result, width))
		b.WriteString(strings.Join(cells, " │ "))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderBool(v bool, width int) string {
	text := mdwstringx.PadRight(fmt.Sprint(v), width, ' ')
	if v {
		return TrueStyle.Render(text)
	}
	return FalseStyle.Render(text)
}

// RenderClassification renders the classification as a colored badge
func RenderClassification(c mdwcanonical.Classification) string {
	switch c {
	case mdwcanonical.Tautology:
		return TautologyStyle.Render(c.String())
	case mdwcanonical.Contradiction:
		return ContradictionStyle.Render(c.String())
	default:
		return ContingentStyle.Render(c.String())
	}
}

// RenderEntry renders one analyzed expression
func RenderEntry(e Entry) string {
	lines := []string{ExpressionStyle.Render("› " + e.Expression)}

	if e.Err != nil {
		lines = append(lines, RenderError(e.Err.Error()))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if e.Solved != nil {
		return renderSolved(e, lines)
	}

	nf := e.Result
	lines = append(lines,
		RenderTable(nf.Table),
		"",
		LabelStyle.Render("DNF: ")+FormulaStyle.Render(nf.DNF),
		LabelStyle.Render("CNF: ")+FormulaStyle.Render(nf.CNF),
		LabelStyle.Render("Class: ")+RenderClassification(nf.Classification),
	)

	meta := fmt.Sprintf("%d rows in %s", len(nf.Table.Rows), e.Duration.Round(time.Microsecond))
	if nf.Cached {
		meta += " (cached)"
	}
	lines = append(lines, HelpStyle.Render(meta))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderSolved shows a solver verdict for expressions too large for a table
func renderSolved(e Entry, lines []string) string {
	res := e.Solved
	lines = append(lines,
		SubtitleStyle.Render(fmt.Sprintf("%d variables, decided by the SAT solver", len(res.Variables))),
		LabelStyle.Render("Class: ")+RenderClassification(res.Classification),
	)
	if res.Model != nil {
		lines = append(lines, LabelStyle.Render("Model: ")+FormulaStyle.Render(res.Model.String()))
	}
	if res.Counterexample != nil {
		lines = append(lines, LabelStyle.Render("Counterexample: ")+FormulaStyle.Render(res.Counterexample.String()))
	}
	lines = append(lines, HelpStyle.Render(e.Duration.Round(time.Microsecond).String()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderRecord renders one history record on a single line
func RenderRecord(r *store.Record, width int) string {
	when := r.CreatedAt.Format("15:04:05")
	kind := mdwstringx.PadRight(string(r.Kind), len(store.KindNormalForms), ' ')

	status := TrueStyle.Render("ok ")
	detail := r.Result
	if r.Failed() {
		status = FalseStyle.Render("err")
		detail = r.ErrorCode
	}

	expr := r.Expression
	if width > 0 {
		// status, time and kind take about 30 columns
		room := max(width-30, 20)
		expr = mdwstringx.Truncate(expr, room/2, "…")
		detail = mdwstringx.Truncate(detail, room/2, "…")
	}
	return fmt.Sprintf("%s  %s  %s  %s  %s", status, when, kind, expr, HelpStyle.Render(detail))
}
