// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     tui
// Description: Lipgloss styles for the interactive evaluator
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// palette of the evaluator; true values share the accent of tautologies
// and false values the one of contradictions
var (
	violet = lipgloss.Color("#7C3AED")
	green  = lipgloss.Color("#10B981")
	amber  = lipgloss.Color("#F59E0B")
	red    = lipgloss.Color("#EF4444")
	gray   = lipgloss.Color("#6B7280")
	white  = lipgloss.Color("#F9FAFB")
	slate  = lipgloss.Color("#374151")
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func bold(c lipgloss.Color) lipgloss.Style {
	return fg(c).Bold(true)
}

var (
	TitleStyle      = bold(violet)
	SubtitleStyle   = fg(gray).Italic(true)
	ExpressionStyle = bold(green)
	LabelStyle      = bold(amber)
	FormulaStyle    = fg(white)
	HelpStyle       = fg(gray)

	TableHeaderStyle = bold(violet)
	TrueStyle        = fg(green)
	FalseStyle       = fg(red)

	TautologyStyle     = bold(green)
	ContradictionStyle = bold(red)
	ContingentStyle    = bold(amber)

	StatusBarStyle = lipgloss.NewStyle().Background(slate).Foreground(white).Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(violet).
				Padding(0, 1)

	TabStyle       = fg(gray).Padding(0, 2)
	ActiveTabStyle = bold(violet).Padding(0, 2).Underline(true)

	errorStyle = fg(red)
)

// RenderError renders an error line
func RenderError(err string) string {
	return errorStyle.Render("Error: " + err)
}

// RenderHelp renders a key help line
func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
