// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     service
// Description: Input helpers for interactive front ends
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package service

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/boole/foundation/core/error"
	mdwcanonical "github.com/msto63/boole/foundation/logic/canonical"
	mdwstringx "github.com/msto63/boole/foundation/utils/stringx"
)

// asciiOperators maps keyboard-friendly spellings to the connective symbols.
// Longer spellings come first so "<->" is not read as "<" followed by "->".
var asciiOperators = strings.NewReplacer(
	"<->", "↔",
	"<=>", "↔",
	"->", "→",
	"=>", "→",
	"&&", "∧",
	"||", "∨",
	"&", "∧",
	"|", "∨",
	"!", "¬",
	"~", "¬",
)

// NormalizeSymbols replaces ASCII operator spellings with their symbols.
// Error positions refer to the normalized expression.
func NormalizeSymbols(expr string) string {
	return asciiOperators.Replace(expr)
}

// ParseAssignment parses "A=true,B=false". Values may be true/false, t/f
// or 1/0 in any case; pairs are separated by commas or spaces.
func ParseAssignment(s string) (map[string]bool, error) {
	assignment := make(map[string]bool)
	if mdwstringx.IsBlank(s) {
		return assignment, nil
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	for _, field := range fields {
		name, raw, ok := strings.Cut(field, "=")
		name = strings.TrimSpace(name)
		if !ok || len(name) != 1 || !mdwcanonical.IsVariable(rune(name[0])) {
			return nil, invalidAssignment(field, "expected VAR=VALUE with a single letter variable")
		}

		var value bool
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "t", "1":
			value = true
		case "false", "f", "0":
			value = false
		default:
			return nil, invalidAssignment(field, "value must be true or false")
		}

		if prev, dup := assignment[name]; dup && prev != value {
			return nil, invalidAssignment(field, "conflicting values for "+name)
		}
		assignment[name] = value
	}
	return assignment, nil
}

func invalidAssignment(field, reason string) error {
	return mdwerror.New(fmt.Sprintf("invalid assignment %q: %s", field, reason)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("parse_assignment").
		WithDetail("field", field)
}
