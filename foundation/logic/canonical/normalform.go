// File: normalform.go
// Title: Disjunctive and Conjunctive Normal Forms
// Description: Reads the canonical DNF and CNF off a truth table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial normal form implementation

package canonical

import (
	"strings"
)

// DNF returns the disjunction of one conjunction per true row. A literal is
// negated when its variable is false in the row. With no true rows the
// result is the constant F; a row without variables contributes T.
func DNF(t *Table) string {
	var terms []string
	for _, row := range t.Rows {
		if !row.Result {
			continue
		}
		terms = append(terms, term(t.Variables, row.Assignment, false, " ∧ ", "T"))
	}
	if len(terms) == 0 {
		return string(ConstFalse)
	}
	return strings.Join(terms, " ∨ ")
}

// CNF returns the conjunction of one disjunction per false row. A literal is
// negated when its variable is true in the row. With no false rows the
// result is the constant T; a row without variables contributes F.
func CNF(t *Table) string {
	var clauses []string
	for _, row := range t.Rows {
		if row.Result {
			continue
		}
		clauses = append(clauses, term(t.Variables, row.Assignment, true, " ∨ ", "F"))
	}
	if len(clauses) == 0 {
		return string(ConstTrue)
	}
	return strings.Join(clauses, " ∧ ")
}

// term joins the literals of one row; negateWhen is the value that gets a ¬
func term(vars []string, a Assignment, negateWhen bool, sep, empty string) string {
	if len(vars) == 0 {
		return empty
	}
	literals := make([]string, len(vars))
	for i, name := range vars {
		if a[name] == negateWhen {
			literals[i] = "¬" + name
		} else {
			literals[i] = name
		}
	}
	return "(" + strings.Join(literals, sep) + ")"
}
