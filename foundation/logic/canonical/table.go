// File: table.go
// Title: Truth Table Construction
// Description: Finds the free variables of an expression, substitutes
//              assignments for them and enumerates every assignment into a
//              truth table evaluated by the calculator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial truth table implementation

package canonical

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	mdwcalculator "github.com/msto63/boole/foundation/logic/calculator"
)

// DefaultMaxVariables bounds tables to 65536 rows
const DefaultMaxVariables = 16

// Shorthand constants. They are never treated as variables.
const (
	ConstTrue  = 'T'
	ConstFalse = 'F'
)

var (
	// ErrUnboundVariable: a variable in the expression has no value in the assignment
	ErrUnboundVariable = errors.New("unbound variable")

	// ErrTooManyVariables: the table would exceed the configured variable limit
	ErrTooManyVariables = errors.New("too many variables")
)

// Assignment maps single-letter variable names to truth values
type Assignment map[string]bool

// String renders the assignment in variable order, e.g. "A=true B=false"
func (a Assignment) String() string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%t", name, a[name])
	}
	return strings.Join(parts, " ")
}

// Row is one assignment together with the value of the expression under it
type Row struct {
	Assignment Assignment `json:"assignment" yaml:"assignment"`
	Result     bool       `json:"result" yaml:"result"`
}

// Table is the complete truth table of an expression
type Table struct {
	Expression string   `json:"expression" yaml:"expression"`
	Variables  []string `json:"variables" yaml:"variables"`
	Rows       []Row    `json:"rows" yaml:"rows"`
}

// Options configures table construction
type Options struct {
	MaxVariables int
}

// IsVariable reports whether r names a free variable
func IsVariable(r rune) bool {
	return r >= 'A' && r <= 'Z' && r != ConstTrue && r != ConstFalse
}

// Variables returns the distinct free variables of expr in alphabetical order
func Variables(expr string) []string {
	seen := make(map[rune]bool)
	for _, r := range expr {
		if IsVariable(r) {
			seen[r] = true
		}
	}

	vars := make([]string, 0, len(seen))
	for r := range seen {
		vars = append(vars, string(r))
	}
	sort.Strings(vars)
	return vars
}

// Substitute replaces every variable with the literal of its assigned value
// and the shorthand constants with true and false
func Substitute(expr string, assignment Assignment) (string, error) {
	var sb strings.Builder
	sb.Grow(len(expr) * 2)

	for _, r := range expr {
		switch {
		case r == ConstTrue:
			sb.WriteString("true")
		case r == ConstFalse:
			sb.WriteString("false")
		case IsVariable(r):
			value, ok := assignment[string(r)]
			if !ok {
				return "", fmt.Errorf("%w: %c", ErrUnboundVariable, r)
			}
			if value {
				sb.WriteString("true")
			} else {
				sb.WriteString("false")
			}
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String(), nil
}

// Evaluate substitutes assignment into expr and evaluates the result
func Evaluate(expr string, assignment Assignment) (bool, error) {
	text, err := Substitute(expr, assignment)
	if err != nil {
		return false, err
	}
	return mdwcalculator.Evaluate(text)
}

// BuildTable enumerates all assignments of the variables of expr
func BuildTable(expr string) (*Table, error) {
	return BuildTableWithOptions(expr, Options{})
}

// BuildTableWithOptions enumerates all 2^k assignments of the k variables of
// expr. Rows count in binary with the first variable as the most significant
// bit, so the first row assigns false to every variable.
func BuildTableWithOptions(expr string, opts Options) (*Table, error) {
	if opts.MaxVariables <= 0 {
		opts.MaxVariables = DefaultMaxVariables
	}

	vars := Variables(expr)
	k := len(vars)
	if k > opts.MaxVariables {
		return nil, fmt.Errorf("%w: %d variables, limit is %d", ErrTooManyVariables, k, opts.MaxVariables)
	}

	table := &Table{
		Expression: expr,
		Variables:  vars,
		Rows:       make([]Row, 0, 1<<k),
	}

	for i := 0; i < 1<<k; i++ {
		assignment := make(Assignment, k)
		for j, name := range vars {
			assignment[name] = i&(1<<(k-1-j)) != 0
		}

		result, err := Evaluate(expr, assignment)
		if err != nil {
			return nil, err
		}
		table.Rows = append(table.Rows, Row{Assignment: assignment, Result: result})
	}

	return table, nil
}

// Models returns the assignments under which the expression is true
func (t *Table) Models() []Assignment {
	var models []Assignment
	for _, row := range t.Rows {
		if row.Result {
			models = append(models, row.Assignment)
		}
	}
	return models
}

// Classification describes how a table's results are distributed
type Classification int

const (
	Contingent Classification = iota
	Tautology
	Contradiction
)

// String returns the classification name
func (c Classification) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	default:
		return "contingent"
	}
}

// MarshalText renders the classification by name
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classify reports whether the expression is always true, never true, or neither
func (t *Table) Classify() Classification {
	trueRows := len(t.Models())
	switch {
	case len(t.Rows) > 0 && trueRows == len(t.Rows):
		return Tautology
	case trueRows == 0:
		return Contradiction
	default:
		return Contingent
	}
}

// Satisfiable reports whether at least one row is true
func (t *Table) Satisfiable() bool {
	return len(t.Models()) > 0
}
