// File: sat.go
// Title: Satisfiability Checking
// Description: Decides satisfiability and validity of expressions with free
//              variables. Expressions are encoded into clauses and handed to
//              the gophersat CDCL solver instead of enumerating a truth
//              table, so the variable limit of tables does not apply.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial solver bridge

package sat

import (
	"fmt"
	"strings"

	"github.com/crillab/gophersat/solver"

	mdwast "github.com/msto63/boole/foundation/logic/ast"
	mdwcalculator "github.com/msto63/boole/foundation/logic/calculator"
	mdwcanonical "github.com/msto63/boole/foundation/logic/canonical"
	mdwparser "github.com/msto63/boole/foundation/logic/parser"
)

// Result answers both questions about one expression. Model is a
// satisfying assignment, Counterexample a falsifying one; each is nil when
// it does not exist.
type Result struct {
	Expression     string                  `json:"expression" yaml:"expression"`
	Variables      []string                `json:"variables" yaml:"variables"`
	Satisfiable    bool                    `json:"satisfiable" yaml:"satisfiable"`
	Valid          bool                    `json:"valid" yaml:"valid"`
	Model          mdwcanonical.Assignment `json:"model,omitempty" yaml:"model,omitempty"`
	Counterexample mdwcanonical.Assignment `json:"counterexample,omitempty" yaml:"counterexample,omitempty"`
}

// Classification matches the classification of the expression's truth table
func (r *Result) Classification() mdwcanonical.Classification {
	switch {
	case r.Valid:
		return mdwcanonical.Tautology
	case !r.Satisfiable:
		return mdwcanonical.Contradiction
	default:
		return mdwcanonical.Contingent
	}
}

// Formula is an expression in conjunctive normal form over DIMACS
// literals. Variables 1..k are the expression's variables in alphabetical
// order; higher indices name subexpressions.
type Formula struct {
	expr      string
	variables []string
	root      mdwast.Node
	clauses   [][]int
	literal   int // true exactly when the expression is
}

// Compile parses expr and encodes it. Lexer and parser errors are returned
// unchanged; their positions refer to the text with every variable written
// out as true.
func Compile(expr string) (*Formula, error) {
	text, origin := placeholders(expr)
	root, err := mdwparser.Parse(text)
	if err != nil {
		return nil, err
	}

	vars := mdwcanonical.Variables(expr)
	enc := &encoder{origin: origin, index: make(map[string]int, len(vars))}
	for _, name := range vars {
		enc.index[name] = enc.fresh()
	}
	lit := root.Accept(enc).(int)

	return &Formula{
		expr:      expr,
		variables: vars,
		root:      root,
		clauses:   enc.clauses,
		literal:   lit,
	}, nil
}

// Variables returns the free variables in alphabetical order
func (f *Formula) Variables() []string {
	return append([]string(nil), f.variables...)
}

// Size returns the number of clauses of the encoding
func (f *Formula) Size() int {
	return len(f.clauses)
}

// Solve asks the solver for a model of the formula and of its negation
func (f *Formula) Solve() (*Result, error) {
	res := &Result{Expression: f.expr, Variables: f.Variables()}

	if len(f.variables) == 0 {
		value := mdwcalculator.Eval(f.root)
		res.Satisfiable, res.Valid = value, value
		if value {
			res.Model = mdwcanonical.Assignment{}
		} else {
			res.Counterexample = mdwcanonical.Assignment{}
		}
		return res, nil
	}

	model, err := f.search(f.literal, true)
	if err != nil {
		return nil, err
	}
	counter, err := f.search(-f.literal, false)
	if err != nil {
		return nil, err
	}

	res.Satisfiable = model != nil
	res.Valid = counter == nil
	res.Model = model
	res.Counterexample = counter
	return res, nil
}

// Solve compiles and solves expr
func Solve(expr string) (*Result, error) {
	f, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return f.Solve()
}

// search solves the clauses with goal asserted and checks the model
// against the calculator: under it the expression must evaluate to want
func (f *Formula) search(goal int, want bool) (mdwcanonical.Assignment, error) {
	cnf := make([][]int, 0, len(f.clauses)+1)
	cnf = append(cnf, f.clauses...)
	cnf = append(cnf, []int{goal})

	s := solver.New(solver.ParseSlice(cnf))
	if s.Solve() != solver.Sat {
		return nil, nil
	}
	values := s.Model()

	model := make(mdwcanonical.Assignment, len(f.variables))
	for i, name := range f.variables {
		model[name] = i < len(values) && values[i]
	}

	got, err := mdwcanonical.Evaluate(f.expr, model)
	if err != nil {
		return nil, err
	}
	if got != want {
		return nil, fmt.Errorf("%w: model %s evaluates to %t", ErrSolver, model, got)
	}
	return model, nil
}

// placeholders writes every variable as the literal true and the shorthand
// constants as true and false, like canonical.Substitute. origin maps the
// character offset of each placeholder literal to its variable.
func placeholders(expr string) (string, map[int]string) {
	var sb strings.Builder
	origin := make(map[int]string)
	pos := 0

	emit := func(word string) {
		sb.WriteString(word)
		pos += len(word)
	}
	for _, r := range expr {
		switch {
		case r == mdwcanonical.ConstTrue:
			emit("true")
		case r == mdwcanonical.ConstFalse:
			emit("false")
		case mdwcanonical.IsVariable(r):
			origin[pos] = string(r)
			emit("true")
		default:
			sb.WriteRune(r)
			pos++
		}
	}
	return sb.String(), origin
}

// encoder performs the Tseitin transformation: every binary node gets a
// fresh variable x and clauses forcing x to equal the node's value.
// Negation needs no variable; it flips the literal.
type encoder struct {
	origin  map[int]string
	index   map[string]int
	last    int
	top     int // literal fixed to true by a unit clause, 0 until needed
	clauses [][]int
}

func (e *encoder) fresh() int {
	e.last++
	return e.last
}

func (e *encoder) constant(value bool) int {
	if e.top == 0 {
		e.top = e.fresh()
		e.clauses = append(e.clauses, []int{e.top})
	}
	if value {
		return e.top
	}
	return -e.top
}

// add appends a clause without repeated literals. Clauses containing a
// literal and its negation always hold and are skipped.
func (e *encoder) add(lits ...int) {
	seen := make(map[int]bool, len(lits))
	clause := make([]int, 0, len(lits))
	for _, l := range lits {
		if seen[-l] {
			return
		}
		if !seen[l] {
			seen[l] = true
			clause = append(clause, l)
		}
	}
	e.clauses = append(e.clauses, clause)
}

func (e *encoder) VisitOperand(node *mdwast.Operand) interface{} {
	if name, ok := e.origin[node.Position]; ok {
		return e.index[name]
	}
	return e.constant(node.Value)
}

func (e *encoder) VisitUnary(node *mdwast.UnaryExpr) interface{} {
	return -node.Child.Accept(e).(int)
}

func (e *encoder) VisitBinary(node *mdwast.BinaryExpr) interface{} {
	a := node.Lhs.Accept(e).(int)
	b := node.Rhs.Accept(e).(int)
	x := e.fresh()

	switch node.Op {
	case mdwast.OperatorAnd:
		e.add(-x, a)
		e.add(-x, b)
		e.add(x, -a, -b)
	case mdwast.OperatorOr:
		e.add(-x, a, b)
		e.add(x, -a)
		e.add(x, -b)
	case mdwast.OperatorConditional:
		e.add(-x, -a, b)
		e.add(x, a)
		e.add(x, -b)
	default:
		e.add(-x, -a, b)
		e.add(-x, a, -b)
		e.add(x, a, b)
		e.add(x, -a, -b)
	}
	return x
}
