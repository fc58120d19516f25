// File: engine.go
// Title: Logic Engine
// Description: High-level entry point that ties the parser, calculator and
//              truth table packages together behind length and variable
//              limits, structured errors and logging.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial engine implementation
// - 2026-10-16 v0.2.0: Solve for expressions beyond the truth table limit

package logic

import (
	"unicode/utf8"

	mdwerror "github.com/msto63/boole/foundation/core/error"
	mdwlog "github.com/msto63/boole/foundation/core/log"
	mdwast "github.com/msto63/boole/foundation/logic/ast"
	mdwcalculator "github.com/msto63/boole/foundation/logic/calculator"
	mdwcanonical "github.com/msto63/boole/foundation/logic/canonical"
	mdwparser "github.com/msto63/boole/foundation/logic/parser"
	"github.com/msto63/boole/foundation/logic/sat"
	mdwstringx "github.com/msto63/boole/foundation/utils/stringx"
)

// DefaultMaxExpressionLength is the default limit in characters
const DefaultMaxExpressionLength = 4096

// SelfTestExpression evaluates to true under a correct engine
const SelfTestExpression = "((true ∧ false) → true) ↔ true"

// Options configures the engine
type Options struct {
	Logger              *mdwlog.Logger
	MaxExpressionLength int
	MaxVariables        int
}

// Engine parses and evaluates expressions and derives truth tables
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// NormalForms bundles a truth table with the canonical forms read off it
type NormalForms struct {
	Table          *mdwcanonical.Table         `json:"table" yaml:"table"`
	DNF            string                      `json:"dnf" yaml:"dnf"`
	CNF            string                      `json:"cnf" yaml:"cnf"`
	Classification mdwcanonical.Classification `json:"classification" yaml:"classification"`
}

// New creates an engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxExpressionLength == 0 {
		opts.MaxExpressionLength = DefaultMaxExpressionLength
	}
	if opts.MaxVariables == 0 {
		opts.MaxVariables = mdwcanonical.DefaultMaxVariables
	}
	if opts.MaxExpressionLength < 0 || opts.MaxVariables < 0 {
		return nil, mdwerror.New("engine limits must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("maxExpressionLength", opts.MaxExpressionLength).
			WithDetail("maxVariables", opts.MaxVariables)
	}

	logger := opts.Logger.WithField("component", "logic-engine")
	logger.Debug("Logic engine initialized", mdwlog.Fields{
		"maxExpressionLength": opts.MaxExpressionLength,
		"maxVariables":        opts.MaxVariables,
	})

	return &Engine{logger: logger, options: opts}, nil
}

// Options returns the effective engine options
func (e *Engine) Options() Options {
	return e.options
}

// Parse builds the AST of a literal expression
func (e *Engine) Parse(expr string) (mdwast.Node, error) {
	if err := e.check(expr, "parse"); err != nil {
		return nil, err
	}

	node, err := mdwparser.Parse(expr)
	if err != nil {
		e.logger.Debug("Expression rejected", mdwlog.Fields{
			"expression": mdwstringx.Truncate(expr, 80, "..."),
			"error":      err.Error(),
		})
		return nil, FromLogicError(err, "parse")
	}

	if e.logger.IsLevelEnabled(mdwlog.LevelDebug) {
		stats := mdwast.Analyze(node)
		e.logger.Debug("Expression parsed", mdwlog.Fields{
			"nodes":    stats.Nodes,
			"depth":    stats.Depth,
			"operands": stats.Operands,
		})
	}
	return node, nil
}

// Evaluate parses and evaluates a literal expression
func (e *Engine) Evaluate(expr string) (bool, error) {
	node, err := e.Parse(expr)
	if err != nil {
		return false, err
	}
	return mdwcalculator.New(node).Eval(), nil
}

// EvaluateWith evaluates an expression with variables under an assignment
func (e *Engine) EvaluateWith(expr string, assignment mdwcanonical.Assignment) (bool, error) {
	if err := e.check(expr, "evaluate"); err != nil {
		return false, err
	}
	result, err := mdwcanonical.Evaluate(expr, assignment)
	if err != nil {
		return false, FromLogicError(err, "evaluate")
	}
	return result, nil
}

// TruthTable enumerates every assignment of the variables of expr
func (e *Engine) TruthTable(expr string) (*mdwcanonical.Table, error) {
	if err := e.check(expr, "truth_table"); err != nil {
		return nil, err
	}

	timer := e.logger.StartTimer("truth_table")
	table, err := mdwcanonical.BuildTableWithOptions(expr, mdwcanonical.Options{
		MaxVariables: e.options.MaxVariables,
	})
	if err != nil {
		timer.Stop(err)
		return nil, FromLogicError(err, "truth_table").
			WithDetail("maxVariables", e.options.MaxVariables)
	}
	timer.Stop(nil, mdwlog.Fields{"rows": len(table.Rows)})
	return table, nil
}

// NormalForms builds the truth table of expr and reads DNF and CNF off it
func (e *Engine) NormalForms(expr string) (*NormalForms, error) {
	table, err := e.TruthTable(expr)
	if err != nil {
		return nil, err
	}
	return &NormalForms{
		Table:          table,
		DNF:            mdwcanonical.DNF(table),
		CNF:            mdwcanonical.CNF(table),
		Classification: table.Classify(),
	}, nil
}

// Solve decides satisfiability and validity of expr with the SAT solver.
// The variable limit of truth tables does not apply.
func (e *Engine) Solve(expr string) (*sat.Result, error) {
	if err := e.check(expr, "solve"); err != nil {
		return nil, err
	}

	timer := e.logger.StartTimer("solve")
	f, err := sat.Compile(expr)
	if err != nil {
		timer.Stop(err)
		return nil, FromLogicError(err, "solve")
	}
	res, err := f.Solve()
	if err != nil {
		timer.Stop(err)
		return nil, FromLogicError(err, "solve")
	}
	timer.Stop(nil, mdwlog.Fields{"variables": len(res.Variables), "clauses": f.Size()})
	return res, nil
}

// SelfTest evaluates SelfTestExpression and fails unless it yields true
func (e *Engine) SelfTest() error {
	ok, err := e.Evaluate(SelfTestExpression)
	if err != nil {
		return err
	}
	if !ok {
		return mdwerror.New("engine self-test returned false").WithCode(mdwerror.CodeInternal)
	}
	return nil
}

func (e *Engine) check(expr, operation string) error {
	if mdwstringx.IsBlank(expr) {
		return mdwerror.New("expression cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(operation)
	}
	if n := utf8.RuneCountInString(expr); n > e.options.MaxExpressionLength {
		return mdwerror.Newf("expression has %d characters, limit is %d", n, e.options.MaxExpressionLength).
			WithCode(mdwerror.CodeExpressionLength).
			WithOperation(operation)
	}
	return nil
}
