// File: calculator.go
// Title: Expression Evaluator
// Description: Evaluates a parsed expression tree to a single truth value
//              by structural recursion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial evaluator implementation

// Package calculator evaluates propositional expressions.
package calculator

import (
	"fmt"

	mdwast "github.com/msto63/boole/foundation/logic/ast"
	mdwparser "github.com/msto63/boole/foundation/logic/parser"
)

// Calculator holds one parsed expression
type Calculator struct {
	root mdwast.Node
}

// Build lexes and parses text. Any lexing or parsing failure is returned
// and no Calculator is produced.
func Build(text string) (*Calculator, error) {
	root, err := mdwparser.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Calculator{root: root}, nil
}

// MustBuild is like Build but panics on malformed input
func MustBuild(text string) *Calculator {
	c, err := Build(text)
	if err != nil {
		panic(fmt.Sprintf("calculator: %q: %v", text, err))
	}
	return c
}

// New wraps an already parsed tree
func New(root mdwast.Node) *Calculator {
	return &Calculator{root: root}
}

// AST returns the parsed tree. It must not be modified.
func (c *Calculator) AST() mdwast.Node {
	return c.root
}

// Eval evaluates the expression
func (c *Calculator) Eval() bool {
	return Eval(c.root)
}

// Evaluate builds and evaluates text
func Evaluate(text string) (bool, error) {
	c, err := Build(text)
	if err != nil {
		return false, err
	}
	return c.Eval(), nil
}

// Eval evaluates node. The left operand is evaluated before the right.
func Eval(node mdwast.Node) bool {
	switch n := node.(type) {
	case *mdwast.Operand:
		return n.Value
	case *mdwast.UnaryExpr:
		return !Eval(n.Child)
	case *mdwast.BinaryExpr:
		lhs := Eval(n.Lhs)
		rhs := Eval(n.Rhs)
		switch n.Op {
		case mdwast.OperatorAnd:
			return lhs && rhs
		case mdwast.OperatorOr:
			return lhs || rhs
		case mdwast.OperatorConditional:
			return !lhs || rhs
		case mdwast.OperatorBiConditional:
			return lhs == rhs
		}
	}
	// the node set is closed and the parser only builds valid operators
	panic(fmt.Sprintf("calculator: unexpected node %T", node))
}
