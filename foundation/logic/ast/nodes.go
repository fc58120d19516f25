// File: nodes.go
// Title: Logic AST Node Definitions
// Description: Defines the connective kinds and the three node shapes of a
//              parsed propositional expression: literal operands, negation
//              and binary connectives.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
)

// OperatorType is the closed set of logical connectives
type OperatorType int

const (
	OperatorAnd           OperatorType = iota // ∧
	OperatorOr                                // ∨
	OperatorConditional                       // →
	OperatorBiConditional                     // ↔
	OperatorNon                               // ¬
)

// Glyphs of the connectives as accepted by the lexer
const (
	SymbolAnd           = '∧'
	SymbolOr            = '∨'
	SymbolConditional   = '→'
	SymbolBiConditional = '↔'
	SymbolNon           = '¬'
)

// OperatorFromSymbol maps a connective glyph to its operator
func OperatorFromSymbol(r rune) (OperatorType, bool) {
	switch r {
	case SymbolAnd:
		return OperatorAnd, true
	case SymbolOr:
		return OperatorOr, true
	case SymbolConditional:
		return OperatorConditional, true
	case SymbolBiConditional:
		return OperatorBiConditional, true
	case SymbolNon:
		return OperatorNon, true
	default:
		return 0, false
	}
}

// Symbol returns the connective glyph
func (op OperatorType) Symbol() rune {
	switch op {
	case OperatorAnd:
		return SymbolAnd
	case OperatorOr:
		return SymbolOr
	case OperatorConditional:
		return SymbolConditional
	case OperatorBiConditional:
		return SymbolBiConditional
	case OperatorNon:
		return SymbolNon
	default:
		return '?'
	}
}

// String returns the operator name
func (op OperatorType) String() string {
	switch op {
	case OperatorAnd:
		return "And"
	case OperatorOr:
		return "Or"
	case OperatorConditional:
		return "Conditional"
	case OperatorBiConditional:
		return "BiConditional"
	case OperatorNon:
		return "Non"
	default:
		return fmt.Sprintf("OperatorType(%d)", int(op))
	}
}

// IsUnary reports whether the operator is the prefix negation
func (op OperatorType) IsUnary() bool {
	return op == OperatorNon
}

// IsBinary reports whether the operator is one of the four infix connectives
func (op OperatorType) IsBinary() bool {
	switch op {
	case OperatorAnd, OperatorOr, OperatorConditional, OperatorBiConditional:
		return true
	default:
		return false
	}
}

// BracketType distinguishes opening and closing parentheses
type BracketType int

const (
	BracketLeft  BracketType = iota // (
	BracketRight                    // )
)

// String returns the bracket glyph
func (b BracketType) String() string {
	if b == BracketLeft {
		return "("
	}
	return ")"
}

// Node is a parsed expression. The set of implementations is closed:
// *Operand, *UnaryExpr and *BinaryExpr.
type Node interface {
	// String returns the fully parenthesized infix form
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Pos returns the character offset of the node's first token. Brackets
	// are not nodes: a binary node starts where its left operand starts, so
	// for "(a ∧ b) → c" the implication is at the offset of a, not of "(".
	// Operand positions are never moved; the sat encoder maps them back
	// to variables.
	Pos() int

	node()
}

// Operand is a literal truth value
type Operand struct {
	Value    bool
	Position int
}

// UnaryExpr is a negation. Op is always OperatorNon.
type UnaryExpr struct {
	Op       OperatorType
	Child    Node
	Position int
}

// BinaryExpr is an infix connective. Op is never OperatorNon.
type BinaryExpr struct {
	Op       OperatorType
	Lhs      Node
	Rhs      Node
	Position int
}

// NewOperand creates a literal node
func NewOperand(value bool, pos int) *Operand {
	return &Operand{Value: value, Position: pos}
}

// NewNot wraps child in a negation
func NewNot(child Node, pos int) *UnaryExpr {
	return &UnaryExpr{Op: OperatorNon, Child: child, Position: pos}
}

// NewBinary creates a binary node; it panics if op is not binary
func NewBinary(op OperatorType, lhs, rhs Node) *BinaryExpr {
	if !op.IsBinary() {
		panic(fmt.Sprintf("ast: %s is not a binary operator", op))
	}
	return &BinaryExpr{Op: op, Lhs: lhs, Rhs: rhs, Position: lhs.Pos()}
}

func (o *Operand) String() string {
	if o.Value {
		return "true"
	}
	return "false"
}

func (u *UnaryExpr) String() string {
	return string(u.Op.Symbol()) + u.Child.String()
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %c %s)", b.Lhs.String(), b.Op.Symbol(), b.Rhs.String())
}

func (o *Operand) Pos() int    { return o.Position }
func (u *UnaryExpr) Pos() int  { return u.Position }
func (b *BinaryExpr) Pos() int { return b.Position }

func (*Operand) node()    {}
func (*UnaryExpr) node()  {}
func (*BinaryExpr) node() {}
