// File: doc.go
// Title: Logic Abstract Syntax Tree Package Documentation
// Description: Package documentation for the propositional logic AST.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial AST implementation

/*
Package ast defines the syntax tree of propositional expressions.

A tree is built once by the parser and never modified afterwards. Every node
owns its children exclusively; there is no sharing and there are no cycles.
Node is a closed sum type, so consumers switch over *Operand, *UnaryExpr and
*BinaryExpr exhaustively.

String renders the fully parenthesized infix form, which makes grouping
visible:

	true ∧ false ∧ true   →   ((true ∧ false) ∧ true)
*/
package ast
