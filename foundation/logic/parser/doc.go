// File: doc.go
// Title: Logic Parser Package Documentation
// Description: Package documentation for the scanner, lexer and parser of
//              propositional expressions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial parser implementation

/*
Package parser turns propositional expressions into syntax trees.

The accepted surface is small and exact:

  - literals: the lowercase keywords true and false
  - connectives: ¬ ∧ ∨ → ↔, one code point each
  - grouping: ( and )
  - whitespace: the ASCII space only

Lexing is eager: NewLexer scans the whole input and fails on the first
character or word outside the grammar. The parser then reads the tokens with
one token of lookahead. →/↔ bind loosest, ∧/∨ tighter, ¬ tighter still, so
"true ∧ false → false" groups as "(true ∧ false) → false". Both binary tiers
are left-associative.

Failures unwrap to ErrOperandFormat, ErrUnknownChar or ErrLex from the lexer
and ErrMissingBracket or ErrUnmatchedToken from the parser:

	node, err := parser.Parse("(true ∧ false")
	if errors.Is(err, parser.ErrMissingBracket) {
		...
	}
*/
package parser
