// File: parser.go
// Title: Logic Recursive Descent Parser
// Description: Builds an expression tree from the lexer's tokens with one
//              token of lookahead and no backtracking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial parser implementation

package parser

import (
	mdwast "github.com/msto63/boole/foundation/logic/ast"
)

// Grammar, loosest binding first. Both binary tiers fold to the left.
//
//	Expr   := Clause (('→' | '↔') Clause)*
//	Clause := Factor (('∧' | '∨') Factor)*
//	Factor := '¬' Factor | Atom
//	Atom   := Operand | '(' Expr ')'

// Parser consumes the tokens of a Lexer it owns
type Parser struct {
	lexer *Lexer
}

// NewParser takes ownership of lexer
func NewParser(lexer *Lexer) *Parser {
	return &Parser{lexer: lexer}
}

// Parse parses the whole token sequence into a single tree
func (p *Parser) Parse() (mdwast.Node, error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	// a closing bracket without an opening one is all that can remain here
	if tok, ok := p.lexer.Peek(); ok {
		return nil, p.unmatched(tok)
	}
	return node, nil
}

// Parse lexes and parses text
func Parse(text string) (mdwast.Node, error) {
	lexer, err := NewLexer(text)
	if err != nil {
		return nil, err
	}
	return NewParser(lexer).Parse()
}

func (p *Parser) parseExpr() (mdwast.Node, error) {
	lhs, err := p.parseClause()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.lexer.Peek()
		if !ok || !tok.IsOperator(mdwast.OperatorConditional, mdwast.OperatorBiConditional) {
			return lhs, nil
		}
		p.lexer.Next()

		rhs, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		lhs = mdwast.NewBinary(tok.Operator, lhs, rhs)
	}
}

func (p *Parser) parseClause() (mdwast.Node, error) {
	lhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.lexer.Peek()
		if !ok {
			return lhs, nil
		}
		if !tok.IsOperator(mdwast.OperatorAnd, mdwast.OperatorOr) {
			if tok.IsOperator(mdwast.OperatorConditional, mdwast.OperatorBiConditional) ||
				tok.IsBracket(mdwast.BracketRight) {
				return lhs, nil
			}
			return nil, p.unmatched(tok)
		}
		p.lexer.Next()

		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		lhs = mdwast.NewBinary(tok.Operator, lhs, rhs)
	}
}

func (p *Parser) parseFactor() (mdwast.Node, error) {
	tok, ok := p.lexer.Peek()
	if ok && tok.IsOperator(mdwast.OperatorNon) {
		p.lexer.Next()
		child, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return mdwast.NewNot(child, tok.Position), nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (mdwast.Node, error) {
	tok, ok := p.lexer.Next()
	if !ok {
		return nil, &ParseError{Kind: ParseUnmatchedToken, Position: p.lexer.End()}
	}

	switch {
	case tok.Type == TokenOperand:
		return mdwast.NewOperand(tok.Value, tok.Position), nil

	case tok.IsBracket(mdwast.BracketLeft):
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.lexer.Next()
		if !ok || !closing.IsBracket(mdwast.BracketRight) {
			return nil, &ParseError{Kind: ParseMissingBracket, Position: tok.Position}
		}
		return inner, nil

	default:
		return nil, p.unmatched(tok)
	}
}

func (p *Parser) unmatched(tok Token) *ParseError {
	return &ParseError{Kind: ParseUnmatchedToken, Position: tok.Position, Token: &tok}
}
