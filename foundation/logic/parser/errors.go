// File: errors.go
// Title: Lexer and Parser Errors
// Description: Error types for the lexing and parsing stages. Each error
//              unwraps to a sentinel so callers can classify failures with
//              errors.Is.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial error definitions

package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrOperandFormat: a lowercase word other than true or false
	ErrOperandFormat = errors.New("operand format error")

	// ErrUnknownChar: a character outside the grammar
	ErrUnknownChar = errors.New("unknown character")

	// ErrLex: the input could not be decoded into characters
	ErrLex = errors.New("lex error")

	// ErrMissingBracket: an opening parenthesis is never closed
	ErrMissingBracket = errors.New("missing bracket")

	// ErrUnmatchedToken: a token, or the end of input, where the grammar permits none
	ErrUnmatchedToken = errors.New("unmatched token")
)

// LexErrorKind classifies lexing failures
type LexErrorKind int

const (
	LexOperandFormat LexErrorKind = iota
	LexUnknownChar
	LexInternal
)

// LexError reports the first character or word that could not be tokenized
type LexError struct {
	Kind     LexErrorKind
	Position int    // character offset
	Char     rune   // offending character for LexUnknownChar
	Text     string // offending word for LexOperandFormat
}

func (e *LexError) Error() string {
	switch e.Kind {
	case LexOperandFormat:
		return fmt.Sprintf("operand format error at position %d: %q is neither true nor false", e.Position, e.Text)
	case LexUnknownChar:
		return fmt.Sprintf("unknown character %q at position %d", e.Char, e.Position)
	default:
		return fmt.Sprintf("lex error at position %d: %s", e.Position, e.Text)
	}
}

// Unwrap returns the sentinel for the error kind
func (e *LexError) Unwrap() error {
	switch e.Kind {
	case LexOperandFormat:
		return ErrOperandFormat
	case LexUnknownChar:
		return ErrUnknownChar
	default:
		return ErrLex
	}
}

// ParseErrorKind classifies parsing failures
type ParseErrorKind int

const (
	ParseMissingBracket ParseErrorKind = iota
	ParseUnmatchedToken
)

// ParseError reports where parsing stopped. Token is nil when the parser
// ran out of input.
type ParseError struct {
	Kind     ParseErrorKind
	Position int
	Token    *Token
}

func (e *ParseError) Error() string {
	if e.Kind == ParseMissingBracket {
		return fmt.Sprintf("missing bracket: '(' at position %d is never closed", e.Position)
	}
	if e.Token == nil {
		return fmt.Sprintf("unmatched token: unexpected end of input at position %d", e.Position)
	}
	return fmt.Sprintf("unmatched token: unexpected %s at position %d", e.Token, e.Position)
}

// Unwrap returns the sentinel for the error kind
func (e *ParseError) Unwrap() error {
	if e.Kind == ParseMissingBracket {
		return ErrMissingBracket
	}
	return ErrUnmatchedToken
}
