// File: errors.go
// Title: Logic Error Classification
// Description: Maps lexer, parser and truth table failures onto structured
//              platform errors with stable codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial classification

package logic

import (
	"errors"

	mdwerror "github.com/msto63/boole/foundation/core/error"
	mdwcanonical "github.com/msto63/boole/foundation/logic/canonical"
	mdwparser "github.com/msto63/boole/foundation/logic/parser"
)

// CodeOf returns the error code that classifies err
func CodeOf(err error) mdwerror.Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, mdwparser.ErrOperandFormat):
		return mdwerror.CodeLexOperandFormat
	case errors.Is(err, mdwparser.ErrUnknownChar):
		return mdwerror.CodeLexUnknownChar
	case errors.Is(err, mdwparser.ErrLex):
		return mdwerror.CodeLexError
	case errors.Is(err, mdwparser.ErrMissingBracket):
		return mdwerror.CodeParseMissingBracket
	case errors.Is(err, mdwparser.ErrUnmatchedToken):
		return mdwerror.CodeParseUnmatchedToken
	case errors.Is(err, mdwcanonical.ErrUnboundVariable):
		return mdwerror.CodeUnboundVariable
	case errors.Is(err, mdwcanonical.ErrTooManyVariables):
		return mdwerror.CodeTooManyVariables
	}
	if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
		return code
	}
	return mdwerror.CodeInternal
}

// FromLogicError wraps err into a structured error carrying its code and,
// for syntax errors, the offending position
func FromLogicError(err error, operation string) *mdwerror.Error {
	if err == nil {
		return nil
	}

	var merr *mdwerror.Error
	if errors.As(err, &merr) {
		return merr
	}

	code := CodeOf(err)
	wrapped := mdwerror.Wrap(err, messageFor(code)).
		WithCode(code).
		WithOperation(operation)

	var lexErr *mdwparser.LexError
	var parseErr *mdwparser.ParseError
	switch {
	case errors.As(err, &lexErr):
		wrapped = wrapped.WithDetail("position", lexErr.Position)
	case errors.As(err, &parseErr):
		wrapped = wrapped.WithDetail("position", parseErr.Position)
	}
	return wrapped
}

func messageFor(code mdwerror.Code) string {
	switch code.Category() {
	case "lexer":
		return "lexing failed"
	case "parser":
		return "parsing failed"
	case "logic":
		return "truth table failed"
	default:
		return "logic operation failed"
	}
}
