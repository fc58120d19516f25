// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across boole. Logic codes
//              classify lexer and parser failures; generic codes cover the
//              service, storage and configuration layers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Replaced command language codes with logic codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Lexer
	CodeLexOperandFormat Code = "LEX_OPERAND_FORMAT"
	CodeLexUnknownChar   Code = "LEX_UNKNOWN_CHAR"
	CodeLexError         Code = "LEX_ERROR"

	// Parser
	CodeParseMissingBracket Code = "PARSE_MISSING_BRACKET"
	CodeParseUnmatchedToken Code = "PARSE_UNMATCHED_TOKEN"

	// Truth tables and normal forms
	CodeUnboundVariable  Code = "UNBOUND_VARIABLE"
	CodeTooManyVariables Code = "TOO_MANY_VARIABLES"
	CodeExpressionLength Code = "EXPRESSION_TOO_LONG"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Service
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeLexOperandFormat, CodeLexUnknownChar, CodeLexError,
		CodeParseMissingBracket, CodeParseUnmatchedToken,
		CodeUnboundVariable, CodeTooManyVariables, CodeExpressionLength,
		CodeDatabaseError, CodeServiceUnavailable,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexOperandFormat, CodeLexUnknownChar, CodeLexError:
		return "lexer"
	case CodeParseMissingBracket, CodeParseUnmatchedToken:
		return "parser"
	case CodeUnboundVariable, CodeTooManyVariables, CodeExpressionLength:
		return "logic"
	case CodeDatabaseError:
		return "database"
	case CodeServiceUnavailable:
		return "service"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsSyntax reports whether the code describes malformed expression text
func (c Code) IsSyntax() bool {
	cat := c.Category()
	return cat == "lexer" || cat == "parser"
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return 404
	case CodeInvalidInput, CodeLexOperandFormat, CodeLexUnknownChar,
		CodeParseMissingBracket, CodeParseUnmatchedToken,
		CodeUnboundVariable:
		return 400
	case CodeTooManyVariables, CodeExpressionLength:
		return 422
	case CodeTimeout:
		return 408
	case CodeServiceUnavailable, CodeDatabaseError:
		return 503
	default:
		return 500
	}
}
