// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels for errors and their default per code. The
//              logger uses them to pick the level an error is reported at.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for logic codes
// - 2026-10-16 v0.3.0: Table of code severities, alerting removed

package error

// Severity ranks how far an error reaches beyond the request that caused it
type Severity int

const (
	// SeverityLow is bad user input such as a malformed expression
	SeverityLow Severity = iota
	// SeverityMedium affects a single request
	SeverityMedium
	// SeverityHigh is a failing dependency such as the history store
	SeverityHigh
	// SeverityCritical means the service cannot continue
	SeverityCritical
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

// String returns the lower case severity name
func (s Severity) String() string {
	if s < SeverityLow || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// codeSeverity lists the codes that do not default to SeverityMedium
var codeSeverity = map[Code]Severity{
	CodeLexOperandFormat:    SeverityLow,
	CodeLexUnknownChar:      SeverityLow,
	CodeParseMissingBracket: SeverityLow,
	CodeParseUnmatchedToken: SeverityLow,
	CodeUnboundVariable:     SeverityLow,
	CodeTooManyVariables:    SeverityLow,
	CodeExpressionLength:    SeverityLow,
	CodeInvalidInput:        SeverityLow,
	CodeNotFound:            SeverityLow,

	CodeDatabaseError: SeverityHigh,
	CodeConfigError:   SeverityHigh,
	CodeInvalidConfig: SeverityHigh,
	CodeInternal:      SeverityHigh,

	CodeServiceUnavailable: SeverityCritical,
}

// SeverityFor returns the default severity of errors carrying code
func SeverityFor(code Code) Severity {
	if s, ok := codeSeverity[code]; ok {
		return s
	}
	return SeverityMedium
}
