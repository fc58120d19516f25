// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type carrying a code, a
//              severity, the failing operation and free-form details. It
//              wraps causes so errors.Is and errors.As keep working.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-16 v0.2.0: Dropped localization and user context, errors.As lookups
// - 2026-10-16 v0.3.0: Explicit severity tracking, request IDs moved to the logger

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"time"
)

// maxFrames bounds the captured stack
const maxFrames = 16

// Error is a structured error. The With methods modify the receiver and
// return it for chaining.
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	explicit  bool // severity set by WithSeverity
	operation string
	details   map[string]interface{}
	created   time.Time
	stack     []StackFrame
}

// StackFrame is one caller recorded when the error was created
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

func newError(message string, cause error) *Error {
	return &Error{
		message:  message,
		cause:    cause,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
		created:  time.Now(),
		// skips runtime.Callers, callers, newError and the exported constructor
		stack: callers(4),
	}
}

// New creates an error with code UNKNOWN and medium severity
func New(message string) *Error {
	return newError(message, nil)
}

// Newf creates an error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return newError(fmt.Sprintf(format, args...), nil)
}

// Wrap adds message in front of err. Code, severity, operation and details
// of the nearest *Error in err's chain carry over. Wrap(nil, ...) is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := newError(message, err)
	if inner, ok := As(err); ok {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		wrapped.explicit = inner.explicit
		wrapped.operation = inner.operation
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
	}
	return wrapped
}

// Error returns the message followed by the cause chain
func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the code. Unless WithSeverity was called the severity
// becomes the code's default.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if !e.explicit {
		e.severity = SeverityFor(code)
	}
	return e
}

// WithSeverity overrides the severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	e.explicit = true
	return e
}

// WithDetail records a key-value detail
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithOperation names the failing operation
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the effective severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Message returns the message without the cause chain
func (e *Error) Message() string {
	return e.message
}

// Operation returns the failing operation, if set
func (e *Error) Operation() string {
	return e.operation
}

// Timestamp returns the creation time
func (e *Error) Timestamp() time.Time {
	return e.created
}

// HTTPStatus maps the code to an HTTP status
func (e *Error) HTTPStatus() int {
	return e.code.HTTPStatus()
}

// StackTrace returns the callers recorded at creation
func (e *Error) StackTrace() []StackFrame {
	return append([]StackFrame(nil), e.stack...)
}

// Details returns a copy of the details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// RootCause returns the innermost error of the chain
func (e *Error) RootCause() error {
	var err error = e
	for next := errors.Unwrap(err); next != nil; next = errors.Unwrap(err) {
		err = next
	}
	return err
}

type errorJSON struct {
	Message   string                 `json:"message"`
	Code      Code                   `json:"code"`
	Severity  string                 `json:"severity"`
	Operation string                 `json:"operation,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Cause     string                 `json:"cause,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// MarshalJSON renders the error for logs and API responses
func (e *Error) MarshalJSON() ([]byte, error) {
	out := errorJSON{
		Message:   e.message,
		Code:      e.code,
		Severity:  e.severity.String(),
		Operation: e.operation,
		Timestamp: e.created.Format(time.RFC3339),
	}
	if len(e.details) > 0 {
		out.Details = e.details
	}
	if e.cause != nil {
		out.Cause = e.cause.Error()
	}
	return json.Marshal(out)
}

func callers(skip int) []StackFrame {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	var stack []StackFrame
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		stack = append(stack, StackFrame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			return stack
		}
	}
}

// As returns the first *Error in err's chain
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// HasCode reports whether any *Error in err's chain carries code
func HasCode(err error, code Code) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok && e.code == code {
			return true
		}
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or UNKNOWN
func GetCode(err error) Code {
	if e, ok := As(err); ok {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the first *Error in err's chain, or
// SeverityMedium
func GetSeverity(err error) Severity {
	if e, ok := As(err); ok {
		return e.severity
	}
	return SeverityMedium
}
