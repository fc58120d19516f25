// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              JSON rendering.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("unexpected token")

	if err.Error() != "unexpected token" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %s, want the caller of New", err.StackTrace()[0].Function)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeParseMissingBracket, SeverityLow},
		{CodeLexUnknownChar, SeverityLow},
		{CodeDatabaseError, SeverityHigh},
		{CodeServiceUnavailable, SeverityCritical},
		{CodeLexError, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}

	medium := New("x").WithSeverity(SeverityMedium).WithCode(CodeDatabaseError)
	if medium.Severity() != SeverityMedium {
		t.Errorf("explicit medium severity overwritten: %v", medium.Severity())
	}

	if got := Wrap(explicit, "outer").WithCode(CodeNotFound).Severity(); got != SeverityCritical {
		t.Errorf("wrapped explicit severity = %v, want critical", got)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Fatal("Wrap(nil) should return nil")
	}

	base := errors.New("disk full")
	wrapped := Wrap(base, "saving record")
	if wrapped.Error() != "saving record: disk full" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is should find the cause")
	}

	inner := New("bad bracket").WithCode(CodeParseMissingBracket).WithDetail("position", 4)
	outer := Wrap(inner, "evaluate")
	if outer.Code() != CodeParseMissingBracket {
		t.Errorf("Code() = %v, want inherited code", outer.Code())
	}
	if outer.Details()["position"] != 4 {
		t.Errorf("details not inherited: %v", outer.Details())
	}
	if !strings.Contains(outer.StackTrace()[0].Function, "TestWrap") {
		t.Errorf("first frame = %s, want the caller of Wrap", outer.StackTrace()[0].Function)
	}
	if outer.RootCause() != inner {
		t.Errorf("RootCause() = %v, want inner error", outer.RootCause())
	}
}

func TestCodeLookups(t *testing.T) {
	err := fmt.Errorf("handler: %w", New("x").WithCode(CodeUnboundVariable))

	if !HasCode(err, CodeUnboundVariable) {
		t.Error("HasCode() should look through fmt wrapping")
	}
	if GetCode(err) != CodeUnboundVariable {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be UNKNOWN")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be medium")
	}
}

func TestCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeLexOperandFormat, 400},
		{CodeParseUnmatchedToken, 400},
		{CodeTooManyVariables, 422},
		{CodeNotFound, 404},
		{CodeDatabaseError, 503},
		{CodeLexError, 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	if !CodeLexUnknownChar.IsSyntax() || !CodeParseMissingBracket.IsSyntax() {
		t.Error("lexer and parser codes should be syntax codes")
	}
	if CodeDatabaseError.IsSyntax() {
		t.Error("DATABASE_ERROR is not a syntax code")
	}
	if !CodeTooManyVariables.IsValid() || Code("NOPE").IsValid() {
		t.Error("IsValid() mismatch")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("unknown character").
		WithCode(CodeLexUnknownChar).
		WithOperation("lexer.New").
		WithDetail("char", "#")

	raw, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var data map[string]interface{}
	if jerr := json.Unmarshal(raw, &data); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}
	if data["code"] != "LEX_UNKNOWN_CHAR" {
		t.Errorf("code = %v", data["code"])
	}
	if data["operation"] != "lexer.New" {
		t.Errorf("operation = %v", data["operation"])
	}
	if data["severity"] != "low" {
		t.Errorf("severity = %v", data["severity"])
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityCritical, "critical"},
		{Severity(9), "unknown"},
		{Severity(-1), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
