package service

import (
	"reflect"
	"testing"

	mdwerror "github.com/msto63/boole/foundation/core/error"
)

func TestNormalizeSymbols(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A & B", "A ∧ B"},
		{"A && B || C", "A ∧ B ∨ C"},
		{"!A -> B", "¬A → B"},
		{"A <-> ~B", "A ↔ ¬B"},
		{"A => B <=> C", "A → B ↔ C"},
		{"(A ∧ B) → C", "(A ∧ B) → C"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeSymbols(tt.in); got != tt.want {
				t.Errorf("NormalizeSymbols(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    map[string]bool
		wantErr bool
	}{
		{"empty", "", map[string]bool{}, false},
		{"pairs", "A=true,B=false", map[string]bool{"A": true, "B": false}, false},
		{"short values", "A=1 B=f C=T", map[string]bool{"A": true, "B": false, "C": true}, false},
		{"repeat same", "A=1,A=true", map[string]bool{"A": true}, false},
		{"conflict", "A=1,A=0", nil, true},
		{"missing value", "A", nil, true},
		{"lowercase name", "a=true", nil, true},
		{"reserved name", "T=true", nil, true},
		{"bad value", "A=yes", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAssignment(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				if code := mdwerror.GetCode(err); code != mdwerror.CodeInvalidInput {
					t.Errorf("code = %s, want INVALID_INPUT", code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
