// File: calculator_test.go
// Title: Expression Evaluator Tests
// Description: Tests for connective semantics, grouping and the build
//              failure paths.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package calculator

import (
	"errors"
	"fmt"
	"testing"

	mdwast "github.com/msto63/boole/foundation/logic/ast"
	mdwparser "github.com/msto63/boole/foundation/logic/parser"
)

func lit(b bool) string {
	return fmt.Sprintf("%t", b)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"¬true", false},
		{"¬false", true},
		{"¬¬true", true},
		{"¬¬¬true", false},
		{"((true ∧ false) → true) ↔ true", true},
		{"(¬true ∧ false) → true", true},
		{"(¬¬true ∧ false) → true", true},
		{"¬(true ∧ false)", true},
		// (false ∧ false) → false, not false ∧ (false → false)
		{"false ∧ false → false", true},
		{"false ∧ (false → false)", false},
		{"false ∧ true → false", true},
		{"false ∧ (true → false)", false},
		{"true ∧ false ∧ true", false},
		{"false ∨ false ∨ true", true},
		{"false → false → false", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(tt.input)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrecedenceDistinguishesGrouping(t *testing.T) {
	// with a false the two groupings disagree
	a, b, c := false, false, false
	expr := fmt.Sprintf("%s ∧ %s → %s", lit(a), lit(b), lit(c))

	got := MustBuild(expr).Eval()
	if want := !(a && b) || c; got != want {
		t.Errorf("%s = %v, want %v as (a ∧ b) → c", expr, got, want)
	}
	if rightGrouped := a && (!b || c); got == rightGrouped {
		t.Errorf("%s evaluated like a ∧ (b → c)", expr)
	}
}

func TestConnectiveTruthTables(t *testing.T) {
	bools := []bool{false, true}
	for _, p := range bools {
		for _, q := range bools {
			cases := []struct {
				op   string
				want bool
			}{
				{"∧", p && q},
				{"∨", p || q},
				{"→", !p || q},
				{"↔", p == q},
			}
			for _, c := range cases {
				expr := fmt.Sprintf("%s %s %s", lit(p), c.op, lit(q))
				got, err := Evaluate(expr)
				if err != nil {
					t.Fatalf("Evaluate(%q) error = %v", expr, err)
				}
				if got != c.want {
					t.Errorf("%s = %v, want %v", expr, got, c.want)
				}
			}
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"(true ∧ false", mdwparser.ErrMissingBracket},
		{"true ↔", mdwparser.ErrUnmatchedToken},
		{"xyz", mdwparser.ErrOperandFormat},
		{"true # false", mdwparser.ErrUnknownChar},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := Build(tt.input)
			if c != nil {
				t.Error("Build() returned a calculator alongside an error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Build(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBuild() should panic on malformed input")
		}
	}()
	MustBuild("true ∧")
}

func TestNewFromTree(t *testing.T) {
	tree := mdwast.NewBinary(mdwast.OperatorBiConditional,
		mdwast.NewNot(mdwast.NewOperand(false, 1), 0),
		mdwast.NewOperand(true, 9),
	)
	c := New(tree)
	if c.AST() != mdwast.Node(tree) {
		t.Error("AST() should return the wrapped tree")
	}
	if !c.Eval() {
		t.Error("¬false ↔ true should be true")
	}
}

func TestEvalIsRepeatable(t *testing.T) {
	c := MustBuild("¬(true ∨ false) ↔ false")
	first := c.Eval()
	for i := 0; i < 5; i++ {
		if c.Eval() != first {
			t.Fatal("Eval() must be deterministic")
		}
	}
}
