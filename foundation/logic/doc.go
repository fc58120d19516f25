// Package logic is the entry point to the propositional logic toolkit.
//
// An Engine parses literal expressions over true and false with the
// connectives ¬ ∧ ∨ → ↔, evaluates them, and builds truth tables and
// canonical normal forms for expressions over single-letter variables.
// Solve decides satisfiability and validity with a SAT solver when an
// expression has too many variables for a table.
// Failures are returned as *mdwerror.Error values whose code identifies
// the failing stage:
//
//	engine, _ := logic.New(logic.Options{})
//	ok, err := engine.Evaluate("((true ∧ false) → true) ↔ true")
//
// The building blocks live in the subpackages ast, parser, calculator,
// canonical and sat and can be used on their own.
package logic
