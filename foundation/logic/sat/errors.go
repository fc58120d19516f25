// File: errors.go
// Title: Satisfiability Errors
// Description: Sentinel errors of the solver bridge.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package sat

import "errors"

// ErrSolver reports a solver failure or a model the calculator rejects
var ErrSolver = errors.New("sat solver failure")
