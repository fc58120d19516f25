// Package error provides structured error handling for boole.
//
// Package: error
// Title: boole Error Handling
// Description: Structured errors with codes, severity, operation context and
//              cause chains. Codes map to HTTP status for the API server.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Logic error codes
//
// Usage:
//
//	import mdwerror "github.com/msto63/boole/foundation/core/error"
//
//	err := mdwerror.New("unexpected token").
//		WithCode(mdwerror.CodeParseUnmatchedToken).
//		WithOperation("parser.Parse").
//		WithDetail("position", 7)
package error
