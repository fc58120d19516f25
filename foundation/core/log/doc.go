// Package log provides structured logging for boole.
//
// Package: log
// Title: boole Structured Logging
// Description: Structured logger with levels, persistent context fields,
//              JSON/text/console formatters, operation timers and
//              integration with the boole error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Trimmed for the boole services
//
// Usage:
//
//	import mdwlog "github.com/msto63/boole/foundation/core/log"
//
//	logger := mdwlog.GetDefault().WithField("component", "parser")
//	logger.Debug("parsed expression", mdwlog.Fields{"nodes": 7})
//
//	timer := logger.StartTimer("truth_table")
//	defer timer.Stop()
package log
