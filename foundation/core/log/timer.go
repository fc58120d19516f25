// File: timer.go
// Title: Operation Timer
// Description: Measures the duration of an operation such as a truth table
//              build and logs one line with the outcome when it ends.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-16 v0.2.0: Reduced to Stop and StopWithError
// - 2026-10-16 v0.3.0: Single Stop(err) reporting success or failure

package log

import (
	"time"
)

// Timer measures one operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
	done      bool
}

// StartTimer starts timing operation. The outcome is logged at debug level
// unless changed with WithLevel.
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{
		logger:    l,
		operation: operation,
		start:     time.Now(),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// Stop ends the timer and logs the outcome with the elapsed time. A nil err
// logs "<operation> completed", anything else "<operation> failed", both at
// the timer's level. Stopping twice logs nothing and returns 0.
func (t *Timer) Stop(err error, fields ...Fields) time.Duration {
	if t.done {
		return 0
	}
	t.done = true
	elapsed := time.Since(t.start)

	if t.logger == nil {
		return elapsed
	}

	all := append([]Fields{{"operation": t.operation, "success": err == nil}}, fields...)
	message := t.operation + " completed"
	if err != nil {
		message = t.operation + " failed"
	}
	t.logger.write(t.level, message, err, elapsed, all...)
	return elapsed
}
