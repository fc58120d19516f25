// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry that carries a single message together
//              with its level, fields, error and timing information.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Dropped user and correlation context
// - 2026-10-16 v0.3.0: Caller rendered as file:line, field helpers removed

package log

import (
	"fmt"
	"time"
)

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	RequestID string

	Fields   Fields
	Error    error
	Duration time.Duration

	// Caller is "file.go:42" when caller reporting is enabled
	Caller string
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// addFields copies every set into the entry; later sets win
func (e *Entry) addFields(sets ...Fields) {
	for _, set := range sets {
		for k, v := range set {
			e.Fields[k] = v
		}
	}
}

func formatCaller(file string, line int) string {
	return fmt.Sprintf("%s:%d", file, line)
}
