// File: format.go
// Title: Log Formats
// Description: Renders log entries as JSON lines for the API server, as
//              plain text for files and as colored text for the terminal.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-16 v0.2.0: Stable field ordering, logfmt removed
// - 2026-10-16 v0.3.0: Caller output, shared field ordering

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format selects a Formatter
type Format int

const (
	FormatJSON Format = iota
	FormatText
	FormatConsole
)

var formatNames = map[Format]string{
	FormatJSON:    "json",
	FormatText:    "text",
	FormatConsole: "console",
}

// String returns the format name
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat maps a format name to its Format; unknown names yield
// FormatJSON and a *ParseError
func ParseFormat(name string) (Format, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == s {
			return f, nil
		}
	}
	return FormatJSON, &ParseError{Input: name, Type: "format"}
}

// Formatter turns an entry into one line of output including the newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the default formatter for format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}

func sortedKeys(fields Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// JSONFormatter writes one JSON object per entry
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter returns a JSON formatter with RFC 3339 timestamps
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format implements Formatter
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	obj := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(f.TimestampFormat),
		"level":     entry.Level,
		"message":   entry.Message,
	}

	optional := map[string]string{
		"logger":     entry.Logger,
		"request_id": entry.RequestID,
		"caller":     entry.Caller,
	}
	for k, v := range optional {
		if v != "" {
			obj[k] = v
		}
	}

	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		obj[k] = v
	}

	if entry.Error != nil {
		obj["error"] = entry.Error.Error()
		if details := errorDetails(entry.Error); details != nil {
			obj["error_details"] = details
		}
	}
	if entry.Duration > 0 {
		obj["duration_ms"] = float64(entry.Duration) / float64(time.Millisecond)
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// errorDetails decodes the JSON form of errors that provide one
func errorDetails(err error) map[string]interface{} {
	m, ok := err.(json.Marshaler)
	if !ok {
		return nil
	}
	raw, merr := m.MarshalJSON()
	if merr != nil {
		return nil
	}
	var details map[string]interface{}
	if json.Unmarshal(raw, &details) != nil {
		return nil
	}
	return details
}

// TextFormatter writes entries as a single readable line:
//
//	15:04:05 [INF] {name} (req=id) <file.go:12> message [k=v ...] error="..." duration=1ms
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter returns a text formatter with clock-time timestamps
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format implements Formatter
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	if !f.DisableTimestamp {
		b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "[%s]", entry.Level.ShortString())

	if entry.Logger != "" {
		fmt.Fprintf(&b, " {%s}", entry.Logger)
	}
	if entry.RequestID != "" {
		fmt.Fprintf(&b, " (req=%s)", entry.RequestID)
	}
	if entry.Caller != "" {
		fmt.Fprintf(&b, " <%s>", entry.Caller)
	}

	b.WriteByte(' ')
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		b.WriteString(" [")
		for i, k := range sortedKeys(entry.Fields) {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%s=%v", k, entry.Fields[k])
		}
		b.WriteByte(']')
	}

	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}
	if entry.Duration > 0 {
		fmt.Fprintf(&b, " duration=%s", entry.Duration)
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// ConsoleFormatter is a TextFormatter that wraps each line in the ANSI
// color of its level
type ConsoleFormatter struct {
	*TextFormatter
	DisableColors bool
}

// NewConsoleFormatter returns a colored text formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

// Format implements Formatter
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	line, err := f.TextFormatter.Format(entry)
	if err != nil || f.DisableColors {
		return line, err
	}
	colored := entry.Level.Color() + strings.TrimSuffix(string(line), "\n") + "\033[0m\n"
	return []byte(colored), nil
}
