// File: format.go
// Title: Log Output Formatters
// Description: Implements JSON, text and console formatting for log entries
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format selects the output representation of log entries.
type Format int

const (
	// FormatJSON emits one JSON object per entry.
	FormatJSON Format = iota

	// FormatText emits compact, single-line plain text.
	FormatText

	// FormatConsole emits colored, human-friendly text.
	FormatConsole
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat converts a string into a Format. Parsing is
// case-insensitive; unknown names fall back to text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "text", "plain":
		return FormatText, nil
	case "console", "color":
		return FormatConsole, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %q", s)
	}
}

// Formatter renders a log entry into bytes ready for the output writer.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter implementing the given format.
func GetFormatter(f Format) Formatter {
	switch f {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatConsole:
		return &ConsoleFormatter{TimestampLayout: "15:04:05.000"}
	default:
		return &TextFormatter{TimestampLayout: "2006-01-02T15:04:05.000Z07:00"}
	}
}

// JSONFormatter renders entries as single-line JSON objects.
type JSONFormatter struct {
	// Pretty enables indented output, mainly for tests and debugging.
	Pretty bool
}

// jsonEntry mirrors Entry with formatter-friendly representations.
type jsonEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Logger    string                 `json:"logger,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Caller    string                 `json:"caller,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Format implements Formatter.
func (jf *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	je := jsonEntry{
		Timestamp: entry.Timestamp.Format("2006-01-02T15:04:05.000000Z07:00"),
		Level:     entry.Level.String(),
		Message:   entry.Message,
		Logger:    entry.Logger,
		RequestID: entry.RequestID,
		Caller:    entry.Caller,
	}
	if len(entry.Fields) > 0 {
		je.Fields = make(map[string]interface{}, len(entry.Fields))
		for k, v := range entry.Fields {
			je.Fields[k] = jsonValue(v)
		}
	}

	var (
		data []byte
		err  error
	)
	if jf.Pretty {
		data, err = json.MarshalIndent(je, "", "  ")
	} else {
		data, err = json.Marshal(je)
	}
	if err != nil {
		return nil, fmt.Errorf("formatting log entry: %w", err)
	}
	return append(data, '\n'), nil
}

// jsonValue converts field values that do not marshal cleanly. Errors
// keep their own JSON form when they provide one, otherwise their
// message is used.
func jsonValue(v interface{}) interface{} {
	if err, ok := v.(error); ok {
		if _, ok := v.(json.Marshaler); ok {
			return v
		}
		return err.Error()
	}
	return v
}

// TextFormatter renders entries as compact single-line text.
type TextFormatter struct {
	// TimestampLayout is the time layout for the leading timestamp.
	TimestampLayout string
}

// Format implements Formatter.
func (tf *TextFormatter) Format(entry *Entry) ([]byte, error) {
	layout := tf.TimestampLayout
	if layout == "" {
		layout = "2006-01-02T15:04:05.000Z07:00"
	}

	var b strings.Builder
	b.WriteString(entry.Timestamp.Format(layout))
	b.WriteString(" [")
	b.WriteString(entry.Level.String())
	b.WriteString("]")
	if entry.Logger != "" {
		b.WriteString(" ")
		b.WriteString(entry.Logger)
		b.WriteString(":")
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)
	if entry.RequestID != "" {
		b.WriteString(" request_id=")
		b.WriteString(entry.RequestID)
	}
	writeFields(&b, entry.Fields)
	if entry.Caller != "" {
		b.WriteString(" caller=")
		b.WriteString(entry.Caller)
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// ConsoleFormatter renders entries with ANSI colors for terminals.
type ConsoleFormatter struct {
	// TimestampLayout is the time layout for the leading timestamp.
	TimestampLayout string

	// DisableColors suppresses ANSI sequences.
	DisableColors bool
}

// Format implements Formatter.
func (cf *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	layout := cf.TimestampLayout
	if layout == "" {
		layout = "15:04:05.000"
	}

	var b strings.Builder
	b.WriteString(entry.Timestamp.Format(layout))
	b.WriteString(" ")
	if cf.DisableColors {
		b.WriteString(entry.Level.ShortString())
	} else {
		b.WriteString(entry.Level.Color())
		b.WriteString(entry.Level.ShortString())
		b.WriteString("\033[0m")
	}
	if entry.Logger != "" {
		b.WriteString(" [")
		b.WriteString(entry.Logger)
		b.WriteString("]")
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)
	if entry.RequestID != "" {
		b.WriteString(" request_id=")
		b.WriteString(entry.RequestID)
	}
	writeFields(&b, entry.Fields)
	if entry.Caller != "" {
		b.WriteString(" (")
		b.WriteString(entry.Caller)
		b.WriteString(")")
	}
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// writeFields appends key=value pairs in stable key order.
func writeFields(b *strings.Builder, fields Fields) {
	if len(fields) == 0 {
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		fmt.Fprintf(b, "%v", fields[k])
	}
}
