// File: entry.go
// Title: Log Entry and Field Definitions
// Description: Defines the log entry structure and field helpers
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Fields holds structured key-value data attached to a log entry.
type Fields map[string]interface{}

// Merge returns a new Fields map containing the receiver's entries
// overlaid with the given other map. Neither input is modified.
func (f Fields) Merge(other Fields) Fields {
	if len(f) == 0 && len(other) == 0 {
		return nil
	}
	merged := make(Fields, len(f)+len(other))
	for k, v := range f {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy of the fields.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	c := make(Fields, len(f))
	for k, v := range f {
		c[k] = v
	}
	return c
}

// Field creates a Fields map with a single entry.
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates a Fields map carrying an error under the "error" key.
// A nil error yields a nil map.
func Err(err error) Fields {
	if err == nil {
		return nil
	}
	return Fields{"error": err}
}

// String creates a Fields map with a single string value.
func String(key, value string) Fields {
	return Fields{key: value}
}

// Int creates a Fields map with a single int value.
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Int64 creates a Fields map with a single int64 value.
func Int64(key string, value int64) Fields {
	return Fields{key: value}
}

// Bool creates a Fields map with a single bool value.
func Bool(key string, value bool) Fields {
	return Fields{key: value}
}

// Duration creates a Fields map with a single duration value.
func Duration(key string, value time.Duration) Fields {
	return Fields{key: value}
}

// Any creates a Fields map with a single value of arbitrary type.
func Any(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Entry is a single, fully assembled log record handed to a Formatter.
type Entry struct {
	// Timestamp is the time the entry was created.
	Timestamp time.Time `json:"timestamp"`

	// Level is the severity of the entry.
	Level Level `json:"level"`

	// Message is the log message.
	Message string `json:"message"`

	// Logger is the name of the logger that produced the entry.
	Logger string `json:"logger,omitempty"`

	// RequestID correlates entries belonging to one command chain.
	RequestID string `json:"request_id,omitempty"`

	// Fields holds additional structured data.
	Fields Fields `json:"fields,omitempty"`

	// Caller identifies the source location, when enabled.
	Caller string `json:"caller,omitempty"`
}
