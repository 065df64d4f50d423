// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels with parsing and formatting support
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package log

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log entry.
type Level int

const (
	// TraceLevel is for very fine-grained diagnostic information.
	TraceLevel Level = iota

	// DebugLevel is for diagnostic information useful during development.
	DebugLevel

	// InfoLevel is for general operational messages.
	InfoLevel

	// WarnLevel is for potentially harmful situations.
	WarnLevel

	// ErrorLevel is for errors that allow the application to continue.
	ErrorLevel

	// FatalLevel is for severe errors that terminate the application.
	FatalLevel

	// AuditLevel is for security-relevant events. Audit entries are
	// always written, regardless of the logger's minimum level.
	AuditLevel
)

// DefaultLevel is the minimum level used by newly created loggers.
const DefaultLevel = InfoLevel

// String returns the human-readable name of the level.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case AuditLevel:
		return "AUDIT"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ShortString returns a fixed-width, three-letter form of the level
// suitable for aligned console output.
func (l Level) ShortString() string {
	switch l {
	case TraceLevel:
		return "TRC"
	case DebugLevel:
		return "DBG"
	case InfoLevel:
		return "INF"
	case WarnLevel:
		return "WRN"
	case ErrorLevel:
		return "ERR"
	case FatalLevel:
		return "FTL"
	case AuditLevel:
		return "AUD"
	default:
		return "???"
	}
}

// Color returns the ANSI color sequence used by the console formatter.
func (l Level) Color() string {
	switch l {
	case TraceLevel:
		return "\033[37m" // white
	case DebugLevel:
		return "\033[36m" // cyan
	case InfoLevel:
		return "\033[32m" // green
	case WarnLevel:
		return "\033[33m" // yellow
	case ErrorLevel:
		return "\033[31m" // red
	case FatalLevel:
		return "\033[35m" // magenta
	case AuditLevel:
		return "\033[34m" // blue
	default:
		return "\033[0m"
	}
}

// IsValid reports whether the level is one of the defined constants.
func (l Level) IsValid() bool {
	return l >= TraceLevel && l <= AuditLevel
}

// ParseLevel converts a string into a Level. Parsing is case-insensitive
// and accepts both long and short names.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE", "TRC":
		return TraceLevel, nil
	case "DEBUG", "DBG":
		return DebugLevel, nil
	case "INFO", "INF":
		return InfoLevel, nil
	case "WARN", "WARNING", "WRN":
		return WarnLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "FATAL", "FTL":
		return FatalLevel, nil
	case "AUDIT", "AUD":
		return AuditLevel, nil
	default:
		return DefaultLevel, fmt.Errorf("unknown log level: %q", s)
	}
}

// MustParseLevel is like ParseLevel but panics on invalid input. It is
// intended for hard-coded configuration values.
func MustParseLevel(s string) Level {
	l, err := ParseLevel(s)
	if err != nil {
		panic(err)
	}
	return l
}

// shouldLog reports whether an entry at the given level passes the
// configured minimum. Audit entries always pass.
func shouldLog(entry, minimum Level) bool {
	if entry == AuditLevel {
		return true
	}
	return entry >= minimum
}
