// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity classification for errors
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package error

import (
	"fmt"
	"strings"
)

// Severity classifies how serious an error is, independent of its code.
type Severity int

const (
	// SeverityLow marks user-correctable problems such as typos in a
	// command line.
	SeverityLow Severity = iota

	// SeverityMedium marks operational problems that degrade a single
	// operation but leave the shell healthy.
	SeverityMedium

	// SeverityHigh marks problems that compromise a component, such as
	// a defective command definition.
	SeverityHigh

	// SeverityCritical marks faults in the shell itself.
	SeverityCritical
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// IsValid reports whether the severity is one of the defined constants.
func (s Severity) IsValid() bool {
	return s >= SeverityLow && s <= SeverityCritical
}

// ParseSeverity converts a string into a Severity. Parsing is
// case-insensitive.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return SeverityMedium, fmt.Errorf("unknown severity: %q", s)
	}
}
