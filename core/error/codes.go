// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error code taxonomy used across mShell
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package error

// Code identifies a class of errors in a machine-readable way. Codes
// are stable strings so they survive serialization and log scraping.
type Code string

const (
	// CodeUnknown is the default for errors created without a code.
	CodeUnknown Code = "UNKNOWN"

	// CodeInternal marks faults in the shell itself, including
	// recovered handler panics. These must never surface verbatim to
	// the user-visible output stream.
	CodeInternal Code = "INTERNAL"

	// CodeInterrupted marks work abandoned because the user interrupted
	// execution.
	CodeInterrupted Code = "INTERRUPTED"

	// CodeUnknownCommand marks a command name with no registration.
	CodeUnknownCommand Code = "UNKNOWN_COMMAND"

	// CodeBadDefinition marks a structurally defective command
	// definition discovered during registration or verification.
	CodeBadDefinition Code = "BAD_DEFINITION"

	// CodeMissingArgument marks an invocation lacking a required
	// positional argument.
	CodeMissingArgument Code = "MISSING_ARGUMENT"

	// CodeInvalidArgument marks a positional argument whose value does
	// not satisfy the parameter's constraints.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeMissingFlag marks an invocation lacking a required flag.
	CodeMissingFlag Code = "MISSING_FLAG"

	// CodeInvalidFlag marks a flag value of the wrong type.
	CodeInvalidFlag Code = "INVALID_FLAG"

	// CodeCommandFailed marks a handler that ran and reported failure.
	CodeCommandFailed Code = "COMMAND_FAILED"

	// CodeConfigError marks invalid or unreadable configuration.
	CodeConfigError Code = "CONFIG_ERROR"

	// CodeInvalidInput marks raw input the parser cannot accept.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeNotFound marks a lookup that produced no result.
	CodeNotFound Code = "NOT_FOUND"
)

// GetSeverityFromCode returns the default severity for a code. WithCode
// applies this mapping automatically; WithSeverity can override it.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeBadDefinition, CodeConfigError:
		return SeverityHigh
	case CodeCommandFailed, CodeUnknown:
		return SeverityMedium
	case CodeUnknownCommand, CodeMissingArgument, CodeInvalidArgument,
		CodeMissingFlag, CodeInvalidFlag, CodeInvalidInput,
		CodeNotFound, CodeInterrupted:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
