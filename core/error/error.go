// File: error.go
// Title: Rich Error Type
// Description: Implements the structured error type with codes,
//              severities, details and cause chains
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// maxChainDepth bounds how deeply wrapped causes may nest. Beyond the
// limit the cause chain is flattened into a single message.
const maxChainDepth = 16

// maxStackFrames bounds the captured stack trace.
const maxStackFrames = 8

// Error is a structured error carrying a code, a severity, optional
// details and an optional cause. All With* methods return the receiver
// so calls can be chained.
type Error struct {
	message   string
	code      Code
	severity  Severity
	cause     error
	operation string
	details   map[string]interface{}
	timestamp time.Time
	stack     []Frame
}

// Frame is one captured stack frame.
type Frame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// New creates an error with the given message. The code defaults to
// CodeUnknown and the severity follows the code.
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  GetSeverityFromCode(CodeUnknown),
		timestamp: time.Now(),
		stack:     captureStack(2),
	}
}

// Newf creates an error with a formatted message.
func Newf(format string, args ...interface{}) *Error {
	e := New(fmt.Sprintf(format, args...))
	e.stack = captureStack(2)
	return e
}

// Wrap creates an error with the given message and cause. A nil cause
// yields nil, so call sites can wrap unconditionally.
func Wrap(cause error, message string) *Error {
	if cause == nil {
		return nil
	}
	e := &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  GetSeverityFromCode(CodeUnknown),
		cause:     cause,
		timestamp: time.Now(),
		stack:     captureStack(2),
	}
	if inner, ok := cause.(*Error); ok {
		e.code = inner.code
		e.severity = inner.severity
	}
	if chainDepth(e) > maxChainDepth {
		e.cause = errors.New(cause.Error())
	}
	return e
}

// Wrapf creates an error with a formatted message and cause.
func Wrapf(cause error, format string, args ...interface{}) *Error {
	e := Wrap(cause, fmt.Sprintf(format, args...))
	if e != nil {
		e.stack = captureStack(2)
	}
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

// Unwrap returns the cause, making the error compatible with
// errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the code and derives the matching severity.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity independently of the code.
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the operation during which the error occurred.
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail attaches a single key-value detail.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// WithDetails attaches multiple details at once.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{}, len(details))
	}
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// GetMessage returns the message without the cause chain.
func (e *Error) GetMessage() string {
	return e.message
}

// GetCode returns the error code.
func (e *Error) GetCode() Code {
	return e.code
}

// GetSeverity returns the severity.
func (e *Error) GetSeverity() Severity {
	return e.severity
}

// GetOperation returns the recorded operation, if any.
func (e *Error) GetOperation() string {
	return e.operation
}

// GetDetails returns a copy of the attached details.
func (e *Error) GetDetails() map[string]interface{} {
	if e.details == nil {
		return nil
	}
	c := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		c[k] = v
	}
	return c
}

// GetTimestamp returns the creation time of the error.
func (e *Error) GetTimestamp() time.Time {
	return e.timestamp
}

// StackTrace renders the captured stack as one line per frame.
func (e *Error) StackTrace() string {
	var b strings.Builder
	for _, f := range e.stack {
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return b.String()
}

// MarshalJSON renders the error for structured logs. Causes appear as
// nested objects when they are rich errors and as plain strings
// otherwise.
func (e *Error) MarshalJSON() ([]byte, error) {
	var cause interface{}
	if e.cause != nil {
		if inner, ok := e.cause.(*Error); ok {
			cause = inner
		} else {
			cause = e.cause.Error()
		}
	}
	return json.Marshal(struct {
		Message   string                 `json:"message"`
		Code      Code                   `json:"code"`
		Severity  string                 `json:"severity"`
		Operation string                 `json:"operation,omitempty"`
		Details   map[string]interface{} `json:"details,omitempty"`
		Timestamp time.Time              `json:"timestamp"`
		Cause     interface{}            `json:"cause,omitempty"`
	}{
		Message:   e.message,
		Code:      e.code,
		Severity:  e.severity.String(),
		Operation: e.operation,
		Details:   e.details,
		Timestamp: e.timestamp,
		Cause:     cause,
	})
}

// HasCode reports whether err or any error in its chain carries the
// given code.
func HasCode(err error, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode returns the code of the first rich error in the chain, or
// CodeUnknown when there is none.
func GetCode(err error) Code {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.code
		}
		err = errors.Unwrap(err)
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the first rich error in the
// chain, or SeverityMedium when there is none.
func GetSeverity(err error) Severity {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.severity
		}
		err = errors.Unwrap(err)
	}
	return SeverityMedium
}

// chainDepth counts the links of the cause chain.
func chainDepth(err error) int {
	depth := 0
	for err != nil {
		depth++
		err = errors.Unwrap(err)
	}
	return depth
}

// captureStack records up to maxStackFrames frames above the error
// package.
func captureStack(skip int) []Frame {
	pcs := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	stack := make([]Frame, 0, n)
	for {
		frame, more := frames.Next()
		stack = append(stack, Frame{
			Function: frame.Function,
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return stack
}
