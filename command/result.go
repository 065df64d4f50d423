// File: result.go
// Title: Fragment Result Type
// Description: Defines the closed result variant returned by command
//              handlers
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package command

import "fmt"

// ResultKind discriminates the outcome shapes of a fragment.
type ResultKind int

const (
	// ResultEmpty is success without output.
	ResultEmpty ResultKind = iota

	// ResultSingle is success with exactly one output line.
	ResultSingle

	// ResultMulti is success with multiple output lines.
	ResultMulti

	// ResultFailure is an expected domain failure with a message for
	// the user.
	ResultFailure
)

// Result is the outcome of running one fragment. Construct results
// with Empty, Single, Lines, Fail or Failf; the zero value is Empty.
type Result struct {
	kind    ResultKind
	lines   []Line
	message string
}

// Empty returns a successful result with no output.
func Empty() Result {
	return Result{kind: ResultEmpty}
}

// Single returns a successful result with one output line.
func Single(line Line) Result {
	return Result{kind: ResultSingle, lines: []Line{line}}
}

// Lines returns a successful result carrying the given output lines.
// A nil slice yields Empty; an empty non-nil slice stays a multi-line
// result with no lines.
func Lines(lines []Line) Result {
	if lines == nil {
		return Empty()
	}
	copied := make([]Line, len(lines))
	copy(copied, lines)
	return Result{kind: ResultMulti, lines: copied}
}

// Fail returns a domain failure with the given message.
func Fail(message string) Result {
	return Result{kind: ResultFailure, message: message}
}

// Failf returns a domain failure with a formatted message.
func Failf(format string, args ...interface{}) Result {
	return Fail(fmt.Sprintf(format, args...))
}

// Kind returns the result's discriminator.
func (r Result) Kind() ResultKind {
	return r.kind
}

// IsFailure reports whether the result is a domain failure.
func (r Result) IsFailure() bool {
	return r.kind == ResultFailure
}

// Message returns the failure message. It is empty for successful
// results.
func (r Result) Message() string {
	return r.message
}

// Pipe returns the output lines as a fresh slice, ready to feed the
// next fragment. Failures and empty results yield nil.
func (r Result) Pipe() []Line {
	if len(r.lines) == 0 {
		return nil
	}
	copied := make([]Line, len(r.lines))
	copy(copied, r.lines)
	return copied
}

// LineCount returns the number of output lines.
func (r Result) LineCount() int {
	return len(r.lines)
}
