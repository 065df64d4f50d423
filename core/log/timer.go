// File: timer.go
// Title: Operation Timing Support
// Description: Provides timers for measuring and logging operation durations
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

// Timer measures the duration of an operation and logs the result when
// stopped. Checkpoints can mark intermediate progress.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
}

// StartTimer begins timing the named operation on this logger.
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{
		logger:    l,
		operation: operation,
		start:     time.Now(),
		level:     DebugLevel,
	}
}

// StartTimer begins timing on the package-level logger.
func StartTimer(operation string) *Timer {
	return Default().StartTimer(operation)
}

// WithLevel sets the level used for the timer's log entries.
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Checkpoint logs an intermediate duration without stopping the timer.
func (t *Timer) Checkpoint(name string) {
	t.logger.log(t.level, t.operation+": "+name, Fields{
		"operation": t.operation,
		"elapsed":   t.Elapsed().String(),
	})
}

// Stop logs the total duration of the operation.
func (t *Timer) Stop(fields ...Fields) time.Duration {
	elapsed := t.Elapsed()
	all := append([]Fields{{
		"operation": t.operation,
		"duration":  elapsed.String(),
	}}, fields...)
	t.logger.log(t.level, t.operation+" completed", all...)
	return elapsed
}

// StopWithError logs the total duration. When err is non-nil, the
// entry is written at ErrorLevel and carries the error.
func (t *Timer) StopWithError(err error, fields ...Fields) time.Duration {
	if err == nil {
		return t.Stop(fields...)
	}
	elapsed := t.Elapsed()
	all := append([]Fields{{
		"operation": t.operation,
		"duration":  elapsed.String(),
		"error":     err,
	}}, fields...)
	t.logger.log(ErrorLevel, t.operation+" failed", all...)
	return elapsed
}
