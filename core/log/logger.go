// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the structured logger with level filtering,
//              context fields and pluggable formatters
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	msherror "github.com/msto63/mShell/core/error"
)

// Logger writes structured log entries. The zero value is not usable;
// create loggers with New. A Logger is safe for concurrent use, and the
// With* methods return clones so derived loggers never affect their
// parent.
type Logger struct {
	mu           sync.Mutex
	level        Level
	output       io.Writer
	formatter    Formatter
	name         string
	requestID    string
	fields       Fields
	reportCaller bool
}

// New creates a logger with default settings: InfoLevel, console
// format, writing to stderr.
func New() *Logger {
	return &Logger{
		level:     DefaultLevel,
		output:    os.Stderr,
		formatter: GetFormatter(FormatConsole),
	}
}

// clone returns a copy of the logger that shares no mutable state.
func (l *Logger) clone() *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		level:        l.level,
		output:       l.output,
		formatter:    l.formatter,
		name:         l.name,
		requestID:    l.requestID,
		fields:       l.fields.Clone(),
		reportCaller: l.reportCaller,
	}
}

// WithLevel returns a clone with the given minimum level.
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithOutput returns a clone writing to the given writer.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	c := l.clone()
	c.output = w
	return c
}

// WithFormatter returns a clone using the given formatter.
func (l *Logger) WithFormatter(f Formatter) *Logger {
	c := l.clone()
	c.formatter = f
	return c
}

// WithFormat returns a clone using the named standard format.
func (l *Logger) WithFormat(f Format) *Logger {
	return l.WithFormatter(GetFormatter(f))
}

// WithName returns a clone carrying the given logger name.
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithRequestID returns a clone whose entries carry the given request
// ID. The engine uses chain IDs here so every entry of one submission
// can be correlated.
func (l *Logger) WithRequestID(id string) *Logger {
	c := l.clone()
	c.requestID = id
	return c
}

// WithField returns a clone with one additional context field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields = c.fields.Merge(Fields{key: value})
	return c
}

// WithFields returns a clone with the given additional context fields.
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	c.fields = c.fields.Merge(fields)
	return c
}

// WithCaller returns a clone that records the calling source location.
func (l *Logger) WithCaller(enabled bool) *Logger {
	c := l.clone()
	c.reportCaller = enabled
	return c
}

// SetLevel changes the minimum level of this logger in place.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput changes the output writer of this logger in place.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// SetFormatter changes the formatter of this logger in place.
func (l *Logger) SetFormatter(f Formatter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formatter = f
}

// GetLevel returns the current minimum level.
func (l *Logger) GetLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// IsLevelEnabled reports whether entries at the given level would be
// written.
func (l *Logger) IsLevelEnabled(level Level) bool {
	return shouldLog(level, l.GetLevel())
}

// Trace logs a message at TraceLevel.
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(TraceLevel, message, fields...)
}

// Tracef logs a formatted message at TraceLevel.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(TraceLevel, fmt.Sprintf(format, args...))
}

// Debug logs a message at DebugLevel.
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(DebugLevel, message, fields...)
}

// Debugf logs a formatted message at DebugLevel.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(DebugLevel, fmt.Sprintf(format, args...))
}

// Info logs a message at InfoLevel.
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(InfoLevel, message, fields...)
}

// Infof logs a formatted message at InfoLevel.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(InfoLevel, fmt.Sprintf(format, args...))
}

// Warn logs a message at WarnLevel.
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(WarnLevel, message, fields...)
}

// Warnf logs a formatted message at WarnLevel.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(WarnLevel, fmt.Sprintf(format, args...))
}

// Error logs a message at ErrorLevel.
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(ErrorLevel, message, fields...)
}

// Errorf logs a formatted message at ErrorLevel.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(ErrorLevel, fmt.Sprintf(format, args...))
}

// Fatal logs a message at FatalLevel and terminates the process.
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(FatalLevel, message, fields...)
	os.Exit(1)
}

// Audit logs a message at AuditLevel. Audit entries bypass level
// filtering.
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(AuditLevel, message, fields...)
}

// LogError logs an error with level derived from its severity. Rich
// errors contribute their code and severity as fields; plain errors
// are logged at ErrorLevel.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}
	level := ErrorLevel
	extra := Fields{"error": err}
	var me *msherror.Error
	if errors.As(err, &me) {
		extra["code"] = me.GetCode()
		extra["severity"] = me.GetSeverity().String()
		if me.GetSeverity() == msherror.SeverityLow {
			level = WarnLevel
		}
	}
	all := append([]Fields{extra}, fields...)
	l.log(level, err.Error(), all...)
}

// log assembles an entry and hands it to the formatter.
func (l *Logger) log(level Level, message string, fields ...Fields) {
	l.mu.Lock()
	minimum := l.level
	name := l.name
	requestID := l.requestID
	base := l.fields
	reportCaller := l.reportCaller
	l.mu.Unlock()

	if !shouldLog(level, minimum) {
		return
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Logger:    name,
		RequestID: requestID,
		Fields:    base.Merge(nil),
	}
	for _, f := range fields {
		entry.Fields = entry.Fields.Merge(f)
	}
	if reportCaller {
		entry.Caller = callerLocation(3)
	}
	l.write(entry)
}

// write formats the entry and writes it to the output. Formatting
// failures go to stderr so they cannot be silently lost.
func (l *Logger) write(entry *Entry) {
	l.mu.Lock()
	formatter := l.formatter
	output := l.output
	l.mu.Unlock()

	data, err := formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: cannot format entry: %v\n", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	output.Write(data)
}

// callerLocation returns "file.go:line" for the given stack depth.
func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// defaultLogger backs the package-level convenience functions.
var (
	defaultLogger   = New()
	defaultLoggerMu sync.RWMutex
)

// Default returns the package-level logger.
func Default() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = l
}

// Trace logs via the package-level logger.
func Trace(message string, fields ...Fields) { Default().Trace(message, fields...) }

// Debug logs via the package-level logger.
func Debug(message string, fields ...Fields) { Default().Debug(message, fields...) }

// Info logs via the package-level logger.
func Info(message string, fields ...Fields) { Default().Info(message, fields...) }

// Warn logs via the package-level logger.
func Warn(message string, fields ...Fields) { Default().Warn(message, fields...) }

// Error logs via the package-level logger.
func Error(message string, fields ...Fields) { Default().Error(message, fields...) }

// Fatal logs via the package-level logger and terminates the process.
func Fatal(message string, fields ...Fields) { Default().Fatal(message, fields...) }

// Audit logs via the package-level logger.
func Audit(message string, fields ...Fields) { Default().Audit(message, fields...) }

// SetLevel changes the minimum level of the package-level logger.
func SetLevel(level Level) { Default().SetLevel(level) }

// SetOutput changes the output writer of the package-level logger.
func SetOutput(w io.Writer) { Default().SetOutput(w) }

// SetFormat changes the output format of the package-level logger.
func SetFormat(f Format) { Default().SetFormatter(GetFormatter(f)) }
