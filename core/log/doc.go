// File: doc.go
// Title: Package Documentation for Core Logging
// Description: Documents the structured logging package used across mShell.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial documentation

// Package log provides structured, leveled logging for mShell.
//
// The package is built around the Logger type, which carries a minimum
// level, an output writer, a pluggable formatter and a set of context
// fields that are attached to every entry. Loggers are immutable in use:
// the With* methods return clones, so a component can derive its own
// logger without affecting the parent.
//
//	logger := log.New().WithName("engine").WithField("component", "shell")
//	logger.Info("chain completed", log.Fields{"fragments": 3})
//
// Levels follow the usual ladder (Trace through Fatal) plus Audit, which
// is always emitted regardless of the configured minimum. Three output
// formats are available: JSON for machine consumption, plain text and a
// colored console variant for development.
//
// The engine uses this package as its out-of-band fault channel: faults
// that must never reach the user-visible output stream are reported here
// instead.
package log
