// File: doc.go
// Title: Package Documentation for Command Types
// Description: Documents the shared command data model
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial documentation

// Package command defines the data model shared by the parser, the
// registry and the engine: typed values, output lines, fragment
// results and parsed command chains.
//
// The types here are deliberately free of behavior beyond construction
// and access. Parsing lives in package parser, validation in package
// registry and execution in package engine; all three communicate
// through the types in this package.
package command
