// File: builtins.go
// Title: Built-in Command Installation
// Description: Defines and registers the command surface the shell
//              ships with
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

// Package builtins provides the commands every shell instance ships
// with: print, clear, help, linecount, service and findtext, plus the
// hidden plumbing commands obuffer and reprompt that the shell chains
// after user input to flush output and reopen the prompt.
//
// Built-ins are ordinary registry definitions; nothing here bypasses
// verification or the engine.
package builtins

import (
	"github.com/msto63/mShell/diag"
	"github.com/msto63/mShell/output"
	"github.com/msto63/mShell/registry"
	"github.com/msto63/mShell/service"
)

// Config carries the collaborators built-in handlers close over.
type Config struct {
	// Registry receives the definitions and serves help lookups.
	Registry *registry.Registry

	// Services backs the service command.
	Services *service.Set

	// Diag backs service logs.
	Diag *diag.Recorder

	// Buffer is drained by the hidden obuffer command.
	Buffer *output.Buffer

	// Presenter receives flushed output and screen clears.
	Presenter output.Presenter

	// Reprompt reopens the input prompt.
	Reprompt func()
}

// Install defines and registers all built-in commands. An error here
// means a built-in definition is itself invalid and the shell cannot
// start.
func Install(cfg Config) error {
	defs := []*registry.Definition{
		printDefinition(),
		clearDefinition(cfg.Presenter),
		helpDefinition(cfg.Registry),
		linecountDefinition(),
		serviceDefinition(cfg),
		findtextDefinition(),
		obufferDefinition(cfg.Buffer, cfg.Presenter),
		repromptDefinition(cfg.Reprompt),
	}
	for _, def := range defs {
		if err := cfg.Registry.Define(def); err != nil {
			return err
		}
		if err := cfg.Registry.Register(def.Name); err != nil {
			return err
		}
	}
	return nil
}
