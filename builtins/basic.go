// File: basic.go
// Title: Basic Built-in Commands
// Description: Implements print, clear and linecount
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package builtins

import (
	"context"
	"strconv"

	"github.com/msto63/mShell/command"
	"github.com/msto63/mShell/output"
	"github.com/msto63/mShell/registry"
)

// printDefinition emits its first argument as one output line, with
// an optional location label.
func printDefinition() *registry.Definition {
	return &registry.Definition{
		Name:        "print",
		Description: "prints text to the output",
		Params: []registry.Param{
			{Kind: registry.Positional, Name: "text", Required: true},
			{Kind: registry.Positional, Name: "loc"},
		},
		Handler: func(ctx context.Context, inv registry.Invocation) command.Result {
			text := inv.Args[0]
			if len(inv.Args) > 1 {
				return command.Single(command.TextAt(inv.Args[1], text))
			}
			return command.Single(command.Text(text))
		},
	}
}

// clearDefinition wipes the presentation surface.
func clearDefinition(presenter output.Presenter) *registry.Definition {
	return &registry.Definition{
		Name:        "clear",
		Description: "clears the screen",
		Alias:       "cls",
		Handler: func(ctx context.Context, inv registry.Invocation) command.Result {
			if presenter != nil {
				presenter.Clear()
			}
			return command.Empty()
		},
	}
}

// linecountDefinition counts the lines arriving on the pipe.
func linecountDefinition() *registry.Definition {
	return &registry.Definition{
		Name:        "linecount",
		Description: "counts the lines received from the pipe",
		Alias:       "lc",
		Handler: func(ctx context.Context, inv registry.Invocation) command.Result {
			return command.Single(command.Text(strconv.Itoa(len(inv.Pipe))))
		},
	}
}
