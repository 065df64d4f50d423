// File: plumbing.go
// Title: Hidden Plumbing Commands
// Description: Implements obuffer and reprompt, the commands the shell
//              chains after user input
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

	"github.com/msto63/mShell/command"
	"github.com/msto63/mShell/output"
	"github.com/msto63/mShell/registry"
)

// obufferDefinition drains the output buffer to the presenter. The
// shell enqueues it after every user chain so output reaches the
// screen in completion order.
func obufferDefinition(buffer *output.Buffer, presenter output.Presenter) *registry.Definition {
	return &registry.Definition{
		Name:        "obuffer",
		Description: "flushes buffered output",
		Hidden:      true,
		Handler: func(ctx context.Context, inv registry.Invocation) command.Result {
			if buffer != nil && presenter != nil {
				buffer.FlushTo(presenter)
			}
			return command.Empty()
		},
	}
}

// repromptDefinition reopens the input prompt once the preceding
// chain's output is on screen.
func repromptDefinition(reprompt func()) *registry.Definition {
	return &registry.Definition{
		Name:        "reprompt",
		Description: "reopens the input prompt",
		Hidden:      true,
		Handler: func(ctx context.Context, inv registry.Invocation) command.Result {
			if reprompt != nil {
				reprompt()
			}
			return command.Empty()
		},
	}
}
