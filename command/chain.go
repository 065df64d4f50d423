// File: chain.go
// Title: Command Chain Types
// Description: Defines parsed fragments and the chain that groups them
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package command

import (
	"strings"

	"github.com/google/uuid"
)

// Fragment is one parsed stage of a chain: a command name with its
// positional arguments and flags.
type Fragment struct {
	Name  string
	Args  []string
	Flags Flags
}

// String renders the fragment for diagnostics.
func (f *Fragment) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	for _, arg := range f.Args {
		b.WriteString(" ")
		b.WriteString(arg)
	}
	for name, value := range f.Flags {
		b.WriteString(" --")
		b.WriteString(name)
		if value.Kind != KindBoolean || !value.Bool {
			b.WriteString("=")
			b.WriteString(value.String())
		}
	}
	return b.String()
}

// Chain is a full parsed submission: one or more fragments executed
// left to right, connected by the pipe.
type Chain struct {
	// ID uniquely identifies the chain across logs and diagnostics.
	ID string

	// Raw is the original input line the chain was parsed from.
	Raw string

	// Fragments are the stages in execution order. Always non-empty.
	Fragments []*Fragment
}

// NewChain creates a chain with a fresh unique ID.
func NewChain(raw string, fragments []*Fragment) *Chain {
	return &Chain{
		ID:        uuid.NewString(),
		Raw:       raw,
		Fragments: fragments,
	}
}

// String renders the chain's fragments joined by pipes.
func (c *Chain) String() string {
	parts := make([]string, len(c.Fragments))
	for i, f := range c.Fragments {
		parts[i] = f.String()
	}
	return strings.Join(parts, " | ")
}
