// File: help.go
// Title: Help Built-in Command
// Description: Renders the command listing and per-command usage
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
	"strings"

	"github.com/msto63/mShell/command"
	"github.com/msto63/mShell/registry"
)

// helpDefinition lists registered commands or shows one command's
// usage. Command names carry {{...}} markup so the presentation
// surface can highlight them.
func helpDefinition(reg *registry.Registry) *registry.Definition {
	return &registry.Definition{
		Name:        "help",
		Description: "lists commands and shows their usage",
		Params: []registry.Param{
			{Kind: registry.Positional, Name: "command"},
			{Kind: registry.Flag, Name: "aliases",
				Type: command.KindBoolean, HasType: true},
			{Kind: registry.Flag, Name: "verbose", Short: "v",
				Type: command.KindBoolean, HasType: true},
		},
		Handler: func(ctx context.Context, inv registry.Invocation) command.Result {
			showAliases, _ := inv.Flags.GetBool("aliases")
			verbose, _ := inv.Flags.GetBool("verbose")
			if len(inv.Args) > 0 {
				return commandHelp(reg, inv.Args[0])
			}
			if verbose {
				return verboseListing(reg)
			}
			return listing(reg, showAliases)
		},
	}
}

// commandHelp renders full usage for one command. Hidden commands are
// not advertised here even though they remain invocable.
func commandHelp(reg *registry.Registry, name string) command.Result {
	def, ok := reg.Lookup(name)
	if !ok || def.Hidden {
		return command.Failf("unknown command: %s", name)
	}
	if canonical := def.AliasOf(); canonical != "" {
		if resolved, ok := reg.Lookup(canonical); ok {
			def = resolved
		}
	}
	return command.Lines(renderUsage(def))
}

// listing renders the sorted one-line-per-command overview.
func listing(reg *registry.Registry, showAliases bool) command.Result {
	lines := []command.Line{command.MarkupLine("available commands:")}
	for _, name := range reg.Names(false) {
		def, ok := reg.Lookup(name)
		if !ok {
			continue
		}
		content := "  {{" + def.Name + "}}"
		if showAliases && def.Alias != "" {
			content += " (" + def.Alias + ")"
		}
		lines = append(lines, command.MarkupLine(content))
	}
	lines = append(lines, command.Text("use 'help <command>' for details"))
	return command.Lines(lines)
}

// verboseListing renders the full usage block of every visible
// command.
func verboseListing(reg *registry.Registry) command.Result {
	lines := []command.Line{command.MarkupLine("available commands:")}
	for i, name := range reg.Names(false) {
		def, ok := reg.Lookup(name)
		if !ok {
			continue
		}
		if i > 0 {
			lines = append(lines, command.Text(""))
		}
		lines = append(lines, renderUsage(def)...)
	}
	return command.Lines(lines)
}

// renderUsage produces the usage block for one command definition.
func renderUsage(def *registry.Definition) []command.Line {
	title := "{{" + def.Name + "}}"
	if def.Alias != "" {
		title += " (alias: " + def.Alias + ")"
	}
	if def.Description != "" {
		title += " - " + def.Description
	}
	lines := []command.Line{
		command.MarkupLine(title),
		command.Text("usage: " + usageLine(def)),
	}

	var positionals, flags []registry.Param
	for _, p := range def.Params {
		if p.Kind == registry.Positional {
			positionals = append(positionals, p)
		} else {
			flags = append(flags, p)
		}
	}
	if len(positionals) > 0 {
		lines = append(lines, command.Text("arguments:"))
		for _, p := range positionals {
			lines = append(lines, command.Text("  "+describePositional(p)))
		}
	}
	if len(flags) > 0 {
		lines = append(lines, command.Text("flags:"))
		for _, p := range flags {
			lines = append(lines, command.Text("  "+describeFlag(p)))
		}
	}
	return lines
}

// usageLine renders the single-line synopsis.
func usageLine(def *registry.Definition) string {
	parts := []string{def.Name}
	for _, p := range def.Params {
		switch {
		case p.Kind == registry.Positional && p.Required:
			parts = append(parts, "<"+p.Name+">")
		case p.Kind == registry.Positional:
			parts = append(parts, "["+p.Name+"]")
		case p.Required:
			parts = append(parts, "--"+p.Name)
		default:
			parts = append(parts, "[--"+p.Name+"]")
		}
	}
	return strings.Join(parts, " ")
}

func describePositional(p registry.Param) string {
	return p.Name + paramNotes(p, false)
}

func describeFlag(p registry.Param) string {
	s := "--" + p.Name
	if p.Short != "" {
		s += ", -" + p.Short
	}
	return s + paramNotes(p, true)
}

// paramNotes renders the parenthesized attribute list. Boolean flags
// are presence-only, so their type is not spelled out.
func paramNotes(p registry.Param, flag bool) string {
	var notes []string
	if p.HasType && !(flag && p.Type == command.KindBoolean) {
		notes = append(notes, p.Type.String())
	}
	if p.Required {
		notes = append(notes, "required")
	}
	if len(p.Allowed) > 0 {
		notes = append(notes, "one of: "+strings.Join(p.Allowed, ", "))
	}
	if p.Default != nil {
		notes = append(notes, "default: "+p.Default.String())
	}
	if p.PipeFrom != "" {
		notes = append(notes, "pipe from: "+p.PipeFrom)
	}
	if len(notes) == 0 {
		return ""
	}
	return " (" + strings.Join(notes, ", ") + ")"
}
