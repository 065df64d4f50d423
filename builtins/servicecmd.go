// File: servicecmd.go
// Title: Service Built-in Command
// Description: Lists shell services, switches them on and off and
//              dumps the diagnostics log
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
	"fmt"

	"github.com/msto63/mShell/command"
	"github.com/msto63/mShell/registry"
)

// serviceDefinition wires the service management command. Disabling a
// critical service requires an explicit --confirm; the watchdog will
// restore it anyway.
func serviceDefinition(cfg Config) *registry.Definition {
	return &registry.Definition{
		Name:        "service",
		Description: "lists, enables and disables shell services",
		Params: []registry.Param{
			{Kind: registry.Positional, Name: "action", Required: true,
				Allowed: []string{"list", "enable", "disable", "logs"}},
			{Kind: registry.Positional, Name: "name"},
			{Kind: registry.Flag, Name: "confirm",
				Type: command.KindBoolean, HasType: true},
			{Kind: registry.Flag, Name: "clear",
				Type: command.KindBoolean, HasType: true},
		},
		Handler: func(ctx context.Context, inv registry.Invocation) command.Result {
			name := ""
			if len(inv.Args) > 1 {
				name = inv.Args[1]
			}
			switch inv.Args[0] {
			case "list":
				return listServices(cfg)
			case "enable":
				return switchService(cfg, name, true, inv)
			case "disable":
				return switchService(cfg, name, false, inv)
			case "logs":
				return dumpLogs(cfg, inv)
			}
			return command.Failf("unknown action: %s", inv.Args[0])
		},
	}
}

func listServices(cfg Config) command.Result {
	statuses := cfg.Services.List()
	lines := make([]command.Line, 0, len(statuses))
	for _, st := range statuses {
		state := "disabled"
		if st.Enabled {
			state = "enabled"
		}
		marker := ""
		if st.Critical {
			marker = " [critical]"
		}
		lines = append(lines,
			command.Text(fmt.Sprintf("%-16s %s%s", st.Name, state, marker)))
	}
	return command.Lines(lines)
}

func switchService(cfg Config, name string, enable bool, inv registry.Invocation) command.Result {
	if name == "" {
		return command.Fail("missing service name")
	}
	svc, ok := cfg.Services.Lookup(name)
	if !ok {
		return command.Failf("unknown service: %s", name)
	}
	if enable {
		svc.Enable()
		return command.Single(
			command.Text(fmt.Sprintf("service '%s' enabled", name)))
	}

	if cfg.Services.IsCritical(name) {
		if confirmed, _ := inv.Flags.GetBool("confirm"); !confirmed {
			return command.Failf(
				"service '%s' is critical; use --confirm to disable it", name)
		}
	}
	svc.Disable()
	return command.Single(
		command.Text(fmt.Sprintf("service '%s' disabled", name)))
}

func dumpLogs(cfg Config, inv registry.Invocation) command.Result {
	entries := cfg.Diag.Dump()
	if clear, _ := inv.Flags.GetBool("clear"); clear {
		cfg.Diag.Clear()
	}
	if len(entries) == 0 {
		return command.Single(command.StatusLine("diagnostic log is empty"))
	}
	lines := make([]command.Line, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, command.Text(entry))
	}
	return command.Lines(lines)
}
