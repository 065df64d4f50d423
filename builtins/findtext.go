// File: findtext.go
// Title: Findtext Built-in Command
// Description: Filters pipe lines by substring or regular expression
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
	"regexp"
	"strings"

	"github.com/msto63/mShell/command"
	"github.com/msto63/mShell/registry"
)

// findtextDefinition filters the pipe. Matching lines pass through
// unchanged, labels included.
func findtextDefinition() *registry.Definition {
	return &registry.Definition{
		Name:        "findtext",
		Description: "filters pipe lines by substring or pattern",
		Alias:       "find",
		Params: []registry.Param{
			{Kind: registry.Positional, Name: "text", Required: true},
			{Kind: registry.Flag, Name: "ignorecase", Short: "i",
				Type: command.KindBoolean, HasType: true},
			{Kind: registry.Flag, Name: "regex", Short: "r",
				Type: command.KindBoolean, HasType: true},
		},
		Handler: func(ctx context.Context, inv registry.Invocation) command.Result {
			needle := inv.Args[0]
			ignoreCase, _ := inv.Flags.GetBool("ignorecase")
			useRegex, _ := inv.Flags.GetBool("regex")

			match, err := buildMatcher(needle, ignoreCase, useRegex)
			if err != nil {
				return command.Failf("invalid pattern: %v", err)
			}

			var matched []command.Line
			for _, line := range inv.Pipe {
				if match(line.Content) {
					matched = append(matched, line)
				}
			}
			return command.Lines(matched)
		},
	}
}

func buildMatcher(needle string, ignoreCase, useRegex bool) (func(string) bool, error) {
	if useRegex {
		pattern := needle
		if ignoreCase {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		return re.MatchString, nil
	}
	if ignoreCase {
		lowered := strings.ToLower(needle)
		return func(s string) bool {
			return strings.Contains(strings.ToLower(s), lowered)
		}, nil
	}
	return func(s string) bool {
		return strings.Contains(s, needle)
	}, nil
}
