// File: parser.go
// Title: Command Line Parser
// Description: Parses raw input into pipe-delimited command chains
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

// Package parser turns raw command lines into command chains. Parsing
// is two-staged and purely functional: the line is first split into
// pipe-delimited stages, then each stage is tokenized into a fragment.
//
// The parser is deliberately permissive. Unterminated quotes run to
// the end of the stage, a trailing backslash stays literal, and no
// input ever produces an error. Whether a fragment names a real
// command is the registry's concern, not the parser's.
package parser

import (
	"strings"

	"github.com/msto63/mShell/command"
)

// Parse converts a raw line into a chain. Blank input, or input that
// reduces to no stages, yields nil.
func Parse(raw string) *command.Chain {
	stages := SplitStages(raw)
	fragments := make([]*command.Fragment, 0, len(stages))
	for _, stage := range stages {
		if frag := ParseFragment(stage); frag != nil {
			fragments = append(fragments, frag)
		}
	}
	if len(fragments) == 0 {
		return nil
	}
	return command.NewChain(raw, fragments)
}

// SplitStages splits a raw line on pipes that sit outside quotes.
// Backslash escapes carry the next character through verbatim, so the
// stage strings still contain their quotes and escapes for the
// fragment tokenizer. Whitespace-only stages are dropped.
func SplitStages(raw string) []string {
	var stages []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		switch {
		case ch == '\\':
			current.WriteByte(ch)
			if i+1 < len(raw) {
				i++
				current.WriteByte(raw[i])
			}
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
			current.WriteByte(ch)
		case ch == '"' && !inSingle:
			inDouble = !inDouble
			current.WriteByte(ch)
		case ch == '|' && !inSingle && !inDouble:
			stages = appendStage(stages, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	return appendStage(stages, current.String())
}

// appendStage adds a trimmed stage, dropping empty ones.
func appendStage(stages []string, stage string) []string {
	if trimmed := strings.TrimSpace(stage); trimmed != "" {
		stages = append(stages, trimmed)
	}
	return stages
}

// ParseFragment tokenizes one stage into a fragment. The first token
// is the command name; remaining tokens become positional arguments or
// flags. Stages without tokens yield nil.
func ParseFragment(stage string) *command.Fragment {
	scan := newTokenizer(stage)
	var tokens []token
	for {
		tok, ok := scan.next()
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	if len(tokens) == 0 {
		return nil
	}

	frag := &command.Fragment{
		Name:  tokens[0].text,
		Flags: command.Flags{},
	}
	for _, tok := range tokens[1:] {
		if name, value, ok := parseFlag(tok); ok {
			frag.Flags[name] = value
		} else {
			frag.Args = append(frag.Args, tok.text)
		}
	}
	return frag
}

// parseFlag classifies a token as a flag. Quoted tokens are never
// flags, which lets positional text begin with a dash. A flag without
// a value is boolean true; values stay strings until verification
// coerces them. Bare dashes and empty names stay positional.
func parseFlag(tok token) (string, command.Value, bool) {
	if tok.quoted {
		return "", command.Value{}, false
	}

	var name string
	switch {
	case strings.HasPrefix(tok.text, "--"):
		name = tok.text[2:]
	case strings.HasPrefix(tok.text, "-") && len(tok.text) > 1:
		name = tok.text[1:]
	default:
		return "", command.Value{}, false
	}
	if name == "" || strings.HasPrefix(name, "=") {
		return "", command.Value{}, false
	}

	if idx := strings.Index(name, "="); idx >= 0 {
		return name[:idx], command.StringValue(name[idx+1:]), true
	}
	return name, command.BoolValue(true), true
}
