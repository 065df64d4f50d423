// File: findtext_test.go
// Title: Findtext Built-in Tests
// Description: Tests substring and pattern filtering of pipe lines
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package builtins

import (
	"strings"
	"testing"

	"github.com/msto63/mShell/command"
)

func samplePipe() []command.Line {
	return []command.Line{
		command.Text("Alpha line"),
		command.TextAt("loc", "beta line"),
		command.Text("gamma"),
		command.StatusLine("alpha status"),
	}
}

func TestFindtextSubstring(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, "findtext line", samplePipe())
	lines := res.Pipe()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 matches, got %v", lines)
	}
	if lines[0].Content != "Alpha line" || lines[1].Content != "beta line" {
		t.Errorf("Expected matching lines in order, got %v", lines)
	}
	if lines[1].Label != "loc" {
		t.Errorf("Expected label preserved, got %q", lines[1].Label)
	}
}

func TestFindtextIgnoreCase(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name    string
		raw     string
		matches int
	}{
		{"case sensitive", "findtext alpha", 1},
		{"long flag", "findtext alpha --ignorecase", 2},
		{"short flag", "find alpha -i", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.invoke(t, tt.raw, samplePipe())
			if got := len(res.Pipe()); got != tt.matches {
				t.Errorf("Expected %d matches, got %d", tt.matches, got)
			}
		})
	}
}

func TestFindtextRegex(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, `findtext "^(Alpha|gamma)" --regex`, samplePipe())
	lines := res.Pipe()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 matches, got %v", lines)
	}
	if lines[0].Content != "Alpha line" || lines[1].Content != "gamma" {
		t.Errorf("Expected anchored matches, got %v", lines)
	}

	res = h.invoke(t, `findtext "^alpha" --regex --ignorecase`, samplePipe())
	lines = res.Pipe()
	if len(lines) != 2 {
		t.Errorf("Expected case-insensitive pattern to match 2 lines, got %v", lines)
	}
}

func TestFindtextBadPattern(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, `findtext "[unclosed" --regex`, samplePipe())
	if !res.IsFailure() {
		t.Fatal("Expected failure for invalid pattern")
	}
	if !strings.HasPrefix(res.Message(), "invalid pattern: ") {
		t.Errorf("Expected pattern error, got %q", res.Message())
	}
}

func TestFindtextNoMatches(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, "findtext nothing", samplePipe())
	if res.IsFailure() {
		t.Fatalf("Unexpected failure: %s", res.Message())
	}
	if got := res.Pipe(); got != nil {
		t.Errorf("Expected empty pipe, got %v", got)
	}
}

func TestFindtextFiltersStatusLinesToo(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, "findtext status", samplePipe())
	lines := res.Pipe()
	if len(lines) != 1 || lines[0].Kind != command.LineStatus {
		t.Errorf("Expected status line to pass the filter, got %v", lines)
	}
}
