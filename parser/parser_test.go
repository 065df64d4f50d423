// File: parser_test.go
// Title: Parser Tests
// Description: Tests pipeline splitting, tokenization and flag parsing
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package parser

import (
	"testing"

	"github.com/msto63/mShell/command"
)

func TestSplitStages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "three plain stages",
			input: "a | b | c",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "pipe inside double quotes",
			input: `print "a|b"`,
			want:  []string{`print "a|b"`},
		},
		{
			name:  "pipe inside single quotes",
			input: `print 'a|b'`,
			want:  []string{`print 'a|b'`},
		},
		{
			name:  "escaped pipe",
			input: `print \| more`,
			want:  []string{`print \| more`},
		},
		{
			name:  "empty stage dropped",
			input: "a ||  b",
			want:  []string{"a", "b"},
		},
		{
			name:  "leading and trailing pipes",
			input: "| a |",
			want:  []string{"a"},
		},
		{
			name:  "whitespace only",
			input: "   \t ",
			want:  nil,
		},
		{
			name:  "single quote spans pipe despite double quote inside",
			input: `print 'a "x| y' | next`,
			want:  []string{`print 'a "x| y'`, "next"},
		},
		{
			name:  "unterminated quote runs to end",
			input: `print "a | b`,
			want:  []string{`print "a | b`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitStages(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d stages, got %d: %v", len(tt.want), len(got), got)
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("Expected stage %d to be %q, got %q", i, want, got[i])
				}
			}
		})
	}
}

func TestParseFragmentTokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantArgs []string
	}{
		{
			name:     "plain words",
			input:    "print hello world",
			wantName: "print",
			wantArgs: []string{"hello", "world"},
		},
		{
			name:     "double quoted argument",
			input:    `print "hello world"`,
			wantName: "print",
			wantArgs: []string{"hello world"},
		},
		{
			name:     "single quoted argument",
			input:    `print 'hello world'`,
			wantName: "print",
			wantArgs: []string{"hello world"},
		},
		{
			name:     "escaped space keeps token whole",
			input:    `print hello\ world`,
			wantName: "print",
			wantArgs: []string{"hello world"},
		},
		{
			name:     "escaped quote is literal",
			input:    `print \"hi\"`,
			wantName: "print",
			wantArgs: []string{`"hi"`},
		},
		{
			name:     "escape inside quotes",
			input:    `print "a \"b\" c"`,
			wantName: "print",
			wantArgs: []string{`a "b" c`},
		},
		{
			name:     "unterminated quote runs to end",
			input:    `print "never closed`,
			wantName: "print",
			wantArgs: []string{"never closed"},
		},
		{
			name:     "trailing backslash literal",
			input:    `print abc\`,
			wantName: "print",
			wantArgs: []string{`abc\`},
		},
		{
			name:     "adjacent quoted and plain text joins",
			input:    `print "a b"c`,
			wantName: "print",
			wantArgs: []string{"a bc"},
		},
		{
			name:     "empty quotes give empty argument",
			input:    `print ""`,
			wantName: "print",
			wantArgs: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag := ParseFragment(tt.input)
			if frag == nil {
				t.Fatal("Expected fragment, got nil")
			}
			if frag.Name != tt.wantName {
				t.Errorf("Expected name %q, got %q", tt.wantName, frag.Name)
			}
			if len(frag.Args) != len(tt.wantArgs) {
				t.Fatalf("Expected %d args, got %d: %v", len(tt.wantArgs), len(frag.Args), frag.Args)
			}
			for i, want := range tt.wantArgs {
				if frag.Args[i] != want {
					t.Errorf("Expected arg %d to be %q, got %q", i, want, frag.Args[i])
				}
			}
		})
	}
}

func TestParseFragmentFlags(t *testing.T) {
	frag := ParseFragment("cmd --x=1 -y")
	if frag == nil {
		t.Fatal("Expected fragment, got nil")
	}
	if len(frag.Args) != 0 {
		t.Errorf("Expected no positional args, got %v", frag.Args)
	}

	x, ok := frag.Flags["x"]
	if !ok {
		t.Fatal("Expected flag x")
	}
	if x.Kind != command.KindString || x.Str != "1" {
		t.Errorf("Expected x as string \"1\", got %+v", x)
	}

	y, ok := frag.Flags["y"]
	if !ok {
		t.Fatal("Expected flag y")
	}
	if y.Kind != command.KindBoolean || !y.Bool {
		t.Errorf("Expected y as boolean true, got %+v", y)
	}
}

func TestParseFragmentFlagForms(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFlags map[string]command.Value
		wantArgs  []string
	}{
		{
			name:  "long flag with quoted value",
			input: `cmd --name="a b"`,
			wantFlags: map[string]command.Value{
				"name": command.StringValue("a b"),
			},
		},
		{
			name:  "short flag with value",
			input: "cmd -n=3",
			wantFlags: map[string]command.Value{
				"n": command.StringValue("3"),
			},
		},
		{
			name:  "value keeps later equals signs",
			input: "cmd --expr=a=b",
			wantFlags: map[string]command.Value{
				"expr": command.StringValue("a=b"),
			},
		},
		{
			name:  "empty value",
			input: "cmd --label=",
			wantFlags: map[string]command.Value{
				"label": command.StringValue(""),
			},
		},
		{
			name:     "quoted dash token stays positional",
			input:    `cmd "--not-a-flag"`,
			wantArgs: []string{"--not-a-flag"},
		},
		{
			name:     "bare dash stays positional",
			input:    "cmd -",
			wantArgs: []string{"-"},
		},
		{
			name:     "bare double dash stays positional",
			input:    "cmd --",
			wantArgs: []string{"--"},
		},
		{
			name:     "dashes with only equals stays positional",
			input:    "cmd --=v",
			wantArgs: []string{"--=v"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frag := ParseFragment(tt.input)
			if frag == nil {
				t.Fatal("Expected fragment, got nil")
			}
			if len(frag.Flags) != len(tt.wantFlags) {
				t.Fatalf("Expected %d flags, got %d: %v", len(tt.wantFlags), len(frag.Flags), frag.Flags)
			}
			for name, want := range tt.wantFlags {
				got, ok := frag.Flags[name]
				if !ok {
					t.Errorf("Expected flag %q", name)
					continue
				}
				if got != want {
					t.Errorf("Expected flag %q to be %+v, got %+v", name, want, got)
				}
			}
			if len(frag.Args) != len(tt.wantArgs) {
				t.Fatalf("Expected %d args, got %d: %v", len(tt.wantArgs), len(frag.Args), frag.Args)
			}
			for i, want := range tt.wantArgs {
				if frag.Args[i] != want {
					t.Errorf("Expected arg %d to be %q, got %q", i, want, frag.Args[i])
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	chain := Parse("print hello | linecount")
	if chain == nil {
		t.Fatal("Expected chain, got nil")
	}
	if chain.Raw != "print hello | linecount" {
		t.Errorf("Expected raw preserved, got %q", chain.Raw)
	}
	if len(chain.Fragments) != 2 {
		t.Fatalf("Expected 2 fragments, got %d", len(chain.Fragments))
	}
	if chain.Fragments[0].Name != "print" || chain.Fragments[1].Name != "linecount" {
		t.Errorf("Expected print and linecount, got %q and %q",
			chain.Fragments[0].Name, chain.Fragments[1].Name)
	}
	if chain.ID == "" {
		t.Error("Expected chain to carry an ID")
	}
}

func TestParseBlankInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"only pipes", " | | "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if chain := Parse(tt.input); chain != nil {
				t.Errorf("Expected nil chain, got %+v", chain)
			}
		})
	}
}

func TestParseIsStateless(t *testing.T) {
	// Two parses of the same input must agree except for the chain ID.
	a := Parse(`print "x|y" --flag=1 | lc`)
	b := Parse(`print "x|y" --flag=1 | lc`)
	if a == nil || b == nil {
		t.Fatal("Expected chains, got nil")
	}
	if a.String() != b.String() {
		t.Errorf("Expected identical rendering, got %q and %q", a.String(), b.String())
	}
	if a.ID == b.ID {
		t.Error("Expected distinct chain IDs")
	}
}
