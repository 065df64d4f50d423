// File: verify_test.go
// Title: Schema Verification Tests
// Description: Tests the per-invocation verification gate, coercion
//              and flag normalization
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package registry

import (
	"strings"
	"testing"

	"github.com/msto63/mShell/command"
	msherror "github.com/msto63/mShell/core/error"
)

func numberValue(n int64) *command.Value {
	v := command.NumberValue(n)
	return &v
}

func stringValue(s string) *command.Value {
	v := command.StringValue(s)
	return &v
}

func TestVerifyUnknownCommand(t *testing.T) {
	r, _ := newTestRegistry()

	_, err := r.Verify("nothere", nil, nil)
	if err == nil {
		t.Fatal("Expected error for unknown command")
	}
	if !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("Expected unknown command message, got %q", err.Error())
	}
	if !msherror.HasCode(err, msherror.CodeUnknownCommand) {
		t.Errorf("Expected CodeUnknownCommand, got %v", msherror.GetCode(err))
	}
}

func TestVerifyRequiredPositional(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "findtext",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Positional, Name: "text", Required: true},
		},
	})

	_, err := r.Verify("findtext", nil, nil)
	if err == nil {
		t.Fatal("Expected error for missing required argument")
	}
	if !strings.Contains(err.Error(), "missing required argument: text") {
		t.Errorf("Expected message naming the parameter, got %q", err.Error())
	}
	if !msherror.HasCode(err, msherror.CodeMissingArgument) {
		t.Errorf("Expected CodeMissingArgument, got %v", msherror.GetCode(err))
	}

	if _, err := r.Verify("findtext", []string{"needle"}, nil); err != nil {
		t.Errorf("Unexpected error with argument supplied: %v", err)
	}
}

func TestVerifyPositionsConsumedInOrder(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "pair",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Positional, Name: "first"},
			{Kind: Positional, Name: "second", Required: true},
		},
	})

	// One argument feeds the optional first position; the required
	// second position stays empty.
	_, err := r.Verify("pair", []string{"only"}, nil)
	if err == nil {
		t.Fatal("Expected error for consumed positions")
	}
	if !strings.Contains(err.Error(), "missing required argument: second") {
		t.Errorf("Expected second named, got %q", err.Error())
	}
}

func TestVerifyPipeFromDoesNotExemptRequired(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "consume",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Positional, Name: "text", Required: true, PipeFrom: "print"},
		},
	})

	if _, err := r.Verify("consume", nil, nil); err == nil {
		t.Error("Expected pipeable parameter to still require its argument")
	}
}

func TestVerifyAllowedValues(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "service",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Positional, Name: "action", Required: true,
				Allowed: []string{"list", "enable", "disable", "logs"}},
		},
	})

	if _, err := r.Verify("service", []string{"list"}, nil); err != nil {
		t.Errorf("Unexpected error for allowed value: %v", err)
	}

	_, err := r.Verify("service", []string{"explode"}, nil)
	if err == nil {
		t.Fatal("Expected error for disallowed value")
	}
	if !strings.Contains(err.Error(), "invalid value for argument: action") {
		t.Errorf("Expected message naming the parameter, got %q", err.Error())
	}
	if !msherror.HasCode(err, msherror.CodeInvalidArgument) {
		t.Errorf("Expected CodeInvalidArgument, got %v", msherror.GetCode(err))
	}
}

func TestVerifyRequiredFlag(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "push",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Flag, Name: "target", Short: "t", Required: true,
				Type: command.KindString, HasType: true},
		},
	})

	_, err := r.Verify("push", nil, command.Flags{})
	if err == nil {
		t.Fatal("Expected error for missing required flag")
	}
	if !strings.Contains(err.Error(), "missing required flag: target") {
		t.Errorf("Expected message naming the flag, got %q", err.Error())
	}

	// The short name satisfies the requirement.
	flags := command.Flags{"t": command.StringValue("prod")}
	if _, err := r.Verify("push", nil, flags); err != nil {
		t.Errorf("Unexpected error with short flag: %v", err)
	}
}

func TestVerifyIntegerCoercion(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "take",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Flag, Name: "count", Short: "n",
				Type: command.KindNumber, HasType: true},
		},
	})

	verified, err := r.Verify("take", nil, command.Flags{
		"count": command.StringValue("42"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, ok := verified.GetNumber("count")
	if !ok || got != 42 {
		t.Errorf("Expected coerced numeric 42, got %+v", verified["count"])
	}

	verified, err = r.Verify("take", nil, command.Flags{
		"n": command.StringValue("-7"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got, ok := verified.GetNumber("n"); !ok || got != -7 {
		t.Errorf("Expected negative coercion under supplied key, got %+v", verified["n"])
	}
}

func TestVerifyTypeMismatch(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "take",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Flag, Name: "count", Type: command.KindNumber, HasType: true},
			{Kind: Flag, Name: "label", Type: command.KindString, HasType: true},
			{Kind: Flag, Name: "force", Type: command.KindBoolean, HasType: true},
		},
	})

	tests := []struct {
		name    string
		flags   command.Flags
		wantMsg string
	}{
		{
			name:    "text against number",
			flags:   command.Flags{"count": command.StringValue("many")},
			wantMsg: "invalid value for flag count: expected number, got string",
		},
		{
			name:    "bare flag against number",
			flags:   command.Flags{"count": command.BoolValue(true)},
			wantMsg: "invalid value for flag count: expected number, got boolean",
		},
		{
			name:    "integer-looking value against string",
			flags:   command.Flags{"label": command.StringValue("42")},
			wantMsg: "invalid value for flag label: expected string, got number",
		},
		{
			name:    "explicit value against boolean",
			flags:   command.Flags{"force": command.StringValue("yes")},
			wantMsg: "invalid value for flag force: expected boolean, got string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Verify("take", nil, tt.flags)
			if err == nil {
				t.Fatal("Expected type mismatch error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected %q, got %q", tt.wantMsg, err.Error())
			}
			if !msherror.HasCode(err, msherror.CodeInvalidFlag) {
				t.Errorf("Expected CodeInvalidFlag, got %v", msherror.GetCode(err))
			}
		})
	}
}

func TestVerifyUnknownFlagPassesThrough(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{Name: "print", Handler: emptyHandler})

	verified, err := r.Verify("print", nil, command.Flags{
		"mystery": command.StringValue("123"),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	// Pass-through flags keep their raw string form.
	if s, ok := verified.GetString("mystery"); !ok || s != "123" {
		t.Errorf("Expected uncoerced pass-through, got %+v", verified["mystery"])
	}
}

func TestVerifyUntypedFlagDefect(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "odd",
		Alias:   "o",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Flag, Name: "mode"},
		},
	})

	_, err := r.Verify("odd", nil, command.Flags{
		"mode": command.StringValue("x"),
	})
	if err == nil {
		t.Fatal("Expected definition error for untyped flag")
	}
	if !msherror.HasCode(err, msherror.CodeBadDefinition) {
		t.Errorf("Expected CodeBadDefinition, got %v", msherror.GetCode(err))
	}

	// The defect takes the whole group down.
	if _, ok := r.Lookup("odd"); ok {
		t.Error("Expected defective command unregistered")
	}
	if _, ok := r.Lookup("o"); ok {
		t.Error("Expected alias unregistered with its canonical command")
	}
}

func TestVerifyDefaultTypeDefect(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "broken",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Flag, Name: "count", Type: command.KindNumber, HasType: true,
				Default: stringValue("not a number")},
		},
	})

	_, err := r.Verify("broken", nil, nil)
	if err == nil {
		t.Fatal("Expected definition error for mismatched default")
	}
	if !msherror.HasCode(err, msherror.CodeBadDefinition) {
		t.Errorf("Expected CodeBadDefinition, got %v", msherror.GetCode(err))
	}
	if _, ok := r.Lookup("broken"); ok {
		t.Error("Expected defective command unregistered")
	}
}

func TestValidateSchema(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "good",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Flag, Name: "typed", Type: command.KindString, HasType: true},
		},
	})
	defineAndRegister(t, r, &Definition{
		Name:    "bad",
		Alias:   "b",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Flag, Name: "untyped"},
		},
	})

	if err := r.ValidateSchema("good"); err != nil {
		t.Errorf("Unexpected error for healthy schema: %v", err)
	}

	err := r.ValidateSchema("bad")
	if err == nil {
		t.Fatal("Expected definition error for untyped flag")
	}
	if !msherror.HasCode(err, msherror.CodeBadDefinition) {
		t.Errorf("Expected CodeBadDefinition, got %v", msherror.GetCode(err))
	}
	if _, ok := r.Lookup("bad"); ok {
		t.Error("Expected defective command unregistered")
	}
	if _, ok := r.Lookup("b"); ok {
		t.Error("Expected alias unregistered with its canonical command")
	}

	if err := r.ValidateSchema("ghost"); err == nil {
		t.Error("Expected error for undefined command")
	}
}

func TestValidateAll(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "good",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Flag, Name: "typed", Type: command.KindString, HasType: true},
		},
	})
	defineAndRegister(t, r, &Definition{
		Name:    "bad",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Flag, Name: "untyped"},
		},
	})

	errs := r.ValidateAll()
	if len(errs) != 1 {
		t.Fatalf("Expected 1 validation error, got %d: %v", len(errs), errs)
	}
	if !msherror.HasCode(errs[0], msherror.CodeBadDefinition) {
		t.Errorf("Expected CodeBadDefinition, got %v", msherror.GetCode(errs[0]))
	}

	if _, ok := r.Lookup("bad"); ok {
		t.Error("Expected defective command unregistered by validation")
	}
	if _, ok := r.Lookup("good"); !ok {
		t.Error("Expected healthy command untouched")
	}
}

func TestNormalizeShortFlagsAndDefaults(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "findtext",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Positional, Name: "text", Required: true},
			{Kind: Flag, Name: "ignorecase", Short: "i",
				Type: command.KindBoolean, HasType: true},
			{Kind: Flag, Name: "limit", Short: "l",
				Type: command.KindNumber, HasType: true, Default: numberValue(100)},
		},
	})

	input := command.Flags{"i": command.BoolValue(true)}
	normalized := r.Normalize("findtext", input)

	if _, has := normalized["i"]; has {
		t.Error("Expected short name removed after normalization")
	}
	if b, ok := normalized.GetBool("ignorecase"); !ok || !b {
		t.Errorf("Expected short flag value moved to long name, got %+v", normalized)
	}
	if n, ok := normalized.GetNumber("limit"); !ok || n != 100 {
		t.Errorf("Expected default injected, got %+v", normalized["limit"])
	}

	// The input map is not modified.
	if _, has := input["ignorecase"]; has {
		t.Error("Expected input flags untouched")
	}
	if !input.Has("i") {
		t.Error("Expected input flags to keep the short key")
	}
}

func TestNormalizeLongNameWins(t *testing.T) {
	r, _ := newTestRegistry()
	defineAndRegister(t, r, &Definition{
		Name:    "cmd",
		Handler: emptyHandler,
		Params: []Param{
			{Kind: Flag, Name: "verbose", Short: "v",
				Type: command.KindBoolean, HasType: true},
		},
	})

	normalized := r.Normalize("cmd", command.Flags{
		"verbose": command.BoolValue(true),
		"v":       command.BoolValue(false),
	})

	if b, ok := normalized.GetBool("verbose"); !ok || !b {
		t.Errorf("Expected long name to win, got %+v", normalized)
	}
	if normalized.Has("v") {
		t.Error("Expected short duplicate dropped")
	}
}

func TestNormalizeUnknownCommandReturnsClone(t *testing.T) {
	r, _ := newTestRegistry()
	input := command.Flags{"x": command.StringValue("1")}
	normalized := r.Normalize("ghost", input)

	normalized["x"] = command.StringValue("changed")
	if s, _ := input.GetString("x"); s != "1" {
		t.Error("Expected input unchanged by mutating the result")
	}
}
