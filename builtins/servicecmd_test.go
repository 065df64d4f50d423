// File: servicecmd_test.go
// Title: Service Built-in Tests
// Description: Tests service listing, switching with the critical
//              guard and log dumping
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
)

func TestServiceList(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, "service list", nil)
	lines := res.Pipe()
	if len(lines) != 3 {
		t.Fatalf("Expected 3 services, got %v", lines)
	}

	expected := []struct {
		name     string
		state    string
		critical bool
	}{
		{"commandregistry", "enabled", true},
		{"commandexec", "enabled", true},
		{"diaglog", "disabled", false},
	}
	for i, want := range expected {
		content := lines[i].Content
		if !strings.HasPrefix(content, want.name) {
			t.Errorf("Expected row %d for %s, got %q", i, want.name, content)
		}
		if !strings.Contains(content, want.state) {
			t.Errorf("Expected %s marked %s, got %q", want.name, want.state, content)
		}
		if want.critical != strings.Contains(content, "[critical]") {
			t.Errorf("Expected critical=%v for %s, got %q", want.critical, want.name, content)
		}
	}
}

func TestServiceEnableDisable(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, "service enable diaglog", nil)
	if res.IsFailure() {
		t.Fatalf("Unexpected failure: %s", res.Message())
	}
	if !h.diag.Enabled() {
		t.Error("Expected diaglog enabled")
	}
	if got := res.Pipe()[0].Content; got != "service 'diaglog' enabled" {
		t.Errorf("Expected confirmation, got %q", got)
	}

	res = h.invoke(t, "service disable diaglog", nil)
	if res.IsFailure() {
		t.Fatalf("Unexpected failure: %s", res.Message())
	}
	if h.diag.Enabled() {
		t.Error("Expected diaglog disabled")
	}
}

func TestServiceDisableCriticalNeedsConfirm(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, "service disable commandexec", nil)
	if !res.IsFailure() {
		t.Fatal("Expected failure without --confirm")
	}
	expected := "service 'commandexec' is critical; use --confirm to disable it"
	if res.Message() != expected {
		t.Errorf("Expected %q, got %q", expected, res.Message())
	}
	if !h.exec.Enabled() {
		t.Error("Expected service to stay enabled")
	}

	res = h.invoke(t, "service disable commandexec --confirm", nil)
	if res.IsFailure() {
		t.Fatalf("Unexpected failure: %s", res.Message())
	}
	if h.exec.Enabled() {
		t.Error("Expected service disabled after confirmation")
	}
}

func TestServiceErrors(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name    string
		raw     string
		message string
	}{
		{"missing name on enable", "service enable", "missing service name"},
		{"missing name on disable", "service disable", "missing service name"},
		{"unknown service", "service enable nosuch", "unknown service: nosuch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.invoke(t, tt.raw, nil)
			if !res.IsFailure() {
				t.Fatal("Expected failure result")
			}
			if res.Message() != tt.message {
				t.Errorf("Expected %q, got %q", tt.message, res.Message())
			}
		})
	}
}

func TestServiceActionValidated(t *testing.T) {
	h := newHarness(t)

	_, err := h.reg.Verify("service", []string{"explode"}, nil)
	if err == nil {
		t.Fatal("Expected invalid action to fail verification")
	}
	if err.Error() != "invalid value for argument: action" {
		t.Errorf("Expected allowed-values message, got %q", err.Error())
	}
}

func TestServiceLogs(t *testing.T) {
	h := newHarness(t)
	h.diag.Enable()
	h.diag.Record("invoke print")
	h.diag.Record("complete")

	res := h.invoke(t, "service logs", nil)
	lines := res.Pipe()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %v", lines)
	}
	if !strings.HasSuffix(lines[0].Content, "invoke print") {
		t.Errorf("Expected first entry, got %q", lines[0].Content)
	}
	if h.diag.Len() != 2 {
		t.Errorf("Expected dump to keep the log, got %d entries", h.diag.Len())
	}
}

func TestServiceLogsClear(t *testing.T) {
	h := newHarness(t)
	h.diag.Enable()
	h.diag.Record("invoke print")

	res := h.invoke(t, "service logs --clear", nil)
	if len(res.Pipe()) != 1 {
		t.Fatalf("Expected the dump before clearing, got %v", res.Pipe())
	}
	if h.diag.Len() != 0 {
		t.Errorf("Expected truncated log, got %d entries", h.diag.Len())
	}
}

func TestServiceLogsEmpty(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, "service logs", nil)
	lines := res.Pipe()
	if len(lines) != 1 || lines[0].Content != "diagnostic log is empty" {
		t.Errorf("Expected empty-log notice, got %v", lines)
	}
}
