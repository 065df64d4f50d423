// File: builtins_test.go
// Title: Built-in Command Tests
// Description: Tests installation, the basic commands and the hidden
//              plumbing
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
	"io"
	"reflect"
	"testing"

	"github.com/msto63/mShell/command"
	"github.com/msto63/mShell/core/log"
	"github.com/msto63/mShell/diag"
	"github.com/msto63/mShell/output"
	"github.com/msto63/mShell/parser"
	"github.com/msto63/mShell/registry"
	"github.com/msto63/mShell/service"
)

type recordingPresenter struct {
	calls []string
}

func (p *recordingPresenter) RenderLine(content, label string) {
	p.calls = append(p.calls, fmt.Sprintf("line:%s:%s", label, content))
}

func (p *recordingPresenter) RenderError(content string) {
	p.calls = append(p.calls, "error:"+content)
}

func (p *recordingPresenter) RenderMarkup(content, label string) {
	p.calls = append(p.calls, "markup:"+content)
}

func (p *recordingPresenter) RenderStatus(content string) {
	p.calls = append(p.calls, "status:"+content)
}

func (p *recordingPresenter) OpenPrompt() {
	p.calls = append(p.calls, "prompt")
}

func (p *recordingPresenter) Clear() {
	p.calls = append(p.calls, "clear")
}

// harness wires a full built-in installation over real collaborators.
type harness struct {
	cfg       Config
	reg       *registry.Registry
	set       *service.Set
	diag      *diag.Recorder
	buffer    *output.Buffer
	presenter *recordingPresenter
	exec      *service.State
	reprompts int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := log.New().WithOutput(io.Discard)
	recorder := diag.NewRecorder(logger)
	reg := registry.New(logger, recorder)
	exec := service.NewState("commandexec", true)

	set := service.NewSet()
	set.Add(reg, true)
	set.Add(exec, true)
	set.Add(recorder, false)

	h := &harness{
		reg:       reg,
		set:       set,
		diag:      recorder,
		buffer:    output.NewBuffer(),
		presenter: &recordingPresenter{},
		exec:      exec,
	}
	h.cfg = Config{
		Registry:  reg,
		Services:  set,
		Diag:      recorder,
		Buffer:    h.buffer,
		Presenter: h.presenter,
		Reprompt:  func() { h.reprompts++ },
	}
	if err := Install(h.cfg); err != nil {
		t.Fatalf("Unexpected install error: %v", err)
	}
	return h
}

// invoke runs one command line through verification, normalization
// and its handler, the same path the engine takes.
func (h *harness) invoke(t *testing.T, raw string, pipe []command.Line) command.Result {
	t.Helper()
	chain := parser.Parse(raw)
	if chain == nil || len(chain.Fragments) != 1 {
		t.Fatalf("Expected a single fragment in %q", raw)
	}
	frag := chain.Fragments[0]

	verified, err := h.reg.Verify(frag.Name, frag.Args, frag.Flags)
	if err != nil {
		t.Fatalf("Unexpected verification error for %q: %v", raw, err)
	}
	flags := h.reg.Normalize(frag.Name, verified)
	def, ok := h.reg.Lookup(frag.Name)
	if !ok {
		t.Fatalf("Expected %q to be registered", frag.Name)
	}
	return def.Handler(context.Background(), registry.Invocation{
		Args:  frag.Args,
		Flags: flags,
		Pipe:  pipe,
	})
}

func TestInstallRegistersBuiltins(t *testing.T) {
	h := newHarness(t)

	visible := h.reg.Names(false)
	expected := []string{"clear", "findtext", "help", "linecount", "print", "service"}
	if !reflect.DeepEqual(visible, expected) {
		t.Errorf("Expected %v, got %v", expected, visible)
	}

	all := h.reg.Names(true)
	expectedAll := []string{"clear", "findtext", "help", "linecount",
		"obuffer", "print", "reprompt", "service"}
	if !reflect.DeepEqual(all, expectedAll) {
		t.Errorf("Expected %v, got %v", expectedAll, all)
	}

	for _, alias := range []string{"cls", "find", "lc"} {
		if !h.reg.IsRegistered(alias) {
			t.Errorf("Expected alias %s registered", alias)
		}
	}
}

func TestInstalledSchemasAreValid(t *testing.T) {
	h := newHarness(t)
	if errs := h.reg.ValidateAll(); len(errs) != 0 {
		t.Errorf("Expected clean built-in schemas, got %v", errs)
	}
}

func TestPrint(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, "print hello", nil)
	pipe := res.Pipe()
	if len(pipe) != 1 || pipe[0].Content != "hello" || pipe[0].Label != "" {
		t.Errorf("Expected plain hello line, got %v", pipe)
	}

	res = h.invoke(t, `print "hello world" topleft`, nil)
	pipe = res.Pipe()
	if len(pipe) != 1 || pipe[0].Content != "hello world" || pipe[0].Label != "topleft" {
		t.Errorf("Expected labeled line, got %v", pipe)
	}
}

func TestPrintRequiresText(t *testing.T) {
	h := newHarness(t)
	_, err := h.reg.Verify("print", nil, nil)
	if err == nil {
		t.Fatal("Expected missing argument error")
	}
	if err.Error() != "missing required argument: text" {
		t.Errorf("Expected missing argument message, got %q", err.Error())
	}
}

func TestClear(t *testing.T) {
	h := newHarness(t)

	res := h.invoke(t, "cls", nil)
	if res.Kind() != command.ResultEmpty {
		t.Errorf("Expected empty result, got %v", res.Kind())
	}
	if len(h.presenter.calls) != 1 || h.presenter.calls[0] != "clear" {
		t.Errorf("Expected presenter clear, got %v", h.presenter.calls)
	}
}

func TestLinecount(t *testing.T) {
	h := newHarness(t)

	pipe := []command.Line{
		command.Text("a"),
		command.Text("b"),
		command.Text("c"),
	}
	res := h.invoke(t, "linecount", pipe)
	out := res.Pipe()
	if len(out) != 1 || out[0].Content != "3" {
		t.Errorf("Expected count 3, got %v", out)
	}

	res = h.invoke(t, "lc", nil)
	out = res.Pipe()
	if len(out) != 1 || out[0].Content != "0" {
		t.Errorf("Expected count 0, got %v", out)
	}
}

func TestObufferFlushes(t *testing.T) {
	h := newHarness(t)

	h.buffer.Append(command.Text("queued"), command.StatusLine("note"))
	res := h.invoke(t, "obuffer", nil)
	if res.Kind() != command.ResultEmpty {
		t.Errorf("Expected empty result, got %v", res.Kind())
	}
	if h.buffer.Len() != 0 {
		t.Errorf("Expected drained buffer, got %d lines", h.buffer.Len())
	}
	expected := []string{"line::queued", "status:note"}
	if !reflect.DeepEqual(h.presenter.calls, expected) {
		t.Errorf("Expected %v, got %v", expected, h.presenter.calls)
	}
}

func TestReprompt(t *testing.T) {
	h := newHarness(t)

	h.invoke(t, "reprompt", nil)
	h.invoke(t, "reprompt", nil)
	if h.reprompts != 2 {
		t.Errorf("Expected 2 reprompts, got %d", h.reprompts)
	}
}
