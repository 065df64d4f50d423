// File: mshell.go
// Title: Shell Façade
// Description: Wires parser, registry, engine, diagnostics and
//              watchdog into the embeddable shell
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

// Package mshell is an embeddable command shell. A host application
// creates a Shell, defines its domain commands on the shell's
// registry and feeds it input lines; the shell parses them into
// chains, runs them through a single-flight execution queue and hands
// the output to a pluggable presentation surface.
//
// The package wires together the building blocks that live in their
// own packages: parser, registry, engine, diag, output, service and
// watchdog.
package mshell

import (
	"context"
	"os"
	"sync"

	"github.com/msto63/mShell/builtins"
	"github.com/msto63/mShell/core/config"
	"github.com/msto63/mShell/core/log"
	"github.com/msto63/mShell/diag"
	"github.com/msto63/mShell/engine"
	"github.com/msto63/mShell/output"
	"github.com/msto63/mShell/parser"
	"github.com/msto63/mShell/registry"
	"github.com/msto63/mShell/service"
	"github.com/msto63/mShell/watchdog"
)

// DefaultPrompt is used when no prompt is configured.
const DefaultPrompt = "mShell> "

// plumbing is the hidden chain the shell runs after every user chain
// so output reaches the screen and the prompt reopens in order.
const plumbing = "obuffer | reprompt"

// Options configures a new shell. All fields are optional.
type Options struct {
	// Config supplies shell.*, watchdog.*, diagnostics.* and log.*
	// settings.
	Config *config.Config

	// Logger is the out-of-band fault channel shared by all
	// components.
	Logger *log.Logger

	// Presenter receives rendered output. Defaults to a plain writer
	// on stdout.
	Presenter output.Presenter
}

// Shell is the assembled command shell.
type Shell struct {
	cfg       *config.Config
	logger    *log.Logger
	presenter output.Presenter

	diag     *diag.Recorder
	buffer   *output.Buffer
	registry *registry.Registry
	engine   *engine.Engine
	watchdog *watchdog.Watchdog
	services *service.Set

	prompt     string
	promptMu   sync.Mutex
	promptOpen bool

	startOnce sync.Once
	closeOnce sync.Once
}

// New assembles a shell and installs the built-in commands.
func New(opts Options) (*Shell, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if level, err := log.ParseLevel(cfg.GetString("log.level", "info")); err == nil {
		logger = logger.WithLevel(level)
	}
	presenter := opts.Presenter
	if presenter == nil {
		presenter = output.NewWriterPresenter(os.Stdout)
	}

	s := &Shell{
		cfg:       cfg,
		logger:    logger,
		presenter: presenter,
		buffer:    output.NewBuffer(),
		prompt:    cfg.GetString("shell.prompt", DefaultPrompt),
	}

	s.diag = diag.NewRecorder(logger)
	if cfg.GetBool("diagnostics.enabled", false) {
		s.diag.Enable()
	}

	s.registry = registry.New(logger, s.diag)
	s.engine = engine.New(engine.Options{
		Registry: s.registry,
		Buffer:   s.buffer,
		Recorder: s.diag,
		Logger:   logger,
		Pace:     cfg.GetDuration("shell.pace_ms", engine.DefaultPace),
	})

	s.services = service.NewSet()
	s.services.Add(s.registry, true)
	s.services.Add(s.engine, true)
	s.services.Add(s.diag, false)

	s.watchdog = watchdog.New(watchdog.Options{
		Services:  s.services,
		Interval:  cfg.GetDuration("watchdog.interval_ms", watchdog.DefaultInterval),
		Buffer:    s.buffer,
		Presenter: presenter,
		Reprompt:  s.openPrompt,
		Kick:      s.engine.Resume,
		Recorder:  s.diag,
		Logger:    logger,
	})
	if !cfg.GetBool("watchdog.enabled", true) {
		s.watchdog.Disable()
	}
	s.services.Add(s.watchdog, false)

	s.watchServices()

	if err := builtins.Install(builtins.Config{
		Registry:  s.registry,
		Services:  s.services,
		Diag:      s.diag,
		Buffer:    s.buffer,
		Presenter: presenter,
		Reprompt:  s.openPrompt,
	}); err != nil {
		return nil, err
	}
	for _, err := range s.registry.ValidateAll() {
		logger.LogError(err)
	}

	return s, nil
}

// watchServices records every service transition in the diagnostics
// log.
func (s *Shell) watchServices() {
	hook := func(name string, enabled bool) {
		action := "disable "
		if enabled {
			action = "enable "
		}
		s.diag.Record(action + name)
	}
	s.registry.SetNotify(hook)
	s.engine.SetNotify(hook)
	s.diag.SetNotify(hook)
	s.watchdog.SetNotify(hook)
}

// Start launches the watchdog and opens the first prompt. Further
// calls are no-ops.
func (s *Shell) Start() {
	s.startOnce.Do(func() {
		s.watchdog.Start()
		s.openPrompt()
		s.logger.Info("shell started",
			log.String("prompt", s.prompt))
	})
}

// Close stops background work. The shell must not be used afterwards.
func (s *Shell) Close() {
	s.closeOnce.Do(func() {
		if s.engine.IsRunning() || s.engine.QueueLen() > 0 {
			s.engine.Interrupt()
		}
		s.watchdog.Stop()
		s.logger.Info("shell closed")
	})
}

// Prompt returns the configured prompt text.
func (s *Shell) Prompt() string {
	return s.prompt
}

// Registry exposes the command registry so hosts can define their
// domain commands.
func (s *Shell) Registry() *registry.Registry {
	return s.registry
}

// Services exposes the service set.
func (s *Shell) Services() *service.Set {
	return s.services
}

// Diagnostics exposes the diagnostics log.
func (s *Shell) Diagnostics() *diag.Recorder {
	return s.diag
}

// Define stores and registers a command definition in one step.
func (s *Shell) Define(def *registry.Definition) error {
	if err := s.registry.Define(def); err != nil {
		return err
	}
	return s.registry.Register(def.Name)
}

// IsBusy reports whether a chain is running or waiting.
func (s *Shell) IsBusy() bool {
	return s.engine.IsRunning() || s.engine.QueueLen() > 0
}

// Submit parses one input line and enqueues it, followed by the
// hidden plumbing chain that flushes output and reopens the prompt.
// The returned ticket resolves when the user chain does.
func (s *Shell) Submit(raw string) *engine.Ticket {
	s.consumePrompt()
	user, _ := s.enqueuePair(raw)
	return user
}

// Interrupt abandons all queued chains and cancels the running one.
func (s *Shell) Interrupt() {
	s.engine.Interrupt()
}

// Resume flushes whatever an interrupted run left behind and reopens
// the prompt.
func (s *Shell) Resume() {
	s.engine.Enqueue(parser.Parse(plumbing))
}

// Exec runs one input line to completion, including the output flush.
// Hosts use it for non-interactive, one-shot execution. A non-nil
// error means the run was cancelled or interrupted, not that the
// command failed; command failures surface as rendered error lines.
func (s *Shell) Exec(ctx context.Context, raw string) error {
	user, flush := s.enqueuePair(raw)
	if _, err := user.Wait(ctx); err != nil {
		return err
	}
	_, err := flush.Wait(ctx)
	return err
}

func (s *Shell) enqueuePair(raw string) (*engine.Ticket, *engine.Ticket) {
	user := s.engine.Enqueue(parser.Parse(raw))
	flush := s.engine.Enqueue(parser.Parse(plumbing))
	return user, flush
}

// openPrompt reopens the prompt once; repeated calls between submits
// are no-ops.
func (s *Shell) openPrompt() {
	s.promptMu.Lock()
	defer s.promptMu.Unlock()
	if s.promptOpen {
		return
	}
	s.promptOpen = true
	s.presenter.OpenPrompt()
}

func (s *Shell) consumePrompt() {
	s.promptMu.Lock()
	s.promptOpen = false
	s.promptMu.Unlock()
}

// Version reports the module version.
const Version = "v0.1.0"
