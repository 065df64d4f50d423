// File: watchdog.go
// Title: Self-Healing Watchdog
// Description: Periodically restores critical services that have been
//              disabled and announces the recovery
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

// Package watchdog keeps the shell usable. On a fixed interval it
// sweeps the service set and restores every critical service found
// disabled: the service is re-enabled, stale buffered output is
// dropped, a recovery notice reaches the user and the prompt reopens.
//
// The watchdog is itself a non-critical service; disabling it stops
// the healing without stopping the ticker.
package watchdog

import (
	"fmt"
	"sync"
	"time"

	"github.com/msto63/mShell/core/log"
	"github.com/msto63/mShell/output"
	"github.com/msto63/mShell/service"
)

// DefaultInterval is the sweep interval used when none is configured.
const DefaultInterval = 2 * time.Second

// EventRecorder receives recovery events for the diagnostics log.
type EventRecorder interface {
	Record(action string)
}

type nopRecorder struct{}

func (nopRecorder) Record(string) {}

// Options configures a new watchdog. Services is required; zero
// fields fall back to defaults.
type Options struct {
	// Services is the set swept for disabled critical services.
	Services *service.Set

	// Interval is the time between sweeps.
	Interval time.Duration

	// Buffer holds output that is dropped on recovery; a half-written
	// transcript from before the outage would only confuse.
	Buffer *output.Buffer

	// Presenter receives the recovery notice.
	Presenter output.Presenter

	// Reprompt reopens the input prompt after a recovery.
	Reprompt func()

	// Kick restarts the execution queue after a recovery.
	Kick func()

	// Recorder observes recovery events.
	Recorder EventRecorder

	// Logger is the out-of-band fault channel.
	Logger *log.Logger
}

// Watchdog sweeps the service set and heals critical services. It is
// itself a service named "watchdog".
type Watchdog struct {
	*service.State

	services  *service.Set
	interval  time.Duration
	buffer    *output.Buffer
	presenter output.Presenter
	reprompt  func()
	kick      func()
	recorder  EventRecorder
	logger    *log.Logger

	startOnce sync.Once
	stopOnce  sync.Once
	quit      chan struct{}
	wg        sync.WaitGroup
}

// New creates an enabled watchdog with the given options.
func New(opts Options) *Watchdog {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Watchdog{
		State:     service.NewState("watchdog", true),
		services:  opts.Services,
		interval:  opts.Interval,
		buffer:    opts.Buffer,
		presenter: opts.Presenter,
		reprompt:  opts.Reprompt,
		kick:      opts.Kick,
		recorder:  opts.Recorder,
		logger:    opts.Logger.WithName("watchdog"),
		quit:      make(chan struct{}),
	}
}

// Start launches the periodic sweep. Further calls are no-ops.
func (w *Watchdog) Start() {
	w.startOnce.Do(func() {
		w.wg.Add(1)
		go w.loop()
	})
}

// Stop ends the periodic sweep and waits for it to finish. Safe to
// call repeatedly and without a prior Start.
func (w *Watchdog) Stop() {
	w.stopOnce.Do(func() {
		close(w.quit)
	})
	w.wg.Wait()
}

func (w *Watchdog) loop() {
	defer w.wg.Done()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.Sweep()
		case <-w.quit:
			return
		}
	}
}

// Sweep checks every critical service once and heals the disabled
// ones. It returns the number of services healed. Sweeps are no-ops
// while the watchdog itself is disabled.
func (w *Watchdog) Sweep() int {
	if !w.Enabled() {
		return 0
	}
	healed := 0
	for _, svc := range w.services.CriticalServices() {
		if svc.Enabled() {
			continue
		}
		w.heal(svc)
		healed++
	}
	return healed
}

// heal restores one service and announces the recovery.
func (w *Watchdog) heal(svc service.Service) {
	name := svc.Name()
	svc.Enable()
	if w.buffer != nil {
		w.buffer.Clear()
	}
	if w.presenter != nil {
		w.presenter.RenderStatus(
			fmt.Sprintf("self-healing: service '%s' re-enabled", name))
	}
	if w.reprompt != nil {
		w.reprompt()
	}
	if w.kick != nil {
		w.kick()
	}
	w.recorder.Record("heal " + name)
	w.logger.Warn("critical service re-enabled",
		log.String("service", name))
}
