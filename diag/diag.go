// File: diag.go
// Title: Diagnostics Event Log
// Description: Records lifecycle events and renders them with display
//              compression
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

// Package diag keeps an append-only trace of shell lifecycle events:
// chains enqueued, fragments invoked, services toggled, recoveries
// performed. Recording is gated by the recorder's service state and is
// disabled by default, so routine operation costs nothing.
//
// Dump renders the trace for display. Rendering compresses consecutive
// identical lines into one with an (xN) suffix and blanks repeated
// timestamps, without ever mutating the underlying events.
package diag

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/msto63/mShell/core/log"
	"github.com/msto63/mShell/service"
)

// Event is one recorded action with its wall-clock time.
type Event struct {
	Action string
	At     time.Time
}

// Recorder is the append-only event log. It is itself a service named
// "diaglog"; while disabled, Record is a no-op.
type Recorder struct {
	*service.State

	mu     sync.Mutex
	events []Event
	stamp  func(time.Time) string
	logger *log.Logger
}

// NewRecorder creates a disabled recorder. A nil logger falls back to
// the package default.
func NewRecorder(logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{
		State:  service.NewState("diaglog", false),
		stamp:  defaultStamp,
		logger: logger.WithName("diag"),
	}
}

// defaultStamp renders second-resolution timestamps for display.
func defaultStamp(t time.Time) string {
	return t.Format("15:04:05")
}

// SetStamp replaces the timestamp renderer used by Dump. Tests use
// this for deterministic output.
func (r *Recorder) SetStamp(fn func(time.Time) string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fn != nil {
		r.stamp = fn
	}
}

// Record appends an event. While the recorder is disabled this is a
// no-op.
func (r *Recorder) Record(action string) {
	if !r.Enabled() {
		return
	}
	r.mu.Lock()
	r.events = append(r.events, Event{Action: action, At: time.Now()})
	r.mu.Unlock()

	r.logger.Trace("event", log.String("action", action))
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Clear truncates the event log. This is the only mutation besides
// Record.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Events returns a snapshot copy of the raw events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// renderedRun is one run of identical display lines.
type renderedRun struct {
	stamp string
	text  string
	count int
}

// Dump renders the event log for display. Consecutive identical lines
// collapse into one with an (xN) suffix; a timestamp equal to the
// previous line's is blanked to equal-width spaces.
func (r *Recorder) Dump() []string {
	r.mu.Lock()
	events := make([]Event, len(r.events))
	copy(events, r.events)
	stamp := r.stamp
	r.mu.Unlock()

	var runs []renderedRun
	for _, ev := range events {
		s := stamp(ev.At)
		if n := len(runs); n > 0 && runs[n-1].stamp == s && runs[n-1].text == ev.Action {
			runs[n-1].count++
			continue
		}
		runs = append(runs, renderedRun{stamp: s, text: ev.Action, count: 1})
	}

	out := make([]string, 0, len(runs))
	prevStamp := ""
	for _, run := range runs {
		shown := run.stamp
		if run.stamp == prevStamp {
			shown = strings.Repeat(" ", len(run.stamp))
		} else {
			prevStamp = run.stamp
		}
		line := shown + " " + run.text
		if run.count > 1 {
			line += fmt.Sprintf(" (x%d)", run.count)
		}
		out = append(out, line)
	}
	return out
}
