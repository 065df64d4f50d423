// File: engine.go
// Title: Execution Engine
// Description: Runs command chains through a single-flight FIFO queue
//              with piping, cancellation and fault containment
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

// Package engine executes command chains. Chains queue in FIFO order
// and at most one is ever running; within a chain, fragments run
// sequentially, each receiving the previous fragment's output as its
// pipe input.
//
// The engine is the single place where faults become user-visible
// output. Verification errors and handler failures turn into error
// lines, interruption into a status line, and anything unexpected
// into a generic message with the real fault going to the logger.
// Enqueue callers always get a resolved ticket; only an explicit
// Interrupt resolves tickets with an error.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/msto63/mShell/command"
	msherror "github.com/msto63/mShell/core/error"
	"github.com/msto63/mShell/core/log"
	"github.com/msto63/mShell/output"
	"github.com/msto63/mShell/registry"
	"github.com/msto63/mShell/service"
)

// ErrInterrupted resolves tickets whose chains were abandoned by an
// explicit Interrupt call.
var ErrInterrupted = msherror.New("execution interrupted").
	WithCode(msherror.CodeInterrupted)

// DefaultPace is the pause after each successfully completed chain.
const DefaultPace = 25 * time.Millisecond

// EventRecorder receives lifecycle events for the diagnostics log.
type EventRecorder interface {
	Record(action string)
}

type nopRecorder struct{}

func (nopRecorder) Record(string) {}

// Options configures a new engine. Zero fields fall back to defaults.
type Options struct {
	// Registry verifies fragments and supplies their handlers.
	// Required.
	Registry *registry.Registry

	// Buffer receives completed chains' output lines.
	Buffer *output.Buffer

	// Recorder observes lifecycle events.
	Recorder EventRecorder

	// Logger is the out-of-band fault channel.
	Logger *log.Logger

	// Pace is the pause after each successfully completed chain.
	Pace time.Duration
}

// Engine is the chain executor. It is itself a service named
// "commandexec"; while disabled, enqueue and advance are gated, but a
// chain already running finishes normally.
type Engine struct {
	*service.State

	registry *registry.Registry
	buffer   *output.Buffer
	recorder EventRecorder
	logger   *log.Logger
	pace     time.Duration

	mu      sync.Mutex
	queue   []*Ticket
	running *Ticket
	cancel  context.CancelFunc
}

// New creates an enabled engine with the given options.
func New(opts Options) *Engine {
	if opts.Buffer == nil {
		opts.Buffer = output.NewBuffer()
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Pace <= 0 {
		opts.Pace = DefaultPace
	}
	return &Engine{
		State:    service.NewState("commandexec", true),
		registry: opts.Registry,
		buffer:   opts.Buffer,
		recorder: opts.Recorder,
		logger:   opts.Logger.WithName("engine"),
		pace:     opts.Pace,
	}
}

// Buffer returns the output buffer completed chains write to.
func (e *Engine) Buffer() *output.Buffer {
	return e.buffer
}

// QueueLen returns the number of chains waiting behind the running
// one.
func (e *Engine) QueueLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// IsRunning reports whether a chain currently holds the running slot.
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running != nil
}

// Enqueue appends a chain to the queue and tries to advance. The
// returned ticket always resolves; while the engine is disabled it
// resolves immediately with no output.
func (e *Engine) Enqueue(chain *command.Chain) *Ticket {
	tk := newTicket(chain)
	if chain == nil || len(chain.Fragments) == 0 {
		tk.complete(StatusCompleted, nil, nil)
		return tk
	}

	if !e.Enabled() {
		e.recorder.Record("reject " + chain.Fragments[0].Name)
		e.logger.Debug("chain rejected while engine disabled",
			log.String("chain", chain.ID))
		tk.complete(StatusFailed, nil, nil)
		return tk
	}

	e.mu.Lock()
	e.queue = append(e.queue, tk)
	e.mu.Unlock()

	e.recorder.Record("enqueue " + chain.Fragments[0].Name)
	e.advance()
	return tk
}

// advance starts the next queued chain. It is a no-op while the
// engine is disabled, a chain is running or the queue is empty.
func (e *Engine) advance() {
	if !e.Enabled() {
		return
	}

	e.mu.Lock()
	if e.running != nil || len(e.queue) == 0 {
		e.mu.Unlock()
		return
	}
	tk := e.queue[0]
	e.queue = e.queue[1:]
	e.running = tk
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.mu.Unlock()

	tk.setRunning()
	go e.run(ctx, cancel, tk)
}

// run executes one chain to completion and releases the running slot.
func (e *Engine) run(ctx context.Context, cancel context.CancelFunc, tk *Ticket) {
	defer cancel()

	logger := e.logger.WithRequestID(tk.chain.ID)
	timer := logger.StartTimer("chain")

	var pipe []command.Line
	var failure error
	aborted := false

	for _, frag := range tk.chain.Fragments {
		if ctx.Err() != nil {
			aborted = true
			break
		}
		next, err := e.step(ctx, frag, pipe)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				aborted = true
				break
			}
			failure = err
			break
		}
		pipe = next
	}
	// A cancel during the last fragment has no next boundary check to
	// trip; catch it here so the interrupted notice still appears.
	if failure == nil && ctx.Err() != nil {
		aborted = true
	}

	switch {
	case aborted:
		// Prior stages' output is still forwarded; the aborted stage
		// contributes nothing.
		e.buffer.Append(pipe...)
		e.buffer.Append(command.StatusLine("execution interrupted"))
		e.recorder.Record("abort")
		timer.Stop(log.String("outcome", "aborted"))
		tk.complete(StatusAborted, nil, nil)

	case failure != nil:
		e.buffer.Append(e.failureLine(failure, logger))
		timer.StopWithError(failure)
		tk.complete(StatusFailed, nil, nil)

	default:
		e.buffer.Append(pipe...)
		e.recorder.Record("complete")
		timer.Stop(log.Int("lines", len(pipe)))
		select {
		case <-time.After(e.pace):
		case <-ctx.Done():
		}
		tk.complete(StatusCompleted, pipe, nil)
	}

	e.mu.Lock()
	e.running = nil
	e.cancel = nil
	e.mu.Unlock()

	// Interrupt empties the queue before cancelling, so anything
	// queued now arrived afterwards and may have missed its advance
	// while this run still held the slot.
	e.advance()
}

// step verifies and runs one fragment, returning its output as the
// next pipe value. A context error means the pre-invocation
// cancellation check tripped. Handler panics are contained here.
func (e *Engine) step(ctx context.Context, frag *command.Fragment, pipe []command.Line) (out []command.Line, err error) {
	verified, err := e.registry.Verify(frag.Name, frag.Args, frag.Flags)
	if err != nil {
		e.recorder.Record("fail " + frag.Name)
		return nil, err
	}
	flags := e.registry.Normalize(frag.Name, verified)

	def, ok := e.registry.Lookup(frag.Name)
	if !ok {
		e.recorder.Record("fail " + frag.Name)
		return nil, msherror.Newf("unknown command: %s", frag.Name).
			WithCode(msherror.CodeUnknownCommand)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	defer func() {
		if r := recover(); r != nil {
			e.recorder.Record("fail " + def.Name)
			err = msherror.Newf("handler panic: %v", r).
				WithCode(msherror.CodeInternal).
				WithOperation(def.Name)
			out = nil
		}
	}()

	e.recorder.Record("invoke " + def.Name)
	result := def.Handler(ctx, registry.Invocation{
		Args:  frag.Args,
		Flags: flags,
		Pipe:  pipe,
	})
	if result.IsFailure() {
		e.recorder.Record("fail " + def.Name)
		return nil, msherror.New(result.Message()).
			WithCode(msherror.CodeCommandFailed).
			WithOperation(def.Name)
	}
	return result.Pipe(), nil
}

// failureLine converts a failure into the user-visible error line.
// Internal faults surface as a generic message; the real fault goes
// to the logger only.
func (e *Engine) failureLine(failure error, logger *log.Logger) command.Line {
	logger.LogError(failure)
	if msherror.GetCode(failure) == msherror.CodeInternal {
		return command.ErrorLine("unexpected error")
	}
	return command.ErrorLine(failure.Error())
}

// Interrupt abandons all queued chains and cancels the in-flight one.
// Every affected ticket resolves with ErrInterrupted before the
// cancellation lands, so waiters observe the interrupt first.
func (e *Engine) Interrupt() {
	e.mu.Lock()
	pending := e.queue
	e.queue = nil
	running := e.running
	cancel := e.cancel
	e.mu.Unlock()

	for _, tk := range pending {
		tk.complete(StatusAborted, nil, ErrInterrupted)
	}
	if running != nil {
		running.complete(StatusAborted, nil, ErrInterrupted)
	}
	if cancel != nil {
		cancel()
	}

	e.recorder.Record("interrupt")
	e.logger.Info("execution interrupted",
		log.Int("abandoned", len(pending)))
}

// Resume restarts the queue after an interrupt or a recovery.
func (e *Engine) Resume() {
	e.advance()
}

// String renders queue state for debugging.
func (e *Engine) String() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	running := "idle"
	if e.running != nil {
		running = e.running.chain.ID
	}
	return fmt.Sprintf("engine{running: %s, queued: %d}", running, len(e.queue))
}
