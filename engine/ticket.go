// File: ticket.go
// Title: Chain Ticket
// Description: Tracks one enqueued chain's lifecycle and deferred
//              result
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package engine

import (
	"context"
	"sync"

	"github.com/msto63/mShell/command"
)

// ChainStatus is the lifecycle state of an enqueued chain.
type ChainStatus int

const (
	// StatusQueued means the chain waits its turn.
	StatusQueued ChainStatus = iota

	// StatusRunning means the chain holds the single running slot.
	StatusRunning

	// StatusCompleted means every fragment ran successfully.
	StatusCompleted

	// StatusAborted means the chain was interrupted.
	StatusAborted

	// StatusFailed means a fragment failed verification or execution,
	// or the engine rejected the chain while disabled.
	StatusFailed
)

// String returns the name of the status.
func (s ChainStatus) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusAborted:
		return "aborted"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Ticket is the deferred result of an enqueued chain. Every ticket
// resolves exactly once; on any failure path the pipe is nil and the
// error is nil, except for explicit interruption, which resolves with
// ErrInterrupted.
type Ticket struct {
	chain *command.Chain

	mu     sync.Mutex
	status ChainStatus
	pipe   []command.Line
	err    error

	once sync.Once
	done chan struct{}
}

func newTicket(chain *command.Chain) *Ticket {
	return &Ticket{
		chain:  chain,
		status: StatusQueued,
		done:   make(chan struct{}),
	}
}

// Chain returns the chain this ticket tracks.
func (t *Ticket) Chain() *command.Chain {
	return t.chain
}

// Status returns the current lifecycle state.
func (t *Ticket) Status() ChainStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Done returns a channel closed when the ticket resolves.
func (t *Ticket) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the ticket resolves or the context ends. The
// returned pipe is the chain's final output on success and nil
// otherwise.
func (t *Ticket) Wait(ctx context.Context) ([]command.Line, error) {
	select {
	case <-t.done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.pipe, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// setRunning marks the ticket as holding the running slot.
func (t *Ticket) setRunning() {
	t.mu.Lock()
	if t.status == StatusQueued {
		t.status = StatusRunning
	}
	t.mu.Unlock()
}

// complete resolves the ticket. Only the first call has any effect.
func (t *Ticket) complete(status ChainStatus, pipe []command.Line, err error) {
	t.once.Do(func() {
		t.mu.Lock()
		t.status = status
		t.pipe = pipe
		t.err = err
		t.mu.Unlock()
		close(t.done)
	})
}
