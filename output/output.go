// File: output.go
// Title: Output Buffering and Presentation
// Description: Defines the presenter interface and the output buffer
//              between engine and presenter
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

// Package output connects the engine to whatever renders its lines.
// The engine never talks to a screen directly: completed chains append
// their lines to a Buffer, and the hidden obuffer command flushes the
// buffer to the Presenter in order.
package output

import (
	"sync"

	"github.com/msto63/mShell/command"
)

// Presenter renders output for the user. Implementations exist for
// the interactive terminal UI and for plain writers; all methods are
// fire-and-forget from the caller's viewpoint.
type Presenter interface {
	// RenderLine shows regular output. label may be empty.
	RenderLine(content, label string)

	// RenderError shows a user-facing error message.
	RenderError(content string)

	// RenderMarkup shows output containing {{...}} highlight markers.
	RenderMarkup(content, label string)

	// RenderStatus shows an out-of-band notice.
	RenderStatus(content string)

	// OpenPrompt requests a fresh interactive input line.
	OpenPrompt()

	// Clear empties the display.
	Clear()
}

// Buffer accumulates output lines until they are flushed. It is safe
// for concurrent use.
type Buffer struct {
	mu    sync.Mutex
	lines []command.Line
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds lines to the buffer in order.
func (b *Buffer) Append(lines ...command.Line) {
	if len(lines) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, lines...)
}

// Len returns the number of buffered lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Snapshot returns a copy of the buffered lines without draining.
func (b *Buffer) Snapshot() []command.Line {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]command.Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Clear drops all buffered lines.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}

// FlushTo drains the buffer to the presenter in append order, routing
// each line by its kind. The buffer is empty afterwards. Rendering
// happens outside the buffer's lock.
func (b *Buffer) FlushTo(p Presenter) {
	b.mu.Lock()
	lines := b.lines
	b.lines = nil
	b.mu.Unlock()

	for _, line := range lines {
		switch line.Kind {
		case command.LineError:
			p.RenderError(line.Content)
		case command.LineStatus:
			p.RenderStatus(line.Content)
		case command.LineMarkup:
			p.RenderMarkup(line.Content, line.Label)
		default:
			p.RenderLine(line.Content, line.Label)
		}
	}
}
