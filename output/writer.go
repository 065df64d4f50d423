// File: writer.go
// Title: Writer Presenter
// Description: Implements a plain-text presenter for non-interactive
//              output
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package output

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// markupReplacer strips {{...}} highlight markers for plain output.
var markupReplacer = strings.NewReplacer("{{", "", "}}", "")

// StripMarkup removes highlight markers from a markup line's content.
func StripMarkup(content string) string {
	return markupReplacer.Replace(content)
}

// WriterPresenter renders lines as plain text to a writer. It is used
// for one-shot command execution and in tests. Prompt and clear
// requests are ignored because there is no interactive surface.
type WriterPresenter struct {
	mu       sync.Mutex
	out      io.Writer
	errCount int
}

// NewWriterPresenter creates a presenter writing to out.
func NewWriterPresenter(out io.Writer) *WriterPresenter {
	return &WriterPresenter{out: out}
}

// RenderLine implements Presenter.
func (w *WriterPresenter) RenderLine(content, label string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if label != "" {
		fmt.Fprintf(w.out, "%s: %s\n", label, content)
		return
	}
	fmt.Fprintln(w.out, content)
}

// RenderError implements Presenter.
func (w *WriterPresenter) RenderError(content string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errCount++
	fmt.Fprintf(w.out, "error: %s\n", content)
}

// RenderMarkup implements Presenter.
func (w *WriterPresenter) RenderMarkup(content, label string) {
	w.RenderLine(StripMarkup(content), label)
}

// RenderStatus implements Presenter.
func (w *WriterPresenter) RenderStatus(content string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, "* %s\n", content)
}

// OpenPrompt implements Presenter as a no-op.
func (w *WriterPresenter) OpenPrompt() {}

// Clear implements Presenter as a no-op.
func (w *WriterPresenter) Clear() {}

// ErrorCount reports how many error lines were rendered. One-shot
// execution uses this for its exit status.
func (w *WriterPresenter) ErrorCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errCount
}
