package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/mShell/command"
)

// Presenter bridges the shell's presentation interface to a running
// bubbletea program. Render calls arrive from engine goroutines and
// are forwarded as program messages; calls made before Attach are
// buffered and replayed once the program exists.
type Presenter struct {
	mu      sync.Mutex
	prog    *tea.Program
	pending []tea.Msg
}

// NewPresenter creates an unattached presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Attach connects the presenter to the program and replays anything
// rendered before the program started.
func (p *Presenter) Attach(prog *tea.Program) {
	p.mu.Lock()
	p.prog = prog
	pending := p.pending
	p.pending = nil
	p.mu.Unlock()

	for _, msg := range pending {
		prog.Send(msg)
	}
}

func (p *Presenter) send(msg tea.Msg) {
	p.mu.Lock()
	prog := p.prog
	if prog == nil {
		p.pending = append(p.pending, msg)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	prog.Send(msg)
}

// RenderLine shows one normal output line.
func (p *Presenter) RenderLine(content, label string) {
	p.send(lineMsg{kind: command.LineNormal, content: content, label: label})
}

// RenderError shows one error line.
func (p *Presenter) RenderError(content string) {
	p.send(lineMsg{kind: command.LineError, content: content})
}

// RenderMarkup shows one line with {{...}} highlighting.
func (p *Presenter) RenderMarkup(content, label string) {
	p.send(lineMsg{kind: command.LineMarkup, content: content, label: label})
}

// RenderStatus shows one status notice.
func (p *Presenter) RenderStatus(content string) {
	p.send(lineMsg{kind: command.LineStatus, content: content})
}

// OpenPrompt unlocks the input line.
func (p *Presenter) OpenPrompt() {
	p.send(promptMsg{})
}

// Clear wipes the transcript.
func (p *Presenter) Clear() {
	p.send(clearMsg{})
}

// Message types the presenter feeds into the program
type lineMsg struct {
	kind    command.LineKind
	content string
	label   string
}

type promptMsg struct{}

type clearMsg struct{}
