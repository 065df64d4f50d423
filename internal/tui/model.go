package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	mshell "github.com/msto63/mShell"
	"github.com/msto63/mShell/command"
)

// Model is the interactive shell UI: a transcript viewport over a
// single input line. Input is locked while a chain runs and unlocks
// when the shell reopens the prompt.
type Model struct {
	shell *mshell.Shell

	width  int
	height int
	ready  bool
	busy   bool

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	lines []string
}

// NewModel creates the UI model for a shell.
func NewModel(shell *mshell.Shell) Model {
	ti := textinput.New()
	ti.Prompt = shell.Prompt()
	ti.PromptStyle = PromptStyle
	ti.Placeholder = "type a command, 'help' lists them"
	ti.CharLimit = 512
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	return Model{
		shell:   shell,
		busy:    true, // unlocked by the first prompt message
		input:   ti,
		spinner: sp,
	}
}

// Init starts the shell and the input cursor.
func (m Model) Init() tea.Cmd {
	shell := m.shell
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		func() tea.Msg {
			shell.Start()
			return nil
		},
	)
}

// Update handles key input and the messages the presenter sends.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.busy {
				m.shell.Interrupt()
				m.shell.Resume()
				return m, nil
			}
			return m, tea.Quit

		case "esc":
			return m, tea.Quit

		case "enter":
			if m.busy {
				return m, nil
			}
			raw := m.input.Value()
			m.input.Reset()
			m.busy = true
			m.appendLine(EchoStyle.Render(m.shell.Prompt() + raw))
			m.shell.Submit(raw)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-4, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-4, 1)
		}
		m.input.Width = msg.Width - len(m.shell.Prompt()) - 2
		m.refreshViewport()

	case lineMsg:
		m.appendLine(renderLine(msg))

	case promptMsg:
		m.busy = false

	case clearMsg:
		m.lines = nil
		m.refreshViewport()

	case spinner.TickMsg:
		if m.busy {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the transcript, the activity line and the input.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var s strings.Builder
	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.busy {
		s.WriteString(m.spinner.View())
		s.WriteString(BusyStyle.Render(" running... (ctrl+c interrupts)"))
	} else {
		s.WriteString(m.input.View())
	}
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) renderFooter() string {
	help := "Enter: run • Ctrl+C: interrupt/quit • Esc: quit"
	return StatusBarStyle.Width(max(m.width, len(help))).Render(help)
}

// renderLine turns one presenter message into styled text.
func renderLine(msg lineMsg) string {
	switch msg.kind {
	case command.LineError:
		return ErrorMessageStyle.Render("error: " + msg.content)
	case command.LineStatus:
		return StatusMessageStyle.Render("* " + msg.content)
	case command.LineMarkup:
		return RenderMarkup(msg.content)
	default:
		if msg.label != "" {
			return LabelStyle.Render(msg.label+":") + " " + msg.content
		}
		return msg.content
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
