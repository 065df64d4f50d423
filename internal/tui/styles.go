package tui

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorFg      = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	EchoStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	StatusMessageStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)

	BusyStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)
)

var markupPattern = regexp.MustCompile(`\{\{(.*?)\}\}`)

// RenderMarkup converts {{...}} spans into highlighted text.
func RenderMarkup(content string) string {
	return markupPattern.ReplaceAllStringFunc(content, func(span string) string {
		return HighlightStyle.Render(span[2 : len(span)-2])
	})
}
