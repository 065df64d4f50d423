// File: line.go
// Title: Output Line Type
// Description: Defines the classified output line flowing between
//              fragments and to the presenter
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package command

// LineKind classifies an output line for rendering.
type LineKind int

const (
	// LineNormal is regular command output.
	LineNormal LineKind = iota

	// LineError is a user-facing error message.
	LineError

	// LineStatus is an out-of-band notice, such as an interruption or
	// recovery message.
	LineStatus

	// LineMarkup is normal output containing inline markup markers
	// that the presenter may style.
	LineMarkup
)

// String returns the name of the line kind.
func (k LineKind) String() string {
	switch k {
	case LineNormal:
		return "normal"
	case LineError:
		return "error"
	case LineStatus:
		return "status"
	case LineMarkup:
		return "markup"
	default:
		return "unknown"
	}
}

// Line is one unit of command output. Content never contains line
// breaks; multi-line output is a slice of Lines. Label optionally
// annotates the line with its source, such as a line number.
type Line struct {
	Kind    LineKind
	Content string
	Label   string
}

// Text creates a normal output line.
func Text(content string) Line {
	return Line{Kind: LineNormal, Content: content}
}

// TextAt creates a normal output line with a label.
func TextAt(label, content string) Line {
	return Line{Kind: LineNormal, Content: content, Label: label}
}

// ErrorLine creates an error line.
func ErrorLine(content string) Line {
	return Line{Kind: LineError, Content: content}
}

// StatusLine creates a status line.
func StatusLine(content string) Line {
	return Line{Kind: LineStatus, Content: content}
}

// MarkupLine creates a normal line carrying {{...}} markup markers.
func MarkupLine(content string) Line {
	return Line{Kind: LineMarkup, Content: content}
}
