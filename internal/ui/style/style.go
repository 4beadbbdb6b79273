// Package style holds the severity marks shared by the logger and the diagnostics reporter.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/tsload/internal/core/domain"
)

// Mark pairs a severity icon with its color.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

// Severity marks.
var (
	Error   = Mark{Icon: "✗", Color: lipgloss.Color("#D93025")}
	Warning = Mark{Icon: "!", Color: lipgloss.Color("#F59E0B")}
	Message = Mark{Icon: "i", Color: lipgloss.Color("#0EA5E9")}
	// Plain is used for informational log lines, which carry no icon.
	Plain = Mark{Color: lipgloss.Color("#667085")}
)

// ForCategory returns the mark for diagnostics of category c.
func ForCategory(c domain.DiagnosticCategory) Mark {
	switch c {
	case domain.CategoryError:
		return Error
	case domain.CategoryWarning:
		return Warning
	default:
		return Message
	}
}

// Prefix puts the icon in front of msg. Marks without an icon return msg unchanged.
func (m Mark) Prefix(msg string) string {
	if m.Icon == "" {
		return msg
	}
	return m.Icon + " " + msg
}

// Terminal converts the mark color for termenv output.
func (m Mark) Terminal() termenv.Color {
	return termenv.RGBColor(string(m.Color))
}
