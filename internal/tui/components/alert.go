package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	alertBoxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("214")).Padding(0, 1)
	alertTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

// Alert is a bordered notice with an optional title and detail lines.
type Alert struct {
	message string
	icon    string
	title   string
	details []string
}

// NewAlert creates a new alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{message: message, icon: "!"}
}

// WithIcon sets the glyph shown before the message.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle sets the alert title.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithDetails appends lines rendered under the message.
func (a *Alert) WithDetails(lines ...string) *Alert {
	a.details = append(a.details, lines...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// View renders the alert.
func (a *Alert) View() string {
	var lines []string
	if a.title != "" {
		lines = append(lines, alertTitleStyle.Render(a.title))
	}
	message := a.message
	if a.icon != "" {
		message = a.icon + " " + message
	}
	lines = append(lines, message)
	lines = append(lines, a.details...)
	return alertBoxStyle.Render(strings.Join(lines, "\n"))
}
