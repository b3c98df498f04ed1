package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
	"github.com/alexisbeaulieu97/searchviz/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	sections = append(sections, m.header())

	if m.sort != nil {
		icon := "!"
		if m.unicode {
			icon = "⚠"
		}
		alert := components.NewAlert("Input was not sorted; binary search runs on the sorted copy.").
			WithIcon(icon).
			WithDetails(
				fmt.Sprintf("before: %s", search.Format(m.sort.Before)),
				fmt.Sprintf("after:  %s", search.Format(m.sort.After)),
			)
		sections = append(sections, alert.View())
	}

	cells := components.NewCells(m.cells(), m.current(), m.unicode).View()
	sections = append(sections, sectionStyle.Render("Sequence"), cells)

	progress := components.NewProgress(worstCase(m.info.Algorithm, len(m.info.Sequence))).View(m.session.Comparisons())
	sections = append(sections, sectionStyle.Render("Progress"), progress)

	if lines := components.NewStepLog(m.steps, logLines).Lines(); len(lines) > 0 {
		sections = append(sections, sectionStyle.Render("Steps"), strings.Join(lines, "\n"))
	}

	summary := components.NewSummary(components.SummaryData{
		Target:      m.info.Target,
		Comparisons: m.session.Comparisons(),
		Result:      m.result,
		Cancelled:   m.cancelled,
		Paused:      m.paused,
	}).View()
	sections = append(sections, summaryStyle.Render(summary))

	if !m.finished {
		sections = append(sections, "", m.help.View(m.keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) header() string {
	sep := "-"
	if m.unicode {
		sep = "•"
	}
	title := titleStyle.Render(fmt.Sprintf("searchviz %s %s search", sep, m.info.Algorithm))

	var status string
	switch {
	case m.result != nil:
		status = StatusIcon(m.result.Found, m.unicode)
	case m.cancelled:
		status = components.ErrorBadge("cancelled").View()
	case m.paused:
		status = components.WarningBadge("paused").View()
	default:
		status = m.spinner.View()
	}

	return fmt.Sprintf("%s %s  delay %s", title, status, m.delay)
}

// StatusIcon returns the glyph for a finished search.
func StatusIcon(found, unicode bool) string {
	switch {
	case found && unicode:
		return components.SuccessBadge("✓").View()
	case found:
		return components.SuccessBadge("found").View()
	case unicode:
		return components.ErrorBadge("✗").View()
	default:
		return components.ErrorBadge("not found").View()
	}
}
