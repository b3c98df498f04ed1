package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
)

// SummaryData aggregates run state for rendering the summary.
type SummaryData struct {
	Target      int
	Comparisons int
	Result      *search.Result
	Cancelled   bool
	Paused      bool
}

// Summary renders a textual run summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	lines := []string{fmt.Sprintf("Target: %d  Comparisons: %d", s.data.Target, s.data.Comparisons)}

	switch {
	case s.data.Result != nil && s.data.Result.Found:
		lines = append(lines, fmt.Sprintf("Found %d at index %d after %d comparisons",
			s.data.Target, s.data.Result.Index, s.data.Result.TotalComparisons))
	case s.data.Result != nil:
		lines = append(lines, fmt.Sprintf("%d not found after %d comparisons",
			s.data.Target, s.data.Result.TotalComparisons))
	case s.data.Cancelled:
		lines = append(lines, "Search cancelled")
	case s.data.Paused:
		lines = append(lines, "Paused")
	}

	return strings.Join(lines, "\n")
}
