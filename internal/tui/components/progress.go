package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders comparisons spent against the worst case for the run.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for the given worst-case comparison count.
func NewProgress(total int) Progress {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	return Progress{bar: bar, total: total}
}

// View renders the bar for the comparisons performed so far.
func (p Progress) View(comparisons int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Min(1.0, float64(comparisons)/float64(p.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", comparisons, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio), " comparisons")
}
