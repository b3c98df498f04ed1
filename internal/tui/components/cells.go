package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
)

var (
	cellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	probeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
)

// Cells renders the searched sequence as a row of cells with a marker under
// the probed index. Cells outside the current bounds are dimmed.
type Cells struct {
	values  []int
	step    *search.Step
	unicode bool
}

// NewCells builds the row for values. step is the most recent probe, or nil
// before the first one.
func NewCells(values []int, step *search.Step, unicode bool) Cells {
	return Cells{values: values, step: step, unicode: unicode}
}

// View renders the cell row and the marker row.
func (c Cells) View() string {
	if len(c.values) == 0 {
		return ""
	}

	width := c.cellWidth()
	cells := make([]string, len(c.values))
	markers := make([]string, len(c.values))
	for i, v := range c.values {
		cells[i] = c.styleFor(i).Render(fmt.Sprintf("%*d", width, v))
		markers[i] = strings.Repeat(" ", width)
		if c.step != nil && i == c.step.Index {
			markers[i] = fmt.Sprintf("%*s", width, c.pointer())
		}
	}

	return strings.Join(cells, " ") + "\n" + strings.TrimRight(strings.Join(markers, " "), " ")
}

func (c Cells) styleFor(i int) lipgloss.Style {
	if c.step == nil {
		return cellStyle
	}
	if i == c.step.Index {
		if c.step.Matched {
			return matchStyle
		}
		return probeStyle
	}
	if c.step.Bounds != nil && !c.step.Bounds.Contains(i) {
		return dimStyle
	}
	return cellStyle
}

func (c Cells) cellWidth() int {
	width := 1
	for _, v := range c.values {
		width = max(width, len(strconv.Itoa(v)))
	}
	return width
}

func (c Cells) pointer() string {
	if c.unicode {
		return "▲"
	}
	return "^"
}
