package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
)

// StepLog renders the most recent probes of a run, oldest first.
type StepLog struct {
	entries []search.Step
	limit   int
}

// NewStepLog keeps at most limit of the trailing steps. A limit of zero keeps all.
func NewStepLog(steps []search.Step, limit int) StepLog {
	if limit > 0 && len(steps) > limit {
		steps = steps[len(steps)-limit:]
	}
	entries := make([]search.Step, len(steps))
	copy(entries, steps)
	return StepLog{entries: entries, limit: limit}
}

// Entries returns the retained steps.
func (l StepLog) Entries() []search.Step {
	clone := make([]search.Step, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// Lines formats each retained step for display.
func (l StepLog) Lines() []string {
	lines := make([]string, 0, len(l.entries))
	for _, step := range l.entries {
		line := fmt.Sprintf("#%d  index %d  value %d", step.Comparisons, step.Index, step.Value)
		if step.Bounds != nil {
			line = fmt.Sprintf("%s  [%d..%d]", line, step.Bounds.Left, step.Bounds.Right)
		}
		if step.Matched {
			line += "  match"
		}
		lines = append(lines, line)
	}
	return lines
}
