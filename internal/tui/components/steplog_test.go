package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
)

func TestNewStepLog(t *testing.T) {
	t.Parallel()

	steps := []search.Step{
		{Index: 0, Value: 5, Comparisons: 1},
		{Index: 1, Value: 3, Comparisons: 2},
		{Index: 2, Value: 8, Comparisons: 3},
	}

	t.Run("keeps everything without a limit", func(t *testing.T) {
		t.Parallel()
		require.Len(t, NewStepLog(steps, 0).Entries(), 3)
	})

	t.Run("keeps the trailing steps under a limit", func(t *testing.T) {
		t.Parallel()
		entries := NewStepLog(steps, 2).Entries()
		require.Len(t, entries, 2)
		require.Equal(t, 2, entries[0].Comparisons)
		require.Equal(t, 3, entries[1].Comparisons)
	})

	t.Run("returns independent copy", func(t *testing.T) {
		t.Parallel()
		log := NewStepLog(steps, 0)
		first := log.Entries()
		first[0].Value = 99
		require.Equal(t, 5, log.Entries()[0].Value)
	})

	t.Run("handles empty run", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, NewStepLog(nil, 5).Lines())
	})
}

func TestStepLogLines(t *testing.T) {
	t.Parallel()

	lines := NewStepLog([]search.Step{
		{Index: 2, Value: 5, Comparisons: 1, Bounds: &search.Bounds{Left: 0, Right: 4}},
		{Index: 3, Value: 8, Comparisons: 2, Bounds: &search.Bounds{Left: 3, Right: 4}, Matched: true},
	}, 0).Lines()

	require.Equal(t, []string{
		"#1  index 2  value 5  [0..4]",
		"#2  index 3  value 8  [3..4]  match",
	}, lines)
}
