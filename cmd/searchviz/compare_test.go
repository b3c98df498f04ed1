package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
)

func TestCompareCommandTable(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("compare", "1,3,5,8,9")
	require.NoError(t, err)
	require.Contains(t, stdout, "Target 9 in [1,3,5,8,9]")
	require.Contains(t, stdout, "ALGORITHM")
	require.Regexp(t, `linear\s+5\s+index 4\s+0,1,2,3,4`, stdout)
	require.Regexp(t, `binary\s+3\s+index 4\s+2,3,4`, stdout)
	require.NotContains(t, stdout, "sorted first")
}

func TestCompareCommandNotesResort(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("compare", "7,2,9,2")
	require.NoError(t, err)
	require.Contains(t, stdout, "sorted first")
}

func TestCompareCommandJSON(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("compare", "--json", "1,3,5,8,9,8")
	require.NoError(t, err)

	var traces []search.Trace
	require.NoError(t, json.Unmarshal([]byte(stdout), &traces))
	require.Len(t, traces, 2)
	require.Equal(t, search.AlgorithmLinear, traces[0].Algorithm)
	require.Equal(t, 3, traces[0].Result.Index)
	require.NotNil(t, traces[1].Sort)
}

func TestCompareCommandRejectsInvalidInput(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("compare", "1,,2")
	require.ErrorIs(t, err, search.ErrInvalidInput)
	require.Contains(t, err.Error(), "parsing input")
}

func TestCompareCommandReportsCancellation(t *testing.T) {
	setupHome(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"compare", "1,3,5,8,9"})

	err := root.ExecuteContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Contains(t, err.Error(), "compare searches")
	require.NotContains(t, err.Error(), "parsing input")
}

func TestCompareCommandRequiresInput(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("compare")
	require.Error(t, err)
}
