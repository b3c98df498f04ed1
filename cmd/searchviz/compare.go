package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
)

type compareOptions struct {
	jsonOutput bool
}

func newCompareCmd(root *rootFlags) *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare \"1,3,5,8,9\"",
		Short: "Run every algorithm on the same input and compare their probes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runCompare(cmd *cobra.Command, root *rootFlags, opts *compareOptions, input string) error {
	app, err := newAppContext(cmd, root, "compare searches")
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	traces, err := app.Service.Compare(cmd.Context(), input)
	if err != nil {
		return searchError("compare searches", err)
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(traces)
	}

	return renderCompareTable(cmd, traces)
}

func renderCompareTable(cmd *cobra.Command, traces []search.Trace) error {
	out := cmd.OutOrStdout()
	if len(traces) > 0 {
		fmt.Fprintf(out, "Target %d in [%s]\n\n", traces[0].Target, search.Format(traces[0].Sequence))
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ALGORITHM\tCOMPARISONS\tRESULT\tPROBES\tNOTE")

	for _, trace := range traces {
		note := ""
		if trace.Sort != nil {
			note = "sorted first"
		}
		fmt.Fprintf(writer, "%s\t%d\t%s\t%s\t%s\n",
			trace.Algorithm,
			trace.Result.TotalComparisons,
			formatResult(trace.Result),
			formatProbes(trace.Steps),
			note,
		)
	}

	return writer.Flush()
}

func formatResult(res search.Result) string {
	if !res.Found {
		return "not found"
	}
	return fmt.Sprintf("index %d", res.Index)
}

func formatProbes(steps []search.Step) string {
	parts := make([]string, len(steps))
	for i, step := range steps {
		parts[i] = strconv.Itoa(step.Index)
	}
	return strings.Join(parts, ",")
}
