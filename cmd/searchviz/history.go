package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/searchviz/internal/app/visualizer"
	"github.com/alexisbeaulieu97/searchviz/internal/ports"
)

type historyOptions struct {
	limit      int
	jsonOutput bool
}

func newHistoryCmd(root *rootFlags) *cobra.Command {
	opts := historyOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent searches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateHistoryOptions(opts); err != nil {
				return err
			}
			return runHistory(cmd, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Number of runs to show (default from config)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runHistory(cmd *cobra.Command, root *rootFlags, opts historyOptions) error {
	app, err := newAppContext(cmd, root, "list history")
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	limit := opts.limit
	if limit == 0 {
		limit = app.Config.History.Limit
	}

	records, err := app.Service.History(cmd.Context(), limit)
	if errors.Is(err, visualizer.ErrHistoryDisabled) {
		return newCommandError("list history", "reading run history", err, "Set history.enabled: true in your configuration.")
	}
	if err != nil {
		return newCommandError("list history", "reading run history", err, "Check the history database path and permissions.")
	}

	if opts.jsonOutput {
		return renderHistoryJSON(cmd, records)
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No searches recorded yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'searchviz run \"5,3,8,1,9\"' to record your first search.")
		return nil
	}
	return renderHistoryTable(cmd, records)
}

func renderHistoryTable(cmd *cobra.Command, records []ports.RunRecord) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tALGORITHM\tTARGET\tRESULT\tCOMPARISONS\tSTATUS\tWHEN\tINPUT")

	for _, rec := range records {
		result := "not found"
		if rec.Found {
			result = fmt.Sprintf("index %d", rec.Index)
		}
		status := "completed"
		if !rec.Completed {
			status = "abandoned"
		}
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%d\t%s\t%s\t%s\n",
			shortID(rec.ID),
			rec.Algorithm,
			rec.Target,
			result,
			rec.Comparisons,
			status,
			formatRelativeTime(rec.CreatedAt),
			rec.Input,
		)
	}

	return writer.Flush()
}

type historyJSONPayload struct {
	Version string            `json:"version"`
	Count   int               `json:"count"`
	Runs    []ports.RunRecord `json:"runs"`
}

func renderHistoryJSON(cmd *cobra.Command, records []ports.RunRecord) error {
	if records == nil {
		records = []ports.RunRecord{}
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(historyJSONPayload{Version: "1.0", Count: len(records), Runs: records})
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatRelativeTime(ts time.Time) string {
	if ts.IsZero() {
		return "never"
	}

	delta := time.Since(ts)
	if delta < time.Minute {
		return "just now"
	}
	if delta < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(delta.Minutes()))
	}
	if delta < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(delta.Hours()))
	}

	return fmt.Sprintf("%d days ago", int(delta.Hours()/24))
}
