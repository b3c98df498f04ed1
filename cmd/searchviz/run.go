package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/searchviz/internal/app/visualizer"
	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
	"github.com/alexisbeaulieu97/searchviz/internal/render"
	"github.com/alexisbeaulieu97/searchviz/internal/tui"
)

type runOptions struct {
	algorithm string
	delay     time.Duration
	delaySet  bool
	format    string
	random    int
	seed      uint64
	seedSet   bool
}

func newRunCmd(root *rootFlags) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run [flags] \"5,3,8,1,9\"",
		Short: "Animate a search; the last value of the input is the target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.delaySet = cmd.Flags().Changed("delay")
			opts.seedSet = cmd.Flags().Changed("seed")

			if err := validateRunOptions(opts, args); err != nil {
				return err
			}

			return runSearch(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algo", "a", "", "Search algorithm: linear or binary (default from config)")
	cmd.Flags().DurationVarP(&opts.delay, "delay", "d", 0, "Pause between steps (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTUI, "Output format: tui, plain or json")
	cmd.Flags().IntVar(&opts.random, "random", 0, "Generate N random values in [1,100] instead of reading input")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for --random")

	return cmd
}

func runSearch(cmd *cobra.Command, root *rootFlags, opts runOptions, args []string) error {
	app, err := newAppContext(cmd, root, "run search")
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	var input string
	if len(args) > 0 {
		input = args[0]
	} else {
		input = randomInput(opts)
		app.Logger.Debug(cmd.Context(), "generated random input", "input", input)
	}

	req := visualizer.Request{Input: input, Algorithm: effectiveAlgorithm(opts, app.Config)}
	presenterOpts := render.Options{
		Delay:   effectiveDelay(opts, app.Config),
		Unicode: app.Config.Settings.Unicode,
	}

	format := strings.ToLower(opts.format)
	if format == formatTUI && !isTerminal(cmd.OutOrStdout()) {
		app.Logger.Debug(cmd.Context(), "stdout is not a terminal, falling back to plain output")
		format = formatPlain
	}

	switch format {
	case formatTUI:
		return runInteractive(cmd, app, req, presenterOpts)
	case formatJSON:
		_, err = app.Service.Drive(cmd.Context(), req, render.NewJSON(cmd.OutOrStdout(), presenterOpts))
	default:
		_, err = app.Service.Drive(cmd.Context(), req, render.NewPlain(cmd.OutOrStdout(), presenterOpts))
	}
	return searchError("run search", err)
}

func runInteractive(cmd *cobra.Command, app *AppContext, req visualizer.Request, opts render.Options) error {
	ctx := cmd.Context()
	session, err := app.Service.Start(ctx, req)
	if err != nil {
		return searchError("run search", err)
	}
	defer session.Close(ctx)

	final, err := tui.Run(ctx, session, tui.Options{Delay: opts.Delay, Unicode: opts.Unicode},
		tea.WithOutput(cmd.OutOrStdout()))
	if err != nil {
		return newCommandError("run search", "running the interactive display", err, "Retry with --format plain.")
	}
	if final.Cancelled() {
		app.Logger.Info(ctx, "search cancelled", "comparisons", session.Comparisons())
	}
	return nil
}

func randomInput(opts runOptions) string {
	seed := opts.seed
	if !opts.seedSet {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	values := make([]int, opts.random)
	for i := range values {
		values[i] = rng.IntN(randomMaxValue) + 1
	}
	return search.Format(values)
}

func searchError(operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, search.ErrInvalidInput):
		return newCommandError(operation, "parsing input", err,
			"Pass comma-separated integers such as \"5,3,8,1,9\"; the last value is the target.")
	case errors.Is(err, search.ErrUnknownAlgorithm):
		return newCommandError(operation, "selecting algorithm", err, "Use --algo linear or --algo binary.")
	}
	return fmt.Errorf("%s: %w", operation, err)
}
