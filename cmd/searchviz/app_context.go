package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/searchviz/internal/app/visualizer"
	"github.com/alexisbeaulieu97/searchviz/internal/config"
	"github.com/alexisbeaulieu97/searchviz/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/searchviz/internal/infrastructure/history"
	"github.com/alexisbeaulieu97/searchviz/internal/logger"
	"github.com/alexisbeaulieu97/searchviz/internal/ports"
	vizerrors "github.com/alexisbeaulieu97/searchviz/pkg/errors"
)

// AppContext bundles the services one command invocation needs.
type AppContext struct {
	Config  *config.Config
	Logger  ports.Logger
	History ports.HistoryStore
	Service *visualizer.Service
}

func newAppContext(cmd *cobra.Command, flags *rootFlags, operation string) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		suggestion := vizerrors.Suggestion(err)
		if suggestion == "" {
			suggestion = "Fix the configuration file or pass --config with a valid path."
		}
		return nil, newCommandError(operation, "loading configuration", err, suggestion)
	}

	level := cfg.Settings.LogLevel
	if flags.verbose {
		level = "debug"
	}
	logOpts := logger.Options{
		Level:         level,
		HumanReadable: isTerminal(cmd.ErrOrStderr()),
		Writer:        cmd.ErrOrStderr(),
		Component:     "visualizer",
	}
	log, err := logger.New(logOpts)
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of debug, info, warn or error for settings.log_level.")
	}
	logOpts.Component = "publisher"
	publisherLog, err := logger.New(logOpts)
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of debug, info, warn or error for settings.log_level.")
	}

	app := &AppContext{Config: cfg, Logger: log}

	opts := []visualizer.Option{
		visualizer.WithLogger(log),
		visualizer.WithPublisher(events.NewLoggingPublisher(publisherLog)),
	}

	if cfg.History.Enabled {
		path, err := config.ExpandPath(cfg.History.Path)
		if err != nil {
			return nil, newCommandError(operation, "resolving history path", err, "Ensure your HOME directory is set correctly.")
		}
		store, err := history.Open(path)
		if err != nil {
			// Searches still run without history.
			log.Warn(cmd.Context(), "run history unavailable", "path", path, "error", err)
		} else {
			app.History = store
			opts = append(opts, visualizer.WithHistory(store))
		}
	}

	app.Service = visualizer.NewService(opts...)
	return app, nil
}

// Close releases the history store.
func (a *AppContext) Close() error {
	if a == nil || a.History == nil {
		return nil
	}
	return a.History.Close()
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
