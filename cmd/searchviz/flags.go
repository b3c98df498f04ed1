package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/searchviz/internal/config"
	"github.com/alexisbeaulieu97/searchviz/internal/domain/search"
)

const (
	formatTUI   = "tui"
	formatPlain = "plain"
	formatJSON  = "json"

	maxRandomLength = 1000
	randomMaxValue  = 100
)

func validateRunOptions(opts runOptions, args []string) error {
	switch {
	case opts.random == 0 && len(args) == 0:
		return fmt.Errorf("an input sequence or --random is required")
	case opts.random != 0 && len(args) > 0:
		return fmt.Errorf("--random cannot be combined with an input sequence")
	case opts.random < 0 || opts.random > maxRandomLength:
		return fmt.Errorf("--random must be between 1 and %d, got %d", maxRandomLength, opts.random)
	}

	if opts.algorithm != "" {
		if _, err := search.ParseAlgorithm(opts.algorithm); err != nil {
			return err
		}
	}

	switch strings.ToLower(opts.format) {
	case formatTUI, formatPlain, formatJSON:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", opts.format, formatTUI, formatPlain, formatJSON)
	}

	if opts.delay < 0 || opts.delay > config.MaxStepDelay {
		return fmt.Errorf("--delay must be between 0 and %s, got %s", config.MaxStepDelay, opts.delay)
	}

	return nil
}

func validateHistoryOptions(opts historyOptions) error {
	if opts.limit < 0 || opts.limit > 1000 {
		return fmt.Errorf("--limit must be between 0 and 1000 (0 uses history.limit), got %d", opts.limit)
	}
	return nil
}

// effectiveDelay applies flag > file precedence.
func effectiveDelay(opts runOptions, cfg *config.Config) time.Duration {
	if opts.delaySet {
		return opts.delay
	}
	return cfg.Settings.StepDelay.Std()
}

func effectiveAlgorithm(opts runOptions, cfg *config.Config) search.Algorithm {
	if opts.algorithm != "" {
		return search.Algorithm(opts.algorithm)
	}
	return search.Algorithm(cfg.Settings.Algorithm)
}
