package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/searchviz/internal/ports"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "searchviz",
		Short:         "searchviz animates linear and binary search over a list of integers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(ports.WithCorrelationID(cmd.Context(), ports.GenerateCorrelationID()))
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (default ~/.searchviz/config.yaml)")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newCompareCmd(flags))
	cmd.AddCommand(newHistoryCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
