package main

import (
	"fmt"
	"log/slog"

	"github.com/moneysaver/offset-calculator/internal/logging"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "moneysaver",
		Short: "Loan offset savings calculator",
		Long: `moneysaver works out how much an offset balance saves on an EMI loan:
the shorter payoff, the interest saved, the return the offset funds give up
and the resulting net savings and effective rate.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogger(cmd, a.logLevel)
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(
		newCalculateCmd(a),
		newCompareCmd(a),
		newSweepCmd(a),
		newServeCmd(a),
		newExampleCmd(a),
		newFormatsCmd(),
	)
	return root
}

func (a *app) setupLogger(cmd *cobra.Command, levelName string) error {
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), a.logFormat, level)
	if err != nil {
		return fmt.Errorf("--log-format: %w", err)
	}
	a.logger = logger
	return nil
}
