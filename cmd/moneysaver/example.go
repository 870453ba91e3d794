package main

import (
	"fmt"

	"github.com/moneysaver/offset-calculator/internal/config"
	"github.com/moneysaver/offset-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newExampleCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example scenario configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, out); err != nil {
				return err
			}
			a.logger.Debug("example configuration saved", "path", out, "scenarios", len(cfg.Scenarios))
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "example_config.yaml", "destination file")
	return cmd
}
