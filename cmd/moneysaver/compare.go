package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/moneysaver/offset-calculator/internal/calculation"
	"github.com/moneysaver/offset-calculator/internal/config"
	"github.com/moneysaver/offset-calculator/internal/logging"
	"github.com/moneysaver/offset-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	var configFile, format, outDir string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every scenario of a YAML configuration and compare them",
		Example: `  moneysaver compare --config example_config.yaml
  moneysaver compare --config example_config.yaml --format html --out reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(configFile)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngineWithConfig(cfg.Assumptions)
			engine.SetLogger(logging.NewCalcLogger(a.logger))
			results, err := engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			results.Assumptions = output.GenerateAssumptions(engine.OpportunityCostPercent)

			if outDir == "" {
				if err := output.GenerateReport(results, format, cmd.OutOrStdout()); err != nil {
					return err
				}
			} else {
				path, err := output.GenerateReportFile(results, format, outDir)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			}

			logging.LogOperation(a.logger, "scenarios_compared",
				slog.String("config", configFile),
				slog.Int("scenarios", len(results.Scenarios)),
				slog.Duration("duration", time.Since(start)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario configuration file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (see 'moneysaver formats')")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "write a timestamped report into this directory instead of stdout")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
