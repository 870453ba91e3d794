package main

import (
	"fmt"
	"log/slog"

	"github.com/moneysaver/offset-calculator/internal/calculation"
	"github.com/moneysaver/offset-calculator/internal/domain"
	"github.com/moneysaver/offset-calculator/internal/logging"
	"github.com/moneysaver/offset-calculator/internal/output"
	money "github.com/moneysaver/offset-calculator/pkg/decimal"
	"github.com/spf13/cobra"
)

func newSweepCmd(a *app) *cobra.Command {
	var flags loanFlags
	var from, to, step string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate a range of offset balances for one loan",
		Example: `  moneysaver sweep --principal 1,00,00,000 --rate 7.5 --tenure 20 --from 0 --to 10,00,000 --step 1,00,000`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.inputs()
			if err != nil {
				return err
			}
			var sr calculation.SweepRange
			for _, b := range []struct {
				name  string
				value string
				dst   *float64
			}{{"from", from, &sr.From}, {"to", to, &sr.To}, {"step", step, &sr.Step}} {
				m, err := money.ParseGrouped(b.value)
				if err != nil {
					return fmt.Errorf("--%s: %w", b.name, err)
				}
				*b.dst = m.InexactFloat64()
			}

			points, err := calculation.OffsetSweep(in, sr, flags.opportunityCost)
			if err != nil {
				return err
			}
			if best, ok := calculation.BestSweepPoint(points); ok {
				logging.LogOperation(a.logger, "sweep_best_offset",
					slog.Float64("offset", best.Offset),
					slog.Float64("net_savings", best.Result.NetSavings.OrElse(0)))
			} else {
				logging.LogOperation(a.logger, "sweep_no_defined_savings", slog.Int("points", len(points)))
			}

			summary := domain.ScenarioSummary{
				Name:                   "Loan",
				Inputs:                 in,
				OpportunityCostPercent: flags.opportunityCost,
				Sweep:                  points,
			}
			if len(points) > 0 {
				// headline figures are those of the last (largest) offset
				last := points[len(points)-1]
				summary.Inputs.Offset = last.Offset
				summary.Result = last.Result
			}
			return output.GenerateReport(flags.comparison(summary), flags.format, cmd.OutOrStdout())
		},
	}
	flags.register(cmd, "detailed-csv")
	cmd.Flags().StringVar(&from, "from", "0", "first offset balance")
	cmd.Flags().StringVar(&to, "to", "", "last offset balance")
	cmd.Flags().StringVar(&step, "step", "", "offset increment")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("step")
	return cmd
}
