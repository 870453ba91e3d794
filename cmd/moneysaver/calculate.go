package main

import (
	"fmt"
	"time"

	"github.com/moneysaver/offset-calculator/internal/calculation"
	"github.com/moneysaver/offset-calculator/internal/domain"
	"github.com/moneysaver/offset-calculator/internal/logging"
	"github.com/moneysaver/offset-calculator/internal/output"
	money "github.com/moneysaver/offset-calculator/pkg/decimal"
	"github.com/spf13/cobra"
)

// loanFlags are the loan inputs shared by calculate and sweep. Amounts are
// strings so grouped values like 1,00,00,000 can be typed as displayed.
type loanFlags struct {
	principal       string
	rate            float64
	tenure          float64
	opportunityCost float64
	grouping        string
	format          string
}

func (f *loanFlags) register(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().StringVar(&f.principal, "principal", "", "loan principal, grouping separators allowed")
	cmd.Flags().Float64Var(&f.rate, "rate", 0, "annual interest rate in percent")
	cmd.Flags().Float64Var(&f.tenure, "tenure", 0, "loan tenure in years")
	cmd.Flags().Float64Var(&f.opportunityCost, "opportunity-cost", domain.DefaultOpportunityCostPercent, "annual return the offset funds would otherwise earn, in percent")
	cmd.Flags().StringVar(&f.grouping, "grouping", "indian", "digit grouping for amounts (indian, western)")
	cmd.Flags().StringVar(&f.format, "format", defaultFormat, "output format (see 'moneysaver formats')")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("tenure")
}

func (f *loanFlags) inputs() (domain.LoanInputs, error) {
	principal, err := money.ParseGrouped(f.principal)
	if err != nil {
		return domain.LoanInputs{}, fmt.Errorf("--principal: %w", err)
	}
	if !(f.opportunityCost >= 0 && f.opportunityCost <= 100) {
		return domain.LoanInputs{}, fmt.Errorf("--opportunity-cost must be between 0 and 100, got %g", f.opportunityCost)
	}
	if _, err := money.ParseGrouping(f.grouping); err != nil {
		return domain.LoanInputs{}, fmt.Errorf("--grouping: %w", err)
	}
	return domain.LoanInputs{
		Principal:         principal.InexactFloat64(),
		AnnualRatePercent: f.rate,
		TenureYears:       f.tenure,
	}, nil
}

func (f *loanFlags) comparison(summary domain.ScenarioSummary) *domain.ScenarioComparison {
	return &domain.ScenarioComparison{
		GeneratedAt:            time.Now(),
		OpportunityCostPercent: f.opportunityCost,
		Grouping:               f.grouping,
		Scenarios:              []domain.ScenarioSummary{summary},
		Assumptions:            output.GenerateAssumptions(f.opportunityCost),
	}
}

func newCalculateCmd(a *app) *cobra.Command {
	var flags loanFlags
	var offset string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the savings of a single offset balance",
		Example: `  moneysaver calculate --principal 1,00,00,000 --rate 7.5 --tenure 20 --offset 1,00,000
  moneysaver calculate --principal 5000000 --rate 9 --tenure 15 --offset 1000000 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.inputs()
			if err != nil {
				return err
			}
			if offset != "" {
				m, err := money.ParseGrouped(offset)
				if err != nil {
					return fmt.Errorf("--offset: %w", err)
				}
				in.Offset = m.InexactFloat64()
			}

			engine := calculation.NewCalculationEngine()
			engine.OpportunityCostPercent = flags.opportunityCost
			engine.SetLogger(logging.NewCalcLogger(a.logger))

			summary := domain.ScenarioSummary{
				Name:                   "Loan",
				Inputs:                 in,
				OpportunityCostPercent: flags.opportunityCost,
				Result:                 engine.Calculate(in),
			}
			return output.GenerateReport(flags.comparison(summary), flags.format, cmd.OutOrStdout())
		},
	}
	flags.register(cmd, "console")
	cmd.Flags().StringVar(&offset, "offset", "0", "offset balance held against the loan")
	return cmd
}
