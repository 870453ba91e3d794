package calculation

import (
	"context"
	"fmt"
	"math"

	"github.com/moneysaver/offset-calculator/internal/domain"
	"github.com/moneysaver/offset-calculator/pkg/dateutil"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// CalculationEngine runs calculations for configured scenarios
type CalculationEngine struct {
	OpportunityCostPercent float64
	Logger                 Logger
}

// NewCalculationEngine creates an engine using the default opportunity cost
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		OpportunityCostPercent: domain.DefaultOpportunityCostPercent,
		Logger:                 NopLogger{},
	}
}

// NewCalculationEngineWithConfig creates an engine from configured assumptions
func NewCalculationEngineWithConfig(assumptions domain.Assumptions) *CalculationEngine {
	engine := NewCalculationEngine()
	engine.OpportunityCostPercent = assumptions.OpportunityCost()
	return engine
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate runs Compute with the engine's opportunity cost and logs degenerate outcomes.
func (ce *CalculationEngine) Calculate(in domain.LoanInputs) domain.CalculationResult {
	res := Compute(in, ce.OpportunityCostPercent)
	switch {
	case !res.Defined():
		ce.Logger.Debugf("inputs rejected: principal=%g rate=%g tenure=%g", in.Principal, in.AnnualRatePercent, in.TenureYears)
	case !res.NewPeriods.Valid() || !res.OriginalPeriods.Valid():
		ce.Logger.Warnf("EMI %.2f cannot amortize the balance at %g%% (principal=%g offset=%g)",
			res.EMI.OrElse(0), in.AnnualRatePercent, in.Principal, in.Offset)
	default:
		ce.Logger.Debugf("computed emi=%.2f payoff_years=%.4f net_savings=%.2f",
			res.EMI.OrElse(0), res.PayoffYears.OrElse(0), res.NetSavings.OrElse(0))
	}
	return res
}

// RunScenario evaluates a single scenario, including its optional offset sweep
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	inputs := scenario.Inputs()
	summary := &domain.ScenarioSummary{
		Name:                   scenario.Name,
		Inputs:                 inputs,
		OpportunityCostPercent: ce.OpportunityCostPercent,
		Result:                 ce.Calculate(inputs),
		StartDate:              scenario.StartDate,
	}

	if scenario.StartDate != nil {
		if periods, ok := summary.Result.NewPeriods.Get(); ok {
			payoff := dateutil.AddMonths(*scenario.StartDate, int(math.Ceil(periods)))
			summary.PayoffDate = &payoff
		}
	}

	if scenario.Sweep != nil {
		points, err := OffsetSweep(inputs, RangeFromSpec(*scenario.Sweep), ce.OpportunityCostPercent)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		summary.Sweep = points
		ce.Logger.Debugf("scenario %q: swept %d offsets", scenario.Name, len(points))
	}

	return summary, nil
}

// RunScenarios evaluates every scenario of the configuration in order
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	comparison := &domain.ScenarioComparison{
		GeneratedAt:            nowFunc(),
		OpportunityCostPercent: ce.OpportunityCostPercent,
		Grouping:               config.Assumptions.Grouping,
		Scenarios:              make([]domain.ScenarioSummary, 0, len(config.Scenarios)),
	}

	for i := range config.Scenarios {
		summary, err := ce.RunScenario(ctx, &config.Scenarios[i])
		if err != nil {
			ce.Logger.Errorf("scenario %d failed: %v", i, err)
			return nil, fmt.Errorf("failed to run scenario %d: %w", i, err)
		}
		comparison.Scenarios = append(comparison.Scenarios, *summary)
	}

	ce.Logger.Infof("evaluated %d scenarios", len(comparison.Scenarios))
	return comparison, nil
}
