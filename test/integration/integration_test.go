package integration

import (
	"context"
	"testing"
	"time"

	"github.com/moneysaver/offset-calculator/internal/calculation"
	"github.com/moneysaver/offset-calculator/internal/config"
	"github.com/moneysaver/offset-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = "../testdata/example_config.yaml"

func loadExample(t *testing.T) *domain.Configuration {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)
	return cfg
}

func runExample(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	cfg := loadExample(t)
	engine := calculation.NewCalculationEngineWithConfig(cfg.Assumptions)
	results, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	return results
}

func TestFullCalculation(t *testing.T) {
	results := runExample(t)
	require.Len(t, results.Scenarios, 3)
	assert.Equal(t, "indian", results.Grouping)
	assert.InDelta(t, domain.DefaultOpportunityCostPercent, results.OpportunityCostPercent, 1e-12)

	// Without an offset nothing is saved and the loan runs its full term.
	base := results.Scenarios[0].Result
	assert.InDelta(t, 80559.31935518021, base.EMI.OrElse(0), 1e-6)
	assert.InDelta(t, 20, base.PayoffYears.OrElse(0), 1e-6)
	assert.InDelta(t, 0, base.NetSavings.OrElse(-1), 1e-6)
	assert.Equal(t, 0, base.EMIsSavedMonths.OrElse(-1))

	offset := results.Scenarios[1]
	assert.InDelta(t, 175528.10416162797, offset.Result.NetSavings.OrElse(0), 1e-6)
	assert.InDelta(t, 19.544946848017258, offset.Result.PayoffYears.OrElse(0), 1e-9)
	assert.Equal(t, 5, offset.Result.EMIsSavedMonths.OrElse(0))
	assert.InDelta(t, 7.41019259068518, offset.Result.EffectiveRatePercent.OrElse(0), 1e-9)
	assert.Len(t, offset.Sweep, 11)

	require.NotNil(t, offset.PayoffDate)
	assert.Equal(t, 2044, offset.PayoffDate.Year())
	assert.Equal(t, time.November, offset.PayoffDate.Month())

	personal := results.Scenarios[2].Result
	assert.InDelta(t, 1407798.2690769073, personal.NetSavings.OrElse(0), 1e-6)
	assert.Equal(t, 60, personal.EMIsSavedMonths.OrElse(0))
	assert.Nil(t, results.Scenarios[2].PayoffDate)
}

func TestSweepIsMonotonic(t *testing.T) {
	results := runExample(t)
	sweep := results.Scenarios[1].Sweep
	require.NotEmpty(t, sweep)

	prev := sweep[0].Result.PayoffYears.OrElse(0)
	for _, p := range sweep[1:] {
		years := p.Result.PayoffYears.OrElse(0)
		assert.LessOrEqual(t, years, prev, "payoff should not lengthen as the offset grows (offset %g)", p.Offset)
		prev = years
	}

	best, ok := calculation.BestSweepPoint(sweep)
	require.True(t, ok)
	assert.InDelta(t, 1_000_000, best.Offset, 1e-9)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Scenarios[0].Principal = cfg.Scenarios[0].Principal.Neg()
	assert.Error(t, parser.ValidateConfiguration(cfg))

	_, err = parser.LoadFromFile("../testdata/does_not_exist.yaml")
	assert.Error(t, err)
}

func TestExampleConfigurationRuns(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(cfg))

	results, err := calculation.NewCalculationEngineWithConfig(cfg.Assumptions).RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results.Scenarios, len(cfg.Scenarios))
	for _, s := range results.Scenarios {
		assert.True(t, s.Result.Defined(), s.Name)
	}
}
