package output

import (
	"time"

	calc "github.com/moneysaver/offset-calculator/internal/calculation"
	"github.com/moneysaver/offset-calculator/internal/domain"
)

func summaryFor(name string, in domain.LoanInputs) domain.ScenarioSummary {
	return domain.ScenarioSummary{
		Name:                   name,
		Inputs:                 in,
		OpportunityCostPercent: domain.DefaultOpportunityCostPercent,
		Result:                 calc.Compute(in, domain.DefaultOpportunityCostPercent),
	}
}

func buildTestComparison() *domain.ScenarioComparison {
	home := domain.LoanInputs{Principal: 10_000_000, AnnualRatePercent: 7.5, TenureYears: 20, Offset: 100_000}
	big := domain.LoanInputs{Principal: 5_000_000, AnnualRatePercent: 9, TenureYears: 15, Offset: 1_000_000}

	a := summaryFor("A", home)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	payoff := time.Date(2044, 8, 1, 0, 0, 0, 0, time.UTC)
	a.StartDate, a.PayoffDate = &start, &payoff

	b := summaryFor("B", big)
	points, err := calc.OffsetSweep(big, calc.SweepRange{From: 0, To: 1_000_000, Step: 500_000}, domain.DefaultOpportunityCostPercent)
	if err != nil {
		panic(err)
	}
	b.Sweep = points

	return &domain.ScenarioComparison{
		GeneratedAt:            time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC),
		OpportunityCostPercent: domain.DefaultOpportunityCostPercent,
		Grouping:               "indian",
		Scenarios:              []domain.ScenarioSummary{b, a},
		Assumptions:            GenerateAssumptions(domain.DefaultOpportunityCostPercent),
	}
}

func buildInvalidComparison() *domain.ScenarioComparison {
	return &domain.ScenarioComparison{
		OpportunityCostPercent: domain.DefaultOpportunityCostPercent,
		Scenarios:              []domain.ScenarioSummary{summaryFor("Empty", domain.LoanInputs{Principal: 0, AnnualRatePercent: 7.5, TenureYears: 20})},
	}
}
