package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/moneysaver/offset-calculator/internal/domain"
	money "github.com/moneysaver/offset-calculator/pkg/decimal"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	g := groupingOf(results)

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "LOAN OFFSET SAVINGS ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, scenario := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, scenario.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		writeScenarioDetail(&buf, scenario, g)
		if len(scenario.Sweep) > 0 {
			writeSweepTable(&buf, scenario.Sweep, g)
		}
		fmt.Fprintln(&buf)
	}

	if len(results.Scenarios) > 1 {
		writeComparisonTable(&buf, results, g)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "RECOMMENDATION")
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintf(&buf, "%s gives the highest net savings: %s\n", rec.ScenarioName, FormatCurrency(rec.NetSavings, g))
		if rec.BestOffset.Valid() {
			fmt.Fprintf(&buf, "Best swept offset: %s\n", FormatCurrency(rec.BestOffset, g))
		}
	}
	return buf.Bytes(), nil
}

func writeScenarioDetail(w io.Writer, sc domain.ScenarioSummary, g money.Grouping) {
	r := sc.Result
	in := sc.Inputs
	fmt.Fprintln(w, "LOAN:")
	fmt.Fprintf(w, "  Principal:                %s\n", FormatCurrency(domain.Some(in.Principal), g))
	fmt.Fprintf(w, "  Annual Rate:              %s\n", FormatPercentage(domain.Some(in.AnnualRatePercent)))
	fmt.Fprintf(w, "  Tenure:                   %s\n", FormatYearsMonths(domain.Some(in.TenureYears)))
	fmt.Fprintf(w, "  Offset Balance:           %s\n", FormatCurrency(domain.Some(in.Offset), g))
	fmt.Fprintf(w, "  Monthly EMI:              %s\n", FormatCurrency(r.EMI, g))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "WITH OFFSET:")
	fmt.Fprintf(w, "  Paid Off In:              %s years (%s)\n", FormatYears(r.PayoffYears), FormatYearsMonths(r.PayoffYears))
	if sc.PayoffDate != nil {
		fmt.Fprintf(w, "  Payoff Date:              %s\n", FormatDate(sc.PayoffDate))
	}
	fmt.Fprintf(w, "  EMIs Saved:               %s\n", FormatMonths(r.EMIsSavedMonths))
	fmt.Fprintf(w, "  Original Interest:        %s\n", FormatCurrency(r.OriginalInterest, g))
	fmt.Fprintf(w, "  Interest With Offset:     %s\n", FormatCurrency(r.NewInterest, g))
	fmt.Fprintf(w, "  Interest Saved:           %s\n", FormatCurrency(r.InterestSaved, g))
	fmt.Fprintf(w, "  Opportunity Cost (%.2f%%): %s\n", sc.OpportunityCostPercent, FormatCurrency(r.OpportunityCost, g))
	fmt.Fprintf(w, "  Net Savings:              %s\n", FormatCurrency(r.NetSavings, g))
	fmt.Fprintf(w, "  Effective Rate:           %s\n", FormatPercentage(r.EffectiveRatePercent))
	fmt.Fprintf(w, "  Break-even Return:        %s\n", FormatPercentage(r.BreakEvenOpportunityRate))
	fmt.Fprintln(w)
	fmt.Fprintln(w, Summary(r, g))
}

func writeSweepTable(w io.Writer, points []domain.SweepPoint, g money.Grouping) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "OFFSET SWEEP:")
	fmt.Fprintf(w, "  %-18s %-12s %-18s %-18s %s\n", "Offset", "Years", "Interest Saved", "Net Savings", "Eff. Rate")
	for _, p := range points {
		fmt.Fprintf(w, "  %-18s %-12s %-18s %-18s %s\n",
			FormatAmount(domain.Some(p.Offset), g),
			FormatYears(p.Result.PayoffYears),
			FormatAmount(p.Result.InterestSaved, g),
			FormatAmount(p.Result.NetSavings, g),
			FormatPercentage(p.Result.EffectiveRatePercent),
		)
	}
}

func writeComparisonTable(w io.Writer, results *domain.ScenarioComparison, g money.Grouping) {
	fmt.Fprintln(w, "SCENARIO COMPARISON")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "%-32s %-12s %-18s %s\n", "Scenario", "Years", "Net Savings", "Eff. Rate")
	for _, sc := range results.Scenarios {
		fmt.Fprintf(w, "%-32s %-12s %-18s %s\n",
			truncateName(sc.Name, 32),
			FormatYears(sc.Result.PayoffYears),
			FormatAmount(sc.Result.NetSavings, g),
			FormatPercentage(sc.Result.EffectiveRatePercent),
		)
	}
	fmt.Fprintln(w)
}

func truncateName(name string, n int) string {
	r := []rune(name)
	if len(r) <= n {
		return name
	}
	return string(r[:n-1]) + "…"
}
