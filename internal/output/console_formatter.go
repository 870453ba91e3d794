package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/moneysaver/offset-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	g := groupingOf(results)
	fmt.Fprintln(&buf, "LOAN OFFSET SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Opportunity cost: %.2f%%\n", results.OpportunityCostPercent)
	fmt.Fprintln(&buf)
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		r := sc.Result
		fmt.Fprintf(&buf, "%s: EMI=%s Years=%s EMIsSaved=%s\n",
			sc.Name,
			FormatAmount(r.EMI, g),
			FormatYears(r.PayoffYears),
			FormatMonths(r.EMIsSavedMonths),
		)
		fmt.Fprintf(&buf, "  InterestSaved=%s NetSavings=%s EffectiveRate=%s\n",
			FormatAmount(r.InterestSaved, g),
			FormatAmount(r.NetSavings, g),
			FormatPercentage(r.EffectiveRatePercent),
		)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (net %s)\n", rec.ScenarioName, FormatAmount(rec.NetSavings, g))
	}
	return buf.Bytes(), nil
}
