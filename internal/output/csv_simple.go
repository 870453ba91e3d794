package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/moneysaver/offset-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
// Undefined values are written as empty cells.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Principal", "AnnualRatePercent", "TenureYears", "Offset", "EMI", "PayoffYears", "OriginalInterest", "NewInterest", "InterestSaved", "OpportunityCost", "NetSavings", "EMIsSavedMonths", "EffectiveRatePercent", "PayoffDate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		r := sc.Result
		payoff := ""
		if sc.PayoffDate != nil {
			payoff = sc.PayoffDate.Format("2006-01-02")
		}
		row := []string{
			sc.Name,
			floatToString(sc.Inputs.Principal),
			floatToString(sc.Inputs.AnnualRatePercent),
			floatToString(sc.Inputs.TenureYears),
			floatToString(sc.Inputs.Offset),
			rawAmount(r.EMI),
			rawAmount(r.PayoffYears),
			rawAmount(r.OriginalInterest),
			rawAmount(r.NewInterest),
			rawAmount(r.InterestSaved),
			rawAmount(r.OpportunityCost),
			rawAmount(r.NetSavings),
			rawMonths(r.EMIsSavedMonths),
			rawAmount(r.EffectiveRatePercent),
			payoff,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
