package output

import (
	"bytes"
	"encoding/csv"

	"github.com/moneysaver/offset-calculator/internal/domain"
)

// CSVDetailedExporter writes one row per offset of every scenario. Scenarios
// without a sweep contribute a single row for their configured offset.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Point", "Offset", "PayoffYears", "NewPeriods", "InterestSaved", "OpportunityCost", "NetSavings", "EMIsSavedMonths", "EffectiveRatePercent"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		points := sc.Sweep
		if len(points) == 0 {
			points = []domain.SweepPoint{{Offset: sc.Inputs.Offset, Result: sc.Result}}
		}
		for i, p := range points {
			r := p.Result
			row := []string{
				sc.Name,
				intToString(i),
				floatToString(p.Offset),
				rawAmount(r.PayoffYears),
				rawAmount(r.NewPeriods),
				rawAmount(r.InterestSaved),
				rawAmount(r.OpportunityCost),
				rawAmount(r.NetSavings),
				rawMonths(r.EMIsSavedMonths),
				rawAmount(r.EffectiveRatePercent),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
