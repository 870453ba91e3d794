package output

import (
	calc "github.com/moneysaver/offset-calculator/internal/calculation"
	"github.com/moneysaver/offset-calculator/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName string
	NetSavings   domain.Optional[float64]
	PayoffYears  domain.Optional[float64]
	// BestOffset is set when the scenario carries a sweep.
	BestOffset domain.Optional[float64]
}

// AnalyzeScenarios picks the scenario with the highest defined net savings.
// The earlier scenario wins a tie; scenarios without defined savings are skipped.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	var rec Recommendation
	var best float64
	for _, sc := range results.Scenarios {
		net, ok := sc.Result.NetSavings.Get()
		if !ok {
			continue
		}
		if rec.ScenarioName == "" || net > best {
			best = net
			rec = Recommendation{
				ScenarioName: sc.Name,
				NetSavings:   sc.Result.NetSavings,
				PayoffYears:  sc.Result.PayoffYears,
			}
			if point, found := calc.BestSweepPoint(sc.Sweep); found {
				rec.BestOffset = domain.Some(point.Offset)
			}
		}
	}
	return rec
}
