package output

import (
	"encoding/json"

	"github.com/moneysaver/offset-calculator/internal/domain"
)

// JSONFormatter serializes the scenario comparison as pretty-printed JSON.
// Undefined values are written as null.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
