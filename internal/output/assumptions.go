package output

import (
	"fmt"

	"github.com/moneysaver/offset-calculator/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = GenerateAssumptions(domain.DefaultOpportunityCostPercent)

// GenerateAssumptions creates the assumptions list for the given opportunity cost
func GenerateAssumptions(opportunityCostPercent float64) []string {
	return []string{
		"Fixed rate loan repaid by equal monthly installments; tenure rounded to whole months",
		"The EMI stays unchanged when the offset is applied; the loan is repaid sooner instead",
		"The offset balance is held for the whole revised term and earns no interest",
		fmt.Sprintf("Offset funds would otherwise earn %.2f%% a year, compounded annually", opportunityCostPercent),
		"Effective rate is a linear approximation: rate - net savings / (principal x years) x 100",
	}
}
