package output

import (
	"fmt"

	"github.com/moneysaver/offset-calculator/internal/domain"
	money "github.com/moneysaver/offset-calculator/pkg/decimal"
)

// Prompt is shown instead of a summary when there is nothing to summarise.
const Prompt = "Enter your loan details and run the calculation to see your savings."

// Summary describes the result in one sentence, or returns Prompt when the
// payoff horizon or the net savings is undefined.
func Summary(r domain.CalculationResult, g money.Grouping) string {
	years, okYears := r.PayoffYears.Get()
	_, okNet := r.NetSavings.Get()
	if !okYears || !okNet {
		return Prompt
	}
	return fmt.Sprintf("With this offset the loan is paid off in %.2f years and you save %s net.",
		years, FormatAmount(r.NetSavings, g))
}

// DisplayResult is the rendered form of a CalculationResult.
type DisplayResult struct {
	EMI                  string `json:"emi"`
	PayoffYears          string `json:"payoff_years"`
	PayoffDuration       string `json:"payoff_duration"`
	InterestSaved        string `json:"interest_saved"`
	NetSavings           string `json:"net_savings"`
	EMIsSavedMonths      string `json:"emis_saved_months"`
	EffectiveRatePercent string `json:"effective_rate_percent"`
	OpportunityCost      string `json:"opportunity_cost"`
}

// Display renders every headline field of r.
func Display(r domain.CalculationResult, g money.Grouping) DisplayResult {
	return DisplayResult{
		EMI:                  FormatAmount(r.EMI, g),
		PayoffYears:          FormatYears(r.PayoffYears),
		PayoffDuration:       FormatYearsMonths(r.PayoffYears),
		InterestSaved:        FormatAmount(r.InterestSaved, g),
		NetSavings:           FormatAmount(r.NetSavings, g),
		EMIsSavedMonths:      FormatMonths(r.EMIsSavedMonths),
		EffectiveRatePercent: FormatPercentage(r.EffectiveRatePercent),
		OpportunityCost:      FormatAmount(r.OpportunityCost, g),
	}
}
