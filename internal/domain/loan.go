package domain

// DefaultOpportunityCostPercent is the annual return the offset funds are
// assumed to forgo by sitting against the loan instead of being invested.
const DefaultOpportunityCostPercent = 5.1

// LoanInputs are the four user supplied values of a calculation.
type LoanInputs struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureYears       float64 `json:"tenure_years"`
	Offset            float64 `json:"offset"`
}

// CalculationResult is the outcome of a single calculation. Every field is
// independently optional: a failed periods-solve leaves EMI defined while the
// fields that depend on the solve stay undefined.
type CalculationResult struct {
	EMI                  Optional[float64] `json:"emi"`
	PayoffYears          Optional[float64] `json:"payoff_years"`
	InterestSaved        Optional[float64] `json:"interest_saved"`
	NetSavings           Optional[float64] `json:"net_savings"`
	EMIsSavedMonths      Optional[int]     `json:"emis_saved_months"`
	EffectiveRatePercent Optional[float64] `json:"effective_rate_percent"`

	// Intermediate values surfaced for reports.
	Months                   Optional[int]     `json:"months"`
	OriginalPeriods          Optional[float64] `json:"original_periods"`
	NewPeriods               Optional[float64] `json:"new_periods"`
	OriginalInterest         Optional[float64] `json:"original_interest"`
	NewInterest              Optional[float64] `json:"new_interest"`
	OpportunityCost          Optional[float64] `json:"opportunity_cost"`
	BreakEvenOpportunityRate Optional[float64] `json:"break_even_opportunity_rate"`
}

// Defined reports whether the calculation passed input validation.
func (r CalculationResult) Defined() bool {
	return r.EMI.Valid()
}
