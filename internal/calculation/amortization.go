package calculation

import (
	"math"

	"github.com/moneysaver/offset-calculator/internal/domain"
)

// MonthlyRate converts an annual percentage rate into a monthly fraction.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// maxMonths is the first float64 month count that no longer fits in an int.
const maxMonths = float64(math.MaxInt)

// TenureMonths converts a tenure in years into a whole number of months,
// saturating at math.MaxInt for tenures too long to count.
func TenureMonths(tenureYears float64) int {
	m := math.Round(tenureYears * 12)
	switch {
	case math.IsNaN(m) || m <= 0:
		return 0
	case m >= maxMonths:
		return math.MaxInt
	}
	return int(m)
}

// EMI calculates the equal monthly installment that amortizes principal over
// n months at the monthly rate r. A zero rate falls back to a flat split.
func EMI(principal, r float64, n int) float64 {
	if r == 0 || 1+r == 1 {
		return principal / float64(n)
	}
	return r * principal / (1 - math.Pow(1+r, -float64(n)))
}

// Periods solves for the number of monthly payments of emi needed to fully
// amortize pv at monthly rate r. It returns None when the payment can never
// retire the balance.
func Periods(pv, emi, r float64) domain.Optional[float64] {
	if !finite(pv) || !finite(emi) || !finite(r) || emi <= 0 {
		return domain.None[float64]()
	}
	if pv == 0 {
		return domain.Some(0.0)
	}
	if r == 0 || 1+r == 1 {
		return someFinite(pv / emi)
	}
	denom := 1 - r*pv/emi
	if denom <= 0 {
		return domain.None[float64]()
	}
	return someFinite(-math.Log(denom) / math.Log(1+r))
}

// OpportunityCost is the return offset would have earned at the given annual
// rate, compounded over years. Only positive offsets and horizons accrue cost.
func OpportunityCost(offset, opportunityCostPercent, years float64) float64 {
	if !finite(offset) || !finite(years) || offset <= 0 || years <= 0 {
		return 0
	}
	return offset * (math.Pow(1+opportunityCostPercent/100, years) - 1)
}

// BreakEvenOpportunityRate returns the annual return at which investing the
// offset instead would exactly cancel the interest saved.
func BreakEvenOpportunityRate(interestSaved, offset, years float64) domain.Optional[float64] {
	if !finite(interestSaved) || !finite(offset) || !finite(years) || offset <= 0 || years <= 0 {
		return domain.None[float64]()
	}
	growth := interestSaved/offset + 1
	if growth <= 0 {
		return domain.None[float64]()
	}
	return someFinite((math.Pow(growth, 1/years) - 1) * 100)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
