package calculation

import (
	"math"

	"github.com/moneysaver/offset-calculator/internal/domain"
)

// ValidInputs reports whether principal, rate and tenure can be used for a
// calculation. The rate may be zero; principal and tenure must be positive and
// the tenure must cover at least one whole month.
func ValidInputs(in domain.LoanInputs) bool {
	if !finite(in.Principal) || in.Principal <= 0 {
		return false
	}
	if !finite(in.AnnualRatePercent) || in.AnnualRatePercent < 0 {
		return false
	}
	if !finite(in.TenureYears) || in.TenureYears <= 0 {
		return false
	}
	return TenureMonths(in.TenureYears) >= 1
}

// Compute evaluates a loan with an offset balance. It never fails: inputs that
// cannot be used produce a result with every field undefined, and a periods
// solve that cannot be fulfilled leaves only its dependent fields undefined.
func Compute(in domain.LoanInputs, opportunityCostPercent float64) domain.CalculationResult {
	if !ValidInputs(in) {
		return domain.CalculationResult{}
	}

	offset := in.Offset
	if !finite(offset) || offset < 0 {
		offset = 0
	}

	r := MonthlyRate(in.AnnualRatePercent)
	n := TenureMonths(in.TenureYears)
	emi := EMI(in.Principal, r, n)
	if !finite(emi) {
		return domain.CalculationResult{}
	}

	res := domain.CalculationResult{
		EMI:    domain.Some(emi),
		Months: domain.Some(n),
	}

	principalAfter := math.Max(0, in.Principal-offset)
	nOrig := Periods(in.Principal, emi, r)
	nNew := Periods(principalAfter, emi, r)
	res.OriginalPeriods = nOrig
	res.NewPeriods = nNew

	origPeriods, origOK := nOrig.Get()
	if origOK {
		res.OriginalInterest = someFinite(emi*origPeriods - in.Principal)
	}

	newPeriods, newOK := nNew.Get()
	if !newOK {
		return res
	}
	res.NewInterest = someFinite(emi*newPeriods - principalAfter)

	yearsNew := newPeriods / 12
	res.PayoffYears = domain.Some(yearsNew)
	res.OpportunityCost = someFinite(OpportunityCost(offset, opportunityCostPercent, yearsNew))

	if origOK {
		if saved, ok := monthsBetween(origPeriods, newPeriods); ok {
			res.EMIsSavedMonths = domain.Some(saved)
		}
	}

	origInterest, ok1 := res.OriginalInterest.Get()
	newInterest, ok2 := res.NewInterest.Get()
	if !ok1 || !ok2 {
		return res
	}
	interestSaved, ok := someFinite(origInterest - newInterest).Get()
	if !ok {
		return res
	}
	res.InterestSaved = domain.Some(interestSaved)
	res.BreakEvenOpportunityRate = BreakEvenOpportunityRate(interestSaved, offset, yearsNew)

	oppCost, ok := res.OpportunityCost.Get()
	if !ok {
		return res
	}
	netSavings, ok := someFinite(interestSaved - oppCost).Get()
	if !ok {
		return res
	}
	res.NetSavings = domain.Some(netSavings)

	if yearsNew > 0 {
		res.EffectiveRatePercent = someFinite(in.AnnualRatePercent - (netSavings/(in.Principal*yearsNew))*100)
	}

	return res
}

// someFinite wraps v, or returns None when v overflowed or is NaN.
func someFinite(v float64) domain.Optional[float64] {
	if !finite(v) {
		return domain.None[float64]()
	}
	return domain.Some(v)
}

// monthsBetween truncates the difference of two period counts to whole
// months. ok is false when the difference does not fit in an int.
func monthsBetween(orig, updated float64) (int, bool) {
	d := math.Trunc(orig - updated)
	if !finite(d) || math.Abs(d) >= maxMonths {
		return 0, false
	}
	return int(d), true
}
