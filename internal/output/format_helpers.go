package output

import (
	"fmt"
	"math"
	"time"

	"github.com/moneysaver/offset-calculator/internal/domain"
	money "github.com/moneysaver/offset-calculator/pkg/decimal"
	"github.com/moneysaver/offset-calculator/pkg/dateutil"
)

// Undefined is shown in place of any value the calculation could not produce.
const Undefined = "-"

// FormatAmount renders an amount with two decimals and digit grouping.
func FormatAmount(v domain.Optional[float64], g money.Grouping) string {
	f, ok := v.Get()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return Undefined
	}
	return money.NewMoney(f).FormatGrouped(g)
}

// FormatCurrency is FormatAmount with a rupee sign.
func FormatCurrency(v domain.Optional[float64], g money.Grouping) string {
	s := FormatAmount(v, g)
	if s == Undefined {
		return s
	}
	return "₹" + s
}

// FormatPercentage formats a percentage with 2 decimals.
func FormatPercentage(v domain.Optional[float64]) string {
	f, ok := v.Get()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return Undefined
	}
	return fmt.Sprintf("%.2f%%", f)
}

// FormatYears formats a year count with 2 decimals.
func FormatYears(v domain.Optional[float64]) string {
	f, ok := v.Get()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return Undefined
	}
	return fmt.Sprintf("%.2f", f)
}

// FormatYearsMonths renders a year count as "19 years 7 months".
func FormatYearsMonths(v domain.Optional[float64]) string {
	f, ok := v.Get()
	if !ok {
		return Undefined
	}
	return dateutil.FormatYearsMonths(f)
}

func FormatMonths(v domain.Optional[int]) string {
	n, ok := v.Get()
	if !ok {
		return Undefined
	}
	return intToString(n)
}

func FormatDate(t *time.Time) string {
	if t == nil {
		return Undefined
	}
	return t.Format("Jan 2006")
}

// groupingOf resolves the grouping of a comparison, falling back to Indian
// grouping for unknown names.
func groupingOf(results *domain.ScenarioComparison) money.Grouping {
	g, err := money.ParseGrouping(results.Grouping)
	if err != nil {
		return money.GroupingIndian
	}
	return g
}

// rawAmount renders an optional value for machine readable outputs: plain
// two decimals, empty when undefined.
func rawAmount(v domain.Optional[float64]) string {
	f, ok := v.Get()
	if !ok {
		return ""
	}
	return floatToString(f)
}

func rawMonths(v domain.Optional[int]) string {
	n, ok := v.Get()
	if !ok {
		return ""
	}
	return intToString(n)
}
