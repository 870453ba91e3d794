package dateutil

import (
	"fmt"
	"math"
	"time"
)

// AddMonths adds a number of months to a date, clamping the day to the end of
// the target month (Jan 31 + 1 month is Feb 28/29, not Mar 3).
func AddMonths(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, date.Location())
	if last := DaysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	hour, minute, sec := date.Clock()
	return time.Date(target.Year(), target.Month(), day, hour, minute, sec, date.Nanosecond(), date.Location())
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// YearsMonths splits a fractional number of years into whole years and the
// remaining months, rounded to the nearest month. Negative input yields 0, 0.
func YearsMonths(years float64) (int, int) {
	if math.IsNaN(years) || math.IsInf(years, 0) || years <= 0 {
		return 0, 0
	}
	total := int(math.Round(years * 12))
	return total / 12, total % 12
}

// FormatYearsMonths renders a fractional number of years as "19 years 7 months".
func FormatYearsMonths(years float64) string {
	y, m := YearsMonths(years)
	switch {
	case y == 0 && m == 0:
		return "0 months"
	case m == 0:
		return plural(y, "year")
	case y == 0:
		return plural(m, "month")
	}
	return plural(y, "year") + " " + plural(m, "month")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
