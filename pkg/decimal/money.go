package decimal

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// Grouping selects how the integer digits of an amount are separated
type Grouping string

const (
	// GroupingIndian groups the last three digits, then pairs: 1,00,00,000
	GroupingIndian Grouping = "indian"
	// GroupingWestern groups in threes: 10,000,000
	GroupingWestern Grouping = "western"
)

// ParseGrouping resolves a grouping name, defaulting to GroupingIndian.
func ParseGrouping(name string) (Grouping, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(GroupingIndian):
		return GroupingIndian, nil
	case string(GroupingWestern):
		return GroupingWestern, nil
	}
	return "", fmt.Errorf("unknown grouping %q (want indian or western)", name)
}

var indianPrinter = message.NewPrinter(language.MustParse("en-IN"))

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// ParseGrouped parses an amount that may carry grouping separators, a
// currency symbol or surrounding whitespace, e.g. "₹ 1,00,000.50".
func ParseGrouped(value string) (Money, error) {
	cleaned := strings.NewReplacer(",", "", "_", "", " ", "", "\u00a0", "", "₹", "", "$", "", "Rs.", "").Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return Money{}, fmt.Errorf("empty amount")
	}
	m, err := NewMoneyFromString(cleaned)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return m, nil
}

// Round rounds the money amount to two decimal places
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// String returns the plain two-decimal representation
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// FormatGrouped renders the amount with two decimals and digit grouping.
func (m Money) FormatGrouped(g Grouping) string {
	if g == GroupingWestern {
		return groupThousands(m.String())
	}
	return indianPrinter.Sprint(number.Decimal(m.Round().InexactFloat64(), number.Scale(2)))
}

// groupThousands inserts commas into the integer part of a fixed-point
// string. It works on the digits so amounts beyond int64 keep their value.
func groupThousands(fixed string) string {
	whole, frac, _ := strings.Cut(fixed, ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return fixed
	}
	grouped := humanize.BigComma(n)
	if n.Sign() == 0 && strings.HasPrefix(whole, "-") {
		grouped = "-" + grouped
	}
	if frac == "" {
		return grouped
	}
	return grouped + "." + frac
}

// Format formats the money amount with a rupee sign and Indian grouping
func (m Money) Format() string {
	return "₹" + m.FormatGrouped(GroupingIndian)
}
