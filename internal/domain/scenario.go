package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Configuration represents the complete input configuration
type Configuration struct {
	Assumptions Assumptions `yaml:"assumptions" json:"assumptions"`
	Scenarios   []Scenario  `yaml:"scenarios" json:"scenarios" validate:"required,min=1,dive"`
}

// Assumptions holds settings shared by every scenario
type Assumptions struct {
	// OpportunityCostPercent overrides DefaultOpportunityCostPercent when set.
	OpportunityCostPercent *decimal.Decimal `yaml:"opportunity_cost_percent,omitempty" json:"opportunity_cost_percent,omitempty"`
	Grouping               string           `yaml:"grouping,omitempty" json:"grouping,omitempty" validate:"omitempty,oneof=indian western"`
}

// OpportunityCost returns the configured rate or the default.
func (a Assumptions) OpportunityCost() float64 {
	if a.OpportunityCostPercent == nil {
		return DefaultOpportunityCostPercent
	}
	return a.OpportunityCostPercent.InexactFloat64()
}

// Scenario is one named loan to evaluate
type Scenario struct {
	Name              string          `yaml:"name" json:"name" validate:"required"`
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	TenureYears       decimal.Decimal `yaml:"tenure_years" json:"tenure_years"`
	Offset            decimal.Decimal `yaml:"offset" json:"offset"`
	StartDate         *time.Time      `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	Sweep             *SweepSpec      `yaml:"sweep,omitempty" json:"sweep,omitempty"`
}

// Inputs converts the scenario into calculator inputs.
func (s Scenario) Inputs() LoanInputs {
	return LoanInputs{
		Principal:         s.Principal.InexactFloat64(),
		AnnualRatePercent: s.AnnualRatePercent.InexactFloat64(),
		TenureYears:       s.TenureYears.InexactFloat64(),
		Offset:            s.Offset.InexactFloat64(),
	}
}

// SweepSpec describes a range of offset amounts to evaluate
type SweepSpec struct {
	From decimal.Decimal `yaml:"from" json:"from"`
	To   decimal.Decimal `yaml:"to" json:"to"`
	Step decimal.Decimal `yaml:"step" json:"step"`
}

// SweepPoint is the result for a single offset amount of a sweep
type SweepPoint struct {
	Offset float64           `json:"offset"`
	Result CalculationResult `json:"result"`
}

// ScenarioSummary is the evaluated form of a Scenario
type ScenarioSummary struct {
	Name                   string            `json:"name"`
	Inputs                 LoanInputs        `json:"inputs"`
	OpportunityCostPercent float64           `json:"opportunity_cost_percent"`
	Result                 CalculationResult `json:"result"`
	StartDate              *time.Time        `json:"start_date,omitempty"`
	PayoffDate             *time.Time        `json:"payoff_date,omitempty"`
	Sweep                  []SweepPoint      `json:"sweep,omitempty"`
}

// ScenarioComparison holds all evaluated scenarios of a configuration
type ScenarioComparison struct {
	GeneratedAt            time.Time         `json:"generated_at"`
	OpportunityCostPercent float64           `json:"opportunity_cost_percent"`
	Grouping               string            `json:"grouping"`
	Scenarios              []ScenarioSummary `json:"scenarios"`
	Assumptions            []string          `json:"assumptions"`
}
