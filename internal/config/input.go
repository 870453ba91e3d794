package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moneysaver/offset-calculator/internal/calculation"
	"github.com/moneysaver/offset-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates configuration bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validate.Struct(config); err != nil {
		return describeValidationError(err)
	}

	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if first, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("scenario %d: name %q already used by scenario %d", i, scenario.Name, first)
		}
		seen[scenario.Name] = i
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
	}

	return nil
}

// validateAssumptions validates shared assumptions
func (ip *InputParser) validateAssumptions(assumptions *domain.Assumptions) error {
	if rate := assumptions.OpportunityCostPercent; rate != nil {
		if rate.LessThan(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("opportunity cost percent must be between 0 and 100, got %s", rate.String())
		}
	}
	return nil
}

// validateScenario validates a single scenario's loan figures
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("principal must be positive")
	}
	if scenario.AnnualRatePercent.LessThan(decimal.Zero) {
		return fmt.Errorf("annual rate percent cannot be negative")
	}
	if scenario.AnnualRatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("annual rate percent cannot exceed 100%%")
	}
	if scenario.TenureYears.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("tenure years must be positive")
	}
	if calculation.TenureMonths(scenario.TenureYears.InexactFloat64()) < 1 {
		return fmt.Errorf("tenure must cover at least one month")
	}
	if scenario.Offset.LessThan(decimal.Zero) {
		return fmt.Errorf("offset cannot be negative")
	}

	if scenario.Sweep != nil {
		if _, err := calculation.RangeFromSpec(*scenario.Sweep).Count(); err != nil {
			return fmt.Errorf("sweep: %w", err)
		}
	}

	return nil
}

// describeValidationError flattens validator output into a readable error
func describeValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Configuration.")
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s needs at least %s entries", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	start, _ := time.Parse("2006-01-02", "2025-04-01")
	opportunity := decimal.NewFromFloat(domain.DefaultOpportunityCostPercent)

	return &domain.Configuration{
		Assumptions: domain.Assumptions{
			OpportunityCostPercent: &opportunity,
			Grouping:               "indian",
		},
		Scenarios: []domain.Scenario{
			{
				Name:              "Home loan without offset",
				Principal:         decimal.NewFromInt(10_000_000),
				AnnualRatePercent: decimal.NewFromFloat(7.5),
				TenureYears:       decimal.NewFromInt(20),
				Offset:            decimal.Zero,
				StartDate:         &start,
			},
			{
				Name:              "Home loan with savings offset",
				Principal:         decimal.NewFromInt(10_000_000),
				AnnualRatePercent: decimal.NewFromFloat(7.5),
				TenureYears:       decimal.NewFromInt(20),
				Offset:            decimal.NewFromInt(100_000),
				StartDate:         &start,
				Sweep: &domain.SweepSpec{
					From: decimal.Zero,
					To:   decimal.NewFromInt(1_000_000),
					Step: decimal.NewFromInt(100_000),
				},
			},
			{
				Name:              "Car loan with emergency fund offset",
				Principal:         decimal.NewFromInt(800_000),
				AnnualRatePercent: decimal.NewFromFloat(9.25),
				TenureYears:       decimal.NewFromInt(5),
				Offset:            decimal.NewFromInt(150_000),
			},
		},
	}
}
