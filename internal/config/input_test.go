package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/moneysaver/offset-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `assumptions:
  opportunity_cost_percent: 5.1
  grouping: indian
scenarios:
  - name: "Home loan"
    principal: 10000000
    annual_rate_percent: 7.5
    tenure_years: 20
    offset: 100000
    start_date: 2025-01-01T00:00:00Z
    sweep:
      from: 0
      to: 500000
      step: 100000
  - name: "Interest free"
    principal: 1200
    annual_rate_percent: 0
    tenure_years: 1
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
	assert.NotNil(t, parser.validate)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, validConfigYAML))
	require.NoError(t, err)

	require.Len(t, config.Scenarios, 2)
	assert.Equal(t, 5.1, config.Assumptions.OpportunityCost())
	assert.Equal(t, "indian", config.Assumptions.Grouping)

	home := config.Scenarios[0]
	assert.Equal(t, "Home loan", home.Name)
	assert.True(t, home.Principal.Equal(decimal.NewFromInt(10_000_000)))
	assert.True(t, home.AnnualRatePercent.Equal(decimal.NewFromFloat(7.5)))
	require.NotNil(t, home.StartDate)
	assert.Equal(t, 2025, home.StartDate.Year())
	require.NotNil(t, home.Sweep)
	assert.True(t, home.Sweep.Step.Equal(decimal.NewFromInt(100_000)))

	assert.Equal(t, domain.LoanInputs{Principal: 1200, AnnualRatePercent: 0, TenureYears: 1}, config.Scenarios[1].Inputs())
	assert.Nil(t, config.Scenarios[1].Sweep)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
scenarios:
	- name: "tabs are not allowed"
		principal: "not-a-number"
`
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTempConfig(t, testConfig))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_BadNumber(t *testing.T) {
	testConfig := "scenarios:\n  - name: x\n    principal: lots\n"
	_, err := NewInputParser().LoadFromFile(writeTempConfig(t, testConfig))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_DefaultOpportunityCost(t *testing.T) {
	testConfig := "scenarios:\n  - name: x\n    principal: 1000\n    annual_rate_percent: 8\n    tenure_years: 2\n"
	config, err := NewInputParser().LoadFromFile(writeTempConfig(t, testConfig))
	require.NoError(t, err)
	assert.Nil(t, config.Assumptions.OpportunityCostPercent)
	assert.Equal(t, domain.DefaultOpportunityCostPercent, config.Assumptions.OpportunityCost())
}

func validTestConfiguration() *domain.Configuration {
	return NewInputParser().CreateExampleConfiguration()
}

func TestValidateConfiguration_Success(t *testing.T) {
	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(validTestConfiguration()))
}

func TestValidateConfiguration_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *domain.Configuration)
		wantErr string
	}{
		{"no scenarios", func(c *domain.Configuration) { c.Scenarios = nil }, "Scenarios is required"},
		{"empty scenarios", func(c *domain.Configuration) { c.Scenarios = []domain.Scenario{} }, "Scenarios needs at least 1 entries"},
		{"missing name", func(c *domain.Configuration) { c.Scenarios[0].Name = "" }, "Scenarios[0].Name is required"},
		{"bad grouping", func(c *domain.Configuration) { c.Assumptions.Grouping = "french" }, "Assumptions.Grouping must be one of"},
		{"duplicate name", func(c *domain.Configuration) { c.Scenarios[1].Name = c.Scenarios[0].Name }, "already used by scenario 0"},
		{"zero principal", func(c *domain.Configuration) { c.Scenarios[0].Principal = decimal.Zero }, "principal must be positive"},
		{"negative rate", func(c *domain.Configuration) { c.Scenarios[0].AnnualRatePercent = decimal.NewFromInt(-1) }, "annual rate percent cannot be negative"},
		{"huge rate", func(c *domain.Configuration) { c.Scenarios[0].AnnualRatePercent = decimal.NewFromInt(101) }, "cannot exceed 100%"},
		{"zero tenure", func(c *domain.Configuration) { c.Scenarios[0].TenureYears = decimal.Zero }, "tenure years must be positive"},
		{"tiny tenure", func(c *domain.Configuration) { c.Scenarios[0].TenureYears = decimal.NewFromFloat(0.01) }, "at least one month"},
		{"negative offset", func(c *domain.Configuration) { c.Scenarios[0].Offset = decimal.NewFromInt(-5) }, "offset cannot be negative"},
		{"bad sweep", func(c *domain.Configuration) { c.Scenarios[1].Sweep.Step = decimal.Zero }, "sweep: invalid offset sweep"},
		{"bad opportunity cost", func(c *domain.Configuration) {
			v := decimal.NewFromInt(-2)
			c.Assumptions.OpportunityCostPercent = &v
		}, "opportunity cost percent must be between 0 and 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfiguration()
			tt.mutate(cfg)
			err := NewInputParser().ValidateConfiguration(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExampleConfiguration(t *testing.T) {
	cfg := NewInputParser().CreateExampleConfiguration()
	require.Len(t, cfg.Scenarios, 3)
	assert.Equal(t, "indian", cfg.Assumptions.Grouping)
	assert.Equal(t, domain.DefaultOpportunityCostPercent, cfg.Assumptions.OpportunityCost())
	assert.NotNil(t, cfg.Scenarios[1].Sweep)
}
