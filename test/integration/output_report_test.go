package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moneysaver/offset-calculator/internal/config"
	"github.com/moneysaver/offset-calculator/internal/domain"
	"github.com/moneysaver/offset-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	results := runExample(t)

	for _, format := range output.AvailableFormatterNames() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.GenerateReport(results, format, &buf))
			assert.NotEmpty(t, buf.String())
		})
	}

	var buf bytes.Buffer
	assert.Error(t, output.GenerateReport(results, "pdf", &buf))
}

func TestJSONReportRoundTrip(t *testing.T) {
	results := runExample(t)

	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(results, "json", &buf))

	var decoded domain.ScenarioComparison
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Scenarios, 3)
	assert.Equal(t, results.Scenarios[1].Result.EMIsSavedMonths, decoded.Scenarios[1].Result.EMIsSavedMonths)
	assert.InDelta(t, results.Scenarios[1].Result.NetSavings.OrElse(0), decoded.Scenarios[1].Result.NetSavings.OrElse(-1), 1e-6)
}

func TestConsoleReportUsesIndianGrouping(t *testing.T) {
	results := runExample(t)

	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(results, "console", &buf))
	text := buf.String()
	assert.Contains(t, text, "Home loan with savings offset")
	assert.Contains(t, text, "1,75,528.10")
	assert.Contains(t, text, "Nov 2044")
}

func TestReportFiles(t *testing.T) {
	results := runExample(t)
	dir := t.TempDir()

	for _, format := range []string{"csv", "detailed-csv", "markdown", "html"} {
		path, err := output.GenerateReportFile(results, format, dir)
		require.NoError(t, err, format)
		assert.True(t, strings.HasSuffix(path, "."+output.Extension(format)), path)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestSaveConfigurationRoundTrip(t *testing.T) {
	cfg := loadExample(t)
	out := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, out))

	reloaded, err := config.NewInputParser().LoadFromFile(out)
	require.NoError(t, err)
	require.Len(t, reloaded.Scenarios, len(cfg.Scenarios))
	for i := range cfg.Scenarios {
		assert.Equal(t, cfg.Scenarios[i].Name, reloaded.Scenarios[i].Name)
		assert.True(t, cfg.Scenarios[i].Principal.Equal(reloaded.Scenarios[i].Principal))
		assert.True(t, cfg.Scenarios[i].Offset.Equal(reloaded.Scenarios[i].Offset))
	}
}
