package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/moneysaver/offset-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders results with the named formatter and writes them to w.
func GenerateReport(results *domain.ScenarioComparison, format string, w io.Writer) error {
	f, err := lookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReportFile renders results into a timestamped file in dir and
// returns its path.
func GenerateReportFile(results *domain.ScenarioComparison, format, dir string) (string, error) {
	f, err := lookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, results, dir)
}

func lookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	// enrich error with available formatters and aliases
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
