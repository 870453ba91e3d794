package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/moneysaver/offset-calculator/internal/domain"
)

// Formatter renders an evaluated set of loan scenarios as one report format.
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name is the canonical format name, also used to pick the file extension.
	Name() string
}

// reportTime is swapped in tests to get stable file names.
var reportTime = time.Now

// WriteFormatted runs a formatter and writes the output to a timestamped file in dir.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	name := fmt.Sprintf("offset_report_%s.%s", reportTime().Format("20060102_150405"), Extension(f.Name()))
	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return filename, nil
}

// Extension returns the file extension used for a formatter's output.
func Extension(name string) string {
	switch n := NormalizeFormatName(name); {
	case strings.Contains(n, "csv"):
		return "csv"
	case n == "markdown":
		return "md"
	case n == "html", n == "json":
		return n
	default:
		return "txt"
	}
}

// reportFormatters indexes every report format by its canonical name.
var reportFormatters = func() map[string]Formatter {
	m := make(map[string]Formatter)
	for _, f := range []Formatter{
		ConsoleVerboseFormatter{},
		ConsoleFormatter{},
		CSVSummarizer{},
		CSVDetailedExporter{},
		JSONFormatter{},
		MarkdownFormatter{},
		HTMLFormatter{},
	} {
		m[f.Name()] = f
	}
	return m
}()

// formatAliases maps the extra names accepted by --format and the report
// endpoint onto canonical format names.
var formatAliases = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"text":            "console",
	"lite":            "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-sweep":       "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
	"md":              "markdown",
}

// GetFormatterByName returns the report formatter for a name or alias, or
// nil when the format is unknown.
func GetFormatterByName(name string) Formatter {
	return reportFormatters[NormalizeFormatName(name)]
}

// NormalizeFormatName is case and whitespace insensitive and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := formatAliases[n]; ok {
		return canonical
	}
	return n
}

// AvailableFormatterNames lists the canonical report formats, sorted.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(reportFormatters))
	for name := range reportFormatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted aliases, sorted.
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
