package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/moneysaver/offset-calculator/internal/domain"
	money "github.com/moneysaver/offset-calculator/pkg/decimal"
)

// MarkdownFormatter renders the comparison as a GitHub flavoured markdown
// document. The HTML formatter renders the same document.
type MarkdownFormatter struct{}

func (m MarkdownFormatter) Name() string { return "markdown" }

func (m MarkdownFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	writeMarkdown(&buf, results)
	return buf.Bytes(), nil
}

func writeMarkdown(w io.Writer, results *domain.ScenarioComparison) {
	g := groupingOf(results)

	fmt.Fprintln(w, "# Loan Offset Savings Report")
	fmt.Fprintln(w)
	if !results.GeneratedAt.IsZero() {
		fmt.Fprintf(w, "Generated %s. ", results.GeneratedAt.Format("2 Jan 2006 15:04 MST"))
	}
	fmt.Fprintf(w, "Opportunity cost %s.\n\n", FormatPercentage(domain.Some(results.OpportunityCostPercent)))

	fmt.Fprintln(w, "## Key Assumptions")
	fmt.Fprintln(w)
	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(w, "- %s\n", a)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Scenario Summary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Scenario | Principal | Rate | Tenure | Offset | EMI | Paid off in (years) | Interest saved | Net savings | EMIs saved | Effective rate |")
	fmt.Fprintln(w, "|---|---:|---:|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, sc := range results.Scenarios {
		r := sc.Result
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			markdownCell(sc.Name),
			FormatAmount(domain.Some(sc.Inputs.Principal), g),
			FormatPercentage(domain.Some(sc.Inputs.AnnualRatePercent)),
			FormatYears(domain.Some(sc.Inputs.TenureYears)),
			FormatAmount(domain.Some(sc.Inputs.Offset), g),
			FormatAmount(r.EMI, g),
			FormatYears(r.PayoffYears),
			FormatAmount(r.InterestSaved, g),
			FormatAmount(r.NetSavings, g),
			FormatMonths(r.EMIsSavedMonths),
			FormatPercentage(r.EffectiveRatePercent),
		)
	}
	fmt.Fprintln(w)

	for _, sc := range results.Scenarios {
		fmt.Fprintf(w, "### %s\n\n", markdownCell(sc.Name))
		fmt.Fprintf(w, "%s\n\n", Summary(sc.Result, g))
		if sc.PayoffDate != nil {
			fmt.Fprintf(w, "Payoff date: **%s**.\n\n", FormatDate(sc.PayoffDate))
		}
		if len(sc.Sweep) > 0 {
			writeMarkdownSweep(w, sc.Sweep, g)
		}
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(w, "## Recommendation")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "**%s** gives the highest net savings: %s.\n", markdownCell(rec.ScenarioName), FormatCurrency(rec.NetSavings, g))
	}
}

func writeMarkdownSweep(w io.Writer, points []domain.SweepPoint, g money.Grouping) {
	fmt.Fprintln(w, "| Offset | Paid off in (years) | Interest saved | Opportunity cost | Net savings | Effective rate |")
	fmt.Fprintln(w, "|---:|---:|---:|---:|---:|---:|")
	for _, p := range points {
		r := p.Result
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
			FormatAmount(domain.Some(p.Offset), g),
			FormatYears(r.PayoffYears),
			FormatAmount(r.InterestSaved, g),
			FormatAmount(r.OpportunityCost, g),
			FormatAmount(r.NetSavings, g),
			FormatPercentage(r.EffectiveRatePercent),
		)
	}
	fmt.Fprintln(w)
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "*", `\*`, "_", `\_`)

func markdownCell(s string) string { return markdownEscaper.Replace(s) }
