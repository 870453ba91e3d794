package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/moneysaver/offset-calculator/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter renders the markdown report into a standalone HTML page.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

// goldmark escapes raw HTML by default, so scenario names cannot inject markup.
var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var md bytes.Buffer
	writeMarkdown(&md, results)

	var body bytes.Buffer
	if err := markdownRenderer.Convert(md.Bytes(), &body); err != nil {
		return nil, err
	}

	data := struct {
		Title string
		Body  template.HTML
	}{
		Title: "Loan Offset Savings Report",
		Body:  template.HTML(body.String()),
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
