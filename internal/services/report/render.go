package report

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/bobmcallan/daybrief/internal/models"
)

// The document layout mirrors the published report: a fixed four-column
// table (Company 33%, Ticker 12%, Change 12%, Notes 43%) with an inline
// stylesheet. Unlike the earlier generator, field values are escaped by
// html/template.
const documentTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
:root { --text:#111827; --line:#e5e7eb; --bg:#ffffff; }
body { font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial;
       background: var(--bg); color: var(--text); margin: 24px; }
.wrap { max-width: 1100px; }
table { width: 100%; border-collapse: collapse; table-layout: fixed; }
thead th { text-align: left; font-weight: 700; font-size: 14px; padding: 14px 10px;
           border-bottom: 1px solid var(--line); }
tbody td { padding: 18px 10px; border-bottom: 1px solid #f3f4f6; vertical-align: top; font-size: 14px; }
tbody tr:last-child td { border-bottom: 1px solid var(--line); }
.col-company { width: 33%; }
.col-ticker { width: 12%; }
.col-change { width: 12%; }
.col-notes { width: 43%; }
</style>
</head>
<body>
<div class="wrap">
<table>
  <thead>
    <tr>
      <th class="col-company">Company</th>
      <th class="col-ticker">Ticker</th>
      <th class="col-change">Change (%)</th>
      <th class="col-notes">{{.Title}}</th>
    </tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr><td class="col-company">{{.Company}}</td><td class="col-ticker">{{.Ticker}}</td><td class="col-change">{{fmtPct .Change}}</td><td class="col-notes">{{.Note}}</td></tr>
{{- end}}
  </tbody>
</table>
</div>
</body>
</html>
`

var documentTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"fmtPct": FormatChange,
}).Parse(documentTemplate))

// FormatChange renders a percentage change to one decimal digit with an
// explicit "+" prefix for positive values. A nil change renders as the
// empty string; a change that rounds to zero never carries a sign.
func FormatChange(change *float64) string {
	if change == nil {
		return ""
	}
	s := fmt.Sprintf("%.1f", *change)
	if s == "-0.0" {
		s = "0.0"
	}
	if *change > 0 {
		s = "+" + s
	}
	return s + "%"
}

// Render serializes a report into a complete, self-contained HTML
// document. Rows render in the order given; identical input produces
// byte-identical output.
func Render(report *models.Report) (string, error) {
	data := struct {
		Title string
		Rows  []models.Row
	}{
		Title: fmt.Sprintf("Notes (%s)", report.Date),
		Rows:  report.Rows,
	}

	var sb strings.Builder
	if err := documentTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}
