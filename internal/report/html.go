package report

import (
	"bytes"
	"html/template"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/lint"
)

var htmlTemplate = template.Must(template.New("lint").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Lint Report: {{.Project}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 6px; text-align: left; vertical-align: top; }
.Error { color: #b00020; } .Warning { color: #b26a00; } .Information { color: #555; }
.explanation { color: #555; font-size: 90%; }
</style>
</head>
<body>
<h1>Lint Report: {{.Project}}</h1>
<p>{{.Errors}} errors, {{.Warnings}} warnings, {{.Informational}} informational</p>
{{- if .Findings}}
<table>
<tr><th>Severity</th><th>Id</th><th>Category</th><th>Variant</th><th>Message</th><th>Location</th></tr>
{{- range .Findings}}
<tr class="{{.Severity}}">
<td>{{.Severity}}</td><td>{{.ID}}</td><td>{{.Category}}</td><td>{{.Variant}}</td>
<td>{{.Message}}{{if .Explanation}}<div class="explanation">{{.Explanation}}</div>{{end}}</td>
<td>{{.Location}}</td>
</tr>
{{- end}}
</table>
{{- else}}
<p>No issues found.</p>
{{- end}}
</body>
</html>
`))

type htmlFinding struct {
	Severity    string
	ID          string
	Category    string
	Variant     string
	Message     string
	Explanation string
	Location    string
}

func renderHTML(r *lint.Report, opts Options) ([]byte, error) {
	data := struct {
		Project       string
		Errors        int
		Warnings      int
		Informational int
		Findings      []htmlFinding
	}{
		Project:       r.Project,
		Errors:        r.Count(config.SeverityError),
		Warnings:      r.Count(config.SeverityWarning),
		Informational: r.Count(config.SeverityInformational),
	}
	for _, f := range r.Findings {
		data.Findings = append(data.Findings, htmlFinding{
			Severity:    severityLabel(f.Severity),
			ID:          f.ID,
			Category:    string(f.Category),
			Variant:     f.Variant,
			Message:     f.Message,
			Explanation: f.Explanation,
			Location:    location(f.Location, opts),
		})
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
