package report

import (
	"html/template"
	"io"
	"time"

	"github.com/philint/philint/internal/types"
)

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>PHI Violation Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th { background: #f0f0f0; }
.none { color: #2a7a2a; }
.count { color: #a33; font-weight: bold; }
</style>
</head>
<body>
<h1>PHI Violation Report</h1>
<p>Generated {{.Generated}}</p>
{{if eq .Result.Total 0}}
<p class="none">No PHI violations detected.</p>
{{else}}
<p class="count">Total violations: {{.Result.Total}}</p>
<table>
<tr><th>File</th><th>Line</th><th>Category</th><th>Message</th></tr>
{{range .Result.Violations}}
<tr><td>{{.Path}}</td><td>{{.Line}}</td><td>{{.Category}}</td><td>{{.Message}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))

// WriteHTML writes a standalone HTML report. Violation text passes through
// html/template's contextual escaping, so matched content cannot inject
// markup into the report.
func WriteHTML(w io.Writer, res types.ScanResult) error {
	return htmlTmpl.Execute(w, struct {
		Generated string
		Result    types.ScanResult
	}{
		Generated: time.Now().Format(time.RFC3339),
		Result:    res,
	})
}
