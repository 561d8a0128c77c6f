// Package render assembles the HTML report document and writes it out.
package render

import (
	"bytes"
	"html/template"
	"os"
	"time"

	"github.com/salmonumbrella/csv2html-cli/internal/report"
)

// Options configures document assembly.
type Options struct {
	// Title is the document title and top heading.
	Title string
	// GroupColumn is omitted from the per-group tables; the group key
	// already appears as the section heading.
	GroupColumn string
	// HideColumns are omitted from the tables entirely.
	HideColumns []string
	// Links identifies columns rendered as anchor labels.
	Links report.LinkSet
	// Generated is the report timestamp; zero means time.Now().
	Generated time.Time
}

type cell struct {
	Text  string
	Href  string
	Label string
}

type section struct {
	Heading string
	Columns []string
	Rows    [][]cell
}

type document struct {
	Title     string
	Sections  []section
	Generated string
}

// The href attribute goes through html/template's URL escaper, which
// neuters javascript: and other unsafe schemes.
const reportTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{font-family:system-ui,-apple-system,"Segoe UI",Roboto,Arial,sans-serif;margin:28px;}
h1{margin:0 0 8px;}
section{margin-bottom:32px;}
h2{margin:28px 0 10px;}
.table-wrap{border:1px solid #e5e7eb;border-radius:12px;overflow:auto;}
table{border-collapse:collapse;width:100%;}
th,td{padding:8px 10px;border-top:1px solid #f0f0f0;text-align:center;font-size:14px;}
thead th{background:#f8fafc;border-bottom:1px solid #e5e7eb;}
tbody tr:nth-child(even){background:#fcfcfc;}
footer{margin-top:24px;color:#6b7280;font-size:12px;}
a{color:#2563eb;}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- range .Sections}}
<section>
<h2>{{.Heading}}</h2>
<div class="table-wrap">
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}{{if .Href}}<td><a href="{{.Href}}" target="_blank" rel="noopener">{{.Label}}</a></td>{{else}}<td>{{.Text}}</td>{{end}}{{end}}</tr>
{{- end}}
</tbody>
</table>
</div>
</section>
{{- end}}
<footer>Generated {{.Generated}}</footer>
</body>
</html>
`

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Document renders the groups into a self-contained HTML document.
// columns is the full header order of the source table; the group column
// and hidden columns are dropped from the emitted tables.
func Document(groups []report.Group, columns []string, opts Options) ([]byte, error) {
	generated := opts.Generated
	if generated.IsZero() {
		generated = time.Now()
	}

	hidden := make(map[string]bool, len(opts.HideColumns)+1)
	hidden[opts.GroupColumn] = true
	for _, c := range opts.HideColumns {
		hidden[c] = true
	}

	var visible []string
	for _, c := range columns {
		if !hidden[c] {
			visible = append(visible, c)
		}
	}

	doc := document{
		Title:     opts.Title,
		Generated: generated.Format("2006-01-02 15:04:05 MST"),
	}
	for _, g := range groups {
		sec := section{Heading: g.Key, Columns: visible}
		for _, row := range g.Rows {
			cells := make([]cell, 0, len(visible))
			for _, col := range visible {
				cells = append(cells, makeCell(col, row[col], opts.Links))
			}
			sec.Rows = append(sec.Rows, cells)
		}
		doc.Sections = append(doc.Sections, sec)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// makeCell renders a link cell when the column is in the link set and the
// value is non-empty; an empty value produces an empty cell, never a bare
// anchor.
func makeCell(column, value string, links report.LinkSet) cell {
	if value != "" && links.Contains(column) {
		return cell{Href: value, Label: links.Label(column)}
	}
	return cell{Text: value}
}

// WriteFile renders the document and overwrites path. There is no
// partial-write recovery; the conversion is single-shot and re-runnable.
func WriteFile(path string, groups []report.Group, columns []string, opts Options) error {
	doc, err := Document(groups, columns, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, doc, 0o644)
}
