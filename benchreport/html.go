// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"io"

	"github.com/google/safehtml/template"

	"github.com/vuelsbench/benchplot/benchtab"
)

// A Page is an HTML index of rendered charts.
type Page struct {
	Title string
	// Combined is the URL of the stacked image, if any.
	Combined string
	Charts   []Chart
}

// A Chart is one entry of a Page. Image may be empty when only the
// combined image was rendered.
type Chart struct {
	Title string
	Input string
	Image string
	Rows  []Row
}

// NewChart returns the page entry for a table.
func NewChart(title, input, image string, t *benchtab.Table) Chart {
	return Chart{Title: title, Input: input, Image: image, Rows: Rows(t.Stats())}
}

const pageSource = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
img { max-width: 100%; }
table.summary { border-collapse: collapse; margin-bottom: 2em; }
table.summary th, table.summary td { padding: 0.2em 0.8em; text-align: right; }
table.summary td:first-child, table.summary th:first-child { text-align: left; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- range .Charts}}
<h2>{{.Title}}</h2>
<p class="input">{{.Input}}</p>
{{- if .Image}}
<img src="{{.Image}}" alt="{{.Title}}">
{{- end}}
<table class="summary">
<tr><th>series<th>n<th>min<th>mean<th><th>max
{{- range .Rows}}
<tr><td>{{.Series}}<td>{{.N}}<td>{{.Min}}<td>{{.Mean}}<td>{{.Spread}}<td>{{.Max}}
{{- end}}
</table>
{{- end}}
{{- if .Combined}}
<h2>All charts</h2>
<img src="{{.Combined}}" alt="All charts">
{{- end}}
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

// WriteHTML writes p to w as a standalone HTML document.
func WriteHTML(w io.Writer, p Page) error {
	return pageTemplate.Execute(w, p)
}
