package web

import (
	"bytes"
	"html/template"
	"net/http"
)

// shellTemplate is the fixed document frame shared by every page.
// Individual pages only supply a title and a body block.
const shellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
</head>
<body>
{{template "body" .Data}}
</body>
</html>
`

var shell = template.Must(template.New("shell").Parse(shellTemplate))

// page is a parsed body template bound to the shared shell
type page struct {
	tmpl *template.Template
}

func newPage(body string) *page {
	return &page{tmpl: template.Must(template.Must(shell.Clone()).Parse(body))}
}

var (
	welcomePage = newPage(`{{define "body"}}<h1>hue</h1>
<p>A small color and mascot server. Routes:</p>
<ul>
  <li><a href="/color">/color</a> shows a random color</li>
  <li><a href="/color?variant=navy">/color?variant=navy</a> shows a named color</li>
  <li><a href="/get-colors">/get-colors</a> lists every color</li>
  <li><a href="/get-animal?variant=navy">/get-animal?variant=navy</a> shows the mascot for a color</li>
</ul>{{end}}`)

	colorPage = newPage(`{{define "body"}}<p style="color:{{.Hex}}">{{.Hex}}</p>{{end}}`)

	colorsPage = newPage(`{{define "body"}}<h1>Available colors</h1>
<ul>
{{range .}}  <li><a href="/color?variant={{.Name}}">{{.Name}}</a> {{.Hex}} (<a href="/get-animal?variant={{.Name}}">mascot</a>)</li>
{{end}}</ul>{{end}}`)

	animalPage = newPage(`{{define "body"}}<h1>{{.Name}}</h1>
<p>Variant: {{.Variant}}</p>
<img src="{{.ImageURL}}" alt="{{.Name}}">{{end}}`)

	messagePage = newPage(`{{define "body"}}<h1>{{.Heading}}</h1>
<p>{{.Message}}</p>{{end}}`)
)

// pageData is the payload handed to the shell template
type pageData struct {
	Title string
	Data  interface{}
}

// messageData fills the generic message page used for error responses
type messageData struct {
	Heading string
	Message string
}

// renderPage wraps the page body in the shared shell and writes it with
// the given status. The template executes into a buffer first, so a
// template fault produces a plain 500 instead of a truncated page.
func renderPage(w http.ResponseWriter, status int, p *page, title string, data interface{}) {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, pageData{Title: title, Data: data}); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
