// Package htmldoc wraps converted HTML fragments in a standalone document.
package htmldoc

import (
	_ "embed"
	"html/template"
	"io"
	"strings"
)

// DefaultTitle is the document title used when none is given.
const DefaultTitle = "道本语转换结果"

//go:embed document.html.tmpl
var documentSource string

var document = template.Must(template.New("document").Parse(documentSource))

type page struct {
	Title string
	Body  template.HTML
}

// Write renders a complete HTML document to w. body must already be
// escaped; it is inserted verbatim.
func Write(w io.Writer, title, body string) error {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	return document.Execute(w, page{Title: title, Body: template.HTML(body)})
}

// Render is like Write but returns the document as a string.
func Render(title, body string) (string, error) {
	var b strings.Builder
	if err := Write(&b, title, body); err != nil {
		return "", err
	}
	return b.String(), nil
}
