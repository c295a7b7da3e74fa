package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/resume.html.tmpl
var templateFS embed.FS

var resumeTemplate = template.Must(template.ParseFS(templateFS, "templates/resume.html.tmpl"))

// HTML renders the projected document as a standalone A4-styled page. The
// output is self-contained so it can be previewed directly or handed to a
// headless browser for PDF printing.
func HTML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := resumeTemplate.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}
