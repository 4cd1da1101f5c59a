// Package printdoc realizes the render contract as a self-contained print
// document for the headless browser. Styles are inlined and the page is A4
// with 10mm margins.
package printdoc

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"resume-builder/internal/domain"
	"resume-builder/internal/render"
)

//go:embed templates/print.html templates/print.css
var files embed.FS

var tpl = template.Must(template.ParseFS(files, "templates/print.html"))

type view struct {
	Title  string
	CSS    template.CSS
	Blocks []render.Block
}

// Render returns the complete print document for doc.
func Render(doc *domain.Document) (string, error) {
	css, err := files.ReadFile("templates/print.css")
	if err != nil {
		return "", fmt.Errorf("read print styles: %w", err)
	}
	title := doc.DisplayName()
	if title == "" {
		title = "Résumé"
	}
	var buf bytes.Buffer
	err = tpl.Execute(&buf, view{
		Title:  title,
		CSS:    template.CSS(css),
		Blocks: render.Arrange(doc),
	})
	if err != nil {
		return "", fmt.Errorf("render print document: %w", err)
	}
	return buf.String(), nil
}
