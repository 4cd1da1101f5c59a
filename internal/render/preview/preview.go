// Package preview realizes the render contract as live, styled markup for
// the editor screen.
package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

// TargetID is the id of the element holding the rendered résumé. The client
// export rasterizes exactly this element.
const TargetID = "resume-preview"

//go:embed templates/preview.html templates/preview.css
var files embed.FS

var (
	tpl = template.Must(template.ParseFS(files, "templates/preview.html"))
	css = mustRead("templates/preview.css")
)

func mustRead(name string) template.CSS {
	b, err := files.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return template.CSS(b)
}

// Options control the interactive parts of the preview.
type Options struct {
	// Editable adds a per-section edit control.
	Editable bool
	// Active highlights the section currently open in the editor.
	Active model.SectionKind
}

type view struct {
	Title    string
	CSS      template.CSS
	Blocks   []render.Block
	Editable bool
	Active   model.SectionKind
}

func newView(doc *domain.Document, opts Options) view {
	title := doc.DisplayName()
	if title == "" {
		title = "Résumé preview"
	}
	return view{
		Title:    title,
		CSS:      css,
		Blocks:   render.Arrange(doc),
		Editable: opts.Editable,
		Active:   opts.Active,
	}
}

// Render returns the preview fragment rooted at the TargetID element.
func Render(doc *domain.Document, opts Options) (string, error) {
	return execute("resume", newView(doc, opts))
}

// Page returns a standalone page wrapping the preview fragment.
func Page(doc *domain.Document, opts Options) (string, error) {
	return execute("page", newView(doc, opts))
}

func execute(name string, v view) (string, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, v); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return buf.String(), nil
}
