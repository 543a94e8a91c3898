package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"pinboard/internal/core"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data handed to every template. Only the fields a given page
// uses need to be set.
type Page struct {
	CurrentUser   string
	Authenticated bool
	Messages      []core.MessageRecord
	Message       core.MessageRecord
	SearchWord    string
	ErrorMessage  string
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{
		templates: templates,
	}, nil
}

// Render writes the named page. Page names map to template files, e.g.
// "top" renders templates/top.html.
func (r *Renderer) Render(w io.Writer, page string, data Page) error {
	if err := r.templates.ExecuteTemplate(w, page+".html", data); err != nil {
		return fmt.Errorf("execute template %q: %w", page, err)
	}
	return nil
}
