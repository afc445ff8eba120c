package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

// ContactResult is the fragment returned after a contact form submission.
type ContactResult struct {
	Accepted bool
	Message  string
	Problems []string
}

// Renderer executes the page layout templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the built-in layout templates.
func NewRenderer() (*Renderer, error) {
	return NewRendererFS(templateFS, "templates/*.html")
}

// NewRendererFS parses layout templates matching pattern from fsys. The set
// must define "layout" and "contact-result".
func NewRendererFS(fsys fs.FS, pattern string) (*Renderer, error) {
	tmpl, err := template.New("page").ParseFS(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	for _, name := range []string{"layout", "contact-result"} {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("page templates do not define %q", name)
		}
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Execute writes the complete HTML document for p. Nothing is written to w
// if the template fails.
func (r *Renderer) Execute(w io.Writer, p *Page) error {
	return r.execute(w, "layout", p)
}

// ExecuteContactResult writes the contact form result fragment.
func (r *Renderer) ExecuteContactResult(w io.Writer, res ContactResult) error {
	return r.execute(w, "contact-result", res)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to execute %s template: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
