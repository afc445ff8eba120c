package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"strings"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Cards renders each record kind with a named template from one parsed set.
// A Cards value is immutable and safe for concurrent use.
type Cards struct {
	tmpl *template.Template
}

// NewCards parses the built-in card templates.
func NewCards() (*Cards, error) {
	return NewCardsFS(embeddedTemplates, "templates/*.html")
}

// NewCardsFromDir parses card templates from *.html files in dir.
// Every record kind must have a template named after it.
func NewCardsFromDir(dir string) (*Cards, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template directory not found: %s", dir),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template directory: %s", dir),
			Cause:   err,
		}
	}
	if !info.IsDir() {
		return nil, &TemplateError{Message: fmt.Sprintf("not a directory: %s", dir)}
	}
	return NewCardsFS(os.DirFS(dir), "*.html")
}

// NewCardsFS parses card templates matching pattern in fsys.
func NewCardsFS(fsys fs.FS, pattern string) (*Cards, error) {
	tmpl, err := template.New("cards").Funcs(FuncMap()).ParseFS(fsys, pattern)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse card templates",
			Cause:   err,
		}
	}

	for _, kind := range types.Kinds() {
		if tmpl.Lookup(string(kind)) == nil {
			return nil, &TemplateError{
				Message: fmt.Sprintf("no template defined for %s cards", kind),
			}
		}
	}

	return &Cards{tmpl: tmpl}, nil
}

// FuncMap returns the helper functions available to card templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"rich": RichText,
	}
}

// ExperienceTemplate returns the template used for Experience cards.
func (c *Cards) ExperienceTemplate() Template[types.Experience] {
	return named[types.Experience](c.tmpl, types.KindExperience)
}

// ProjectTemplate returns the template used for Project cards.
func (c *Cards) ProjectTemplate() Template[types.Project] {
	return named[types.Project](c.tmpl, types.KindProject)
}

// PublicationTemplate returns the template used for Publication cards.
func (c *Cards) PublicationTemplate() Template[types.Publication] {
	return named[types.Publication](c.tmpl, types.KindPublication)
}

// CertificationTemplate returns the template used for Certification cards.
func (c *Cards) CertificationTemplate() Template[types.Certification] {
	return named[types.Certification](c.tmpl, types.KindCertification)
}

// Experiences renders experience cards in input order.
func (c *Cards) Experiences(records []types.Experience) ([]template.HTML, error) {
	return Render(records, c.ExperienceTemplate())
}

// Projects renders project cards in input order.
func (c *Cards) Projects(records []types.Project) ([]template.HTML, error) {
	return Render(records, c.ProjectTemplate())
}

// Publications renders publication cards in input order.
func (c *Cards) Publications(records []types.Publication) ([]template.HTML, error) {
	return Render(records, c.PublicationTemplate())
}

// Certifications renders certification cards in input order.
func (c *Cards) Certifications(records []types.Certification) ([]template.HTML, error) {
	return Render(records, c.CertificationTemplate())
}

// RenderKind renders every record of kind held by p.
func (c *Cards) RenderKind(p *types.Portfolio, kind types.Kind) ([]template.HTML, error) {
	switch kind {
	case types.KindExperience:
		return c.Experiences(p.Experiences)
	case types.KindProject:
		return c.Projects(p.Projects)
	case types.KindPublication:
		return c.Publications(p.Publications)
	case types.KindCertification:
		return c.Certifications(p.Certifications)
	default:
		return nil, &RenderError{Message: fmt.Sprintf("unknown record kind %q", kind)}
	}
}

func named[R types.Record](tmpl *template.Template, kind types.Kind) Template[R] {
	return func(rec R) (template.HTML, error) {
		var sb strings.Builder
		if err := tmpl.ExecuteTemplate(&sb, string(kind), rec); err != nil {
			return "", &TemplateError{
				Message: fmt.Sprintf("failed to execute %s template", kind),
				Cause:   err,
			}
		}
		//nolint:gosec // produced by html/template
		return template.HTML(strings.TrimSpace(sb.String())), nil
	}
}
