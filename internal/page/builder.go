package page

import (
	"fmt"
	"html/template"

	"github.com/yaswanthreddy/portfolio/internal/chart"
	"github.com/yaswanthreddy/portfolio/internal/rendering"
	"github.com/yaswanthreddy/portfolio/internal/types"
)

// NavItem is one entry of the navigation sidebar.
type NavItem struct {
	Label  string
	Path   string
	Active bool
}

// Page is everything the layout needs to draw one view. Sections that the
// view does not show are left empty.
type Page struct {
	View    View
	Title   string
	Nav     []NavItem
	Profile types.Profile

	SkillChart    *chart.Figure
	TimelineChart *chart.Figure

	Experiences    []template.HTML
	Projects       []template.HTML
	Publications   []template.HTML
	Certifications []template.HTML

	ContactForm bool
	Links       []types.SocialLink
	ResumeURL   string
}

// Builder assembles pages from a portfolio.
type Builder struct {
	cards  *rendering.Cards
	charts chart.Charter
}

// NewBuilder creates a Builder. charts may be nil, in which case the home view has no charts.
func NewBuilder(cards *rendering.Cards, charts chart.Charter) *Builder {
	return &Builder{cards: cards, charts: charts}
}

// Build renders the sections shown by view.
func (b *Builder) Build(view View, p *types.Portfolio) (*Page, error) {
	pg := &Page{
		View:    view,
		Title:   fmt.Sprintf("%s | %s", view.Title(), p.Profile.Name),
		Nav:     navigation(view),
		Profile: p.Profile,
	}

	var err error
	switch view {
	case ViewHome:
		err = b.home(pg, p)
	case ViewProjects:
		pg.Projects, err = b.cards.Projects(p.Projects)
	case ViewContact:
		pg.ContactForm = true
		pg.Links = p.Profile.Links
	case ViewResume:
		pg.ResumeURL = p.Profile.ResumeURL
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, string(view))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %s view: %w", view, err)
	}
	return pg, nil
}

func (b *Builder) home(pg *Page, p *types.Portfolio) error {
	if b.charts != nil {
		radar, err := b.charts.SkillRadar(p.Skills)
		if err != nil {
			return err
		}
		timeline, err := b.charts.Timeline(p.Timeline)
		if err != nil {
			return err
		}
		if !radar.Empty() {
			pg.SkillChart = &radar
		}
		if !timeline.Empty() {
			pg.TimelineChart = &timeline
		}
	}

	var err error
	if pg.Experiences, err = b.cards.Experiences(p.Experiences); err != nil {
		return err
	}
	if pg.Publications, err = b.cards.Publications(p.Publications); err != nil {
		return err
	}
	if pg.Certifications, err = b.cards.Certifications(p.Certifications); err != nil {
		return err
	}
	return nil
}

func navigation(active View) []NavItem {
	views := Views()
	nav := make([]NavItem, 0, len(views))
	for _, v := range views {
		nav = append(nav, NavItem{Label: v.Title(), Path: v.Path(), Active: v == active})
	}
	return nav
}
