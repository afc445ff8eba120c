// Package page assembles rendered cards and charts into the dashboard views.
package page

import (
	"errors"
	"fmt"
	"strings"
)

// View is one of the dashboard's top-level pages.
type View string

const (
	ViewHome     View = "home"
	ViewProjects View = "projects"
	ViewContact  View = "contact"
	ViewResume   View = "resume"
)

// ErrUnknownView is returned by ParseView for names that are not a View.
var ErrUnknownView = errors.New("unknown view")

// Views lists the views in navigation order.
func Views() []View {
	return []View{ViewHome, ViewProjects, ViewContact, ViewResume}
}

// ParseView maps a view name to a View. The empty string is the home view.
func ParseView(s string) (View, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return ViewHome, nil
	}
	for _, v := range Views() {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// Title is the navigation label of the view.
func (v View) Title() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewProjects:
		return "Projects"
	case ViewContact:
		return "Contact"
	case ViewResume:
		return "Resume"
	default:
		return string(v)
	}
}

// Path is the URL path that serves the view.
func (v View) Path() string {
	if v == ViewHome {
		return "/"
	}
	return "/" + string(v)
}
