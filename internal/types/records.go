// Package types provides type definitions for the structured portfolio content used throughout the dashboard.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Kind identifies one of the four record kinds that render as cards.
type Kind string

const (
	KindExperience    Kind = "experience"
	KindProject       Kind = "project"
	KindPublication   Kind = "publication"
	KindCertification Kind = "certification"
)

// Kinds lists every record kind in display order.
func Kinds() []Kind {
	return []Kind{KindExperience, KindProject, KindPublication, KindCertification}
}

// ParseKind maps a kind name (singular or plural) to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "experience", "experiences":
		return KindExperience, true
	case "project", "projects":
		return KindProject, true
	case "publication", "publications":
		return KindPublication, true
	case "certification", "certifications":
		return KindCertification, true
	default:
		return "", false
	}
}

// Record is the closed set of card-producing records.
// Only the four kinds declared in this package implement it.
type Record interface {
	Kind() Kind
	record()
}

// Period is a display-only date range such as "June 2023" to "September 2023".
type Period struct {
	Start string `json:"start" yaml:"start" validate:"required"`
	End   string `json:"end" yaml:"end" validate:"required"`
}

// Experience represents one role held at one company
type Experience struct {
	Role         string   `json:"role" yaml:"role" validate:"required"`
	Company      string   `json:"company" yaml:"company" validate:"required"`
	Period       Period   `json:"period" yaml:"period"`
	Location     string   `json:"location" yaml:"location" validate:"required"`
	Achievements []string `json:"achievements,omitempty" yaml:"achievements,omitempty"`
}

// Metric is a single named outcome attached to a project, e.g. "Accuracy" -> "85%".
type Metric struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Value string `json:"value" yaml:"value" validate:"required"`
}

// Project represents a portfolio project card
type Project struct {
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Description  string   `json:"description" yaml:"description" validate:"required"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	// Metrics is optional; order is preserved when rendering.
	Metrics []Metric `json:"metrics,omitempty" yaml:"metrics,omitempty" validate:"dive"`
}

// HasMetrics reports whether the project carries any metrics.
func (p Project) HasMetrics() bool {
	return len(p.Metrics) > 0
}

// Publication represents a paper published at a conference or in a journal.
// Exactly one of Conference and Journal is expected to be set.
type Publication struct {
	Title      string `json:"title" yaml:"title" validate:"required"`
	Conference string `json:"conference,omitempty" yaml:"conference,omitempty"`
	Journal    string `json:"journal,omitempty" yaml:"journal,omitempty"`
	Identifier string `json:"identifier" yaml:"identifier" validate:"required"`
	Impact     string `json:"impact" yaml:"impact" validate:"required"`
}

// Venue returns the venue label ("Conference" or "Journal") and its value.
// Conference wins when both are present. ok is false when neither is set.
func (p Publication) Venue() (label, value string, ok bool) {
	switch {
	case p.Conference != "":
		return "Conference", p.Conference, true
	case p.Journal != "":
		return "Journal", p.Journal, true
	default:
		return "", "", false
	}
}

// Certification represents a completed certification
type Certification struct {
	Title    string `json:"title" yaml:"title" validate:"required"`
	Provider string `json:"provider" yaml:"provider" validate:"required"`
	Year     string `json:"year" yaml:"year" validate:"required"`
}

func (Experience) Kind() Kind    { return KindExperience }
func (Project) Kind() Kind       { return KindProject }
func (Publication) Kind() Kind   { return KindPublication }
func (Certification) Kind() Kind { return KindCertification }

func (Experience) record()    {}
func (Project) record()       {}
func (Publication) record()   {}
func (Certification) record() {}
