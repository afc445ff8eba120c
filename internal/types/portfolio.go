package types

// Stat is one quick-stat tile on the home view, e.g. "Projects" -> "10+".
type Stat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// SocialLink is an outbound profile link shown on the contact view.
type SocialLink struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Profile holds the header and footer content of the dashboard
type Profile struct {
	Name     string       `json:"name" yaml:"name"`
	Headline string       `json:"headline" yaml:"headline"`
	Email    string       `json:"email,omitempty" yaml:"email,omitempty"`
	Stats    []Stat       `json:"stats,omitempty" yaml:"stats,omitempty"`
	Links    []SocialLink `json:"links,omitempty" yaml:"links,omitempty"`
	Footer   string       `json:"footer,omitempty" yaml:"footer,omitempty"`
	// ResumeURL is where the resume download link points. Empty renders a disabled link.
	ResumeURL string `json:"resume_url,omitempty" yaml:"resume_url,omitempty"`
}

// Skill is a single axis of the skills radar chart; Level ranges 0-10.
type Skill struct {
	Name  string  `json:"name" yaml:"name"`
	Level float64 `json:"level" yaml:"level"`
}

// TimelineEntry is one bar of the experience timeline chart.
// Start and End use YYYY-MM-DD.
type TimelineEntry struct {
	Task  string `json:"task" yaml:"task"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
	Role  string `json:"role,omitempty" yaml:"role,omitempty"`
}

// Portfolio is the complete, immutable content of the dashboard
type Portfolio struct {
	Profile        Profile         `json:"profile" yaml:"profile"`
	Skills         []Skill         `json:"skills,omitempty" yaml:"skills,omitempty"`
	Timeline       []TimelineEntry `json:"timeline,omitempty" yaml:"timeline,omitempty"`
	Experiences    []Experience    `json:"experiences,omitempty" yaml:"experiences,omitempty"`
	Projects       []Project       `json:"projects,omitempty" yaml:"projects,omitempty"`
	Publications   []Publication   `json:"publications,omitempty" yaml:"publications,omitempty"`
	Certifications []Certification `json:"certifications,omitempty" yaml:"certifications,omitempty"`
}

// Count returns the number of records of the given kind.
func (p *Portfolio) Count(kind Kind) int {
	switch kind {
	case KindExperience:
		return len(p.Experiences)
	case KindProject:
		return len(p.Projects)
	case KindPublication:
		return len(p.Publications)
	case KindCertification:
		return len(p.Certifications)
	default:
		return 0
	}
}
