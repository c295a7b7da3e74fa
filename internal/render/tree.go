package render

import "resume-builder/internal/resumes"

// Section kinds emitted by the projector.
const (
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
)

// Document is the template-shaped projection of a resume. It carries only
// display strings; all formatting decisions are made before templating.
type Document struct {
	Template resumes.Template `json:"template"`
	Accent   string           `json:"accent"`
	Header   Header           `json:"header"`
	Sections []Section        `json:"sections"`
}

// Header is the top block: identity plus contact lines.
type Header struct {
	Name       string    `json:"name"`
	Profession string    `json:"profession"`
	Image      string    `json:"image,omitempty"`
	Contacts   []Contact `json:"contacts,omitempty"`
}

// Contact is one contact line. Href is empty for plain-text entries.
type Contact struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
}

// Section is one titled block of the document. Exactly one of Body, Items,
// or Tags is populated, keyed by Kind.
type Section struct {
	Kind    string   `json:"kind"`
	Heading string   `json:"heading"`
	Body    string   `json:"body,omitempty"`
	Items   []Item   `json:"items,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Item is one entry inside a list section.
type Item struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	DateRange string `json:"date_range,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Link      string `json:"link,omitempty"`
	Meta      string `json:"meta,omitempty"`
}
