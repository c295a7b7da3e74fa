package resumes

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Template identifies one of the fixed set of visual layouts.
type Template string

const (
	TemplateClassic      Template = "classic"
	TemplateModern       Template = "modern"
	TemplateMinimal      Template = "minimal"
	TemplateMinimalImage Template = "minimal-image"
)

// Defaults applied when a resume is created empty.
const (
	DefaultTitle       = "Untitled Resume"
	DefaultAccentColor = "#3b82f6"
)

// ParseTemplate validates a raw template value. Unknown values are rejected,
// never silently defaulted.
func ParseTemplate(raw string) (Template, error) {
	switch Template(strings.TrimSpace(raw)) {
	case TemplateClassic, TemplateModern, TemplateMinimal, TemplateMinimalImage:
		return Template(strings.TrimSpace(raw)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTemplate, raw)
	}
}

// PersonalInfo holds the contact block. All fields are optional strings;
// empty means not provided.
type PersonalInfo struct {
	Image      string `json:"image"`
	FullName   string `json:"full_name"`
	Profession string `json:"profession"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	LinkedIn   string `json:"linkedin"`
	Website    string `json:"website"`
}

// Experience is one work-history entry. EndDate empty means absent; an entry
// with IsCurrent set always has an empty EndDate.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
	IsCurrent   bool   `json:"is_current"`
}

// Education is one education entry.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree,omitempty"`
	Field          string `json:"field,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// Project is one project entry.
type Project struct {
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	Description  string `json:"description,omitempty"`
	LiveLink     string `json:"live_link,omitempty"`
	Technologies string `json:"technologies,omitempty"`
}

// Resume is the canonical persisted representation of one resume, owned by
// one user. Section slices preserve insertion order, which is display order.
type Resume struct {
	ID                  string       `json:"id"`
	UserID              string       `json:"user_id"`
	Title               string       `json:"title"`
	Public              bool         `json:"public"`
	Template            Template     `json:"template"`
	AccentColor         string       `json:"accent_color"`
	ProfessionalSummary string       `json:"professional_summary"`
	Skills              []string     `json:"skills"`
	PersonalInfo        PersonalInfo `json:"personal_info"`
	Experience          []Experience `json:"experience"`
	Education           []Education  `json:"education"`
	Projects            []Project    `json:"projects"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// NewResume returns an empty resume with defaults applied. ID assignment is
// left to the service layer.
func NewResume(userID, title string) Resume {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	now := time.Now().UTC()
	return Resume{
		UserID:      userID,
		Title:       title,
		Template:    TemplateClassic,
		AccentColor: DefaultAccentColor,
		Skills:      []string{},
		Experience:  []Experience{},
		Education:   []Education{},
		Projects:    []Project{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Clone returns a deep copy. Mutating the copy never affects the original.
// Empty-but-present section slices stay non-nil so they keep serializing as
// [] rather than null.
func (r Resume) Clone() Resume {
	out := r
	out.Skills = slices.Clone(r.Skills)
	out.Experience = slices.Clone(r.Experience)
	out.Education = slices.Clone(r.Education)
	out.Projects = slices.Clone(r.Projects)
	return out
}
