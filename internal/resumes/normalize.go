package resumes

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Extraction is the normalized shape of a model-extracted resume. It mirrors
// the editable sections of Resume without identity or timestamps.
type Extraction struct {
	Title               string       `json:"title"`
	ProfessionalSummary string       `json:"professional_summary"`
	Skills              []string     `json:"skills"`
	PersonalInfo        PersonalInfo `json:"personal_info"`
	Experience          []Experience `json:"experience"`
	Education           []Education  `json:"education"`
	Projects            []Project    `json:"projects"`

	Dropped DroppedCounts `json:"-"`
}

// DroppedCounts records entries discarded during normalization because a
// required field was missing or unusable.
type DroppedCounts struct {
	Experience int
	Education  int
	Projects   int
}

func (d DroppedCounts) Total() int {
	return d.Experience + d.Education + d.Projects
}

// NormalizeExtraction coerces arbitrary model output into an Extraction.
// Model output is never trusted: wrong-typed fields collapse to their zero
// value, list entries missing their required field are dropped and counted,
// and only a payload that is not a JSON object at all is an error.
func NormalizeExtraction(raw json.RawMessage) (Extraction, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return Extraction{}, fmt.Errorf("%w", ErrUnparseable)
	}

	ext := Extraction{
		Title:               stringField(m, "title"),
		ProfessionalSummary: stringField(m, "professional_summary", "professionalSummary", "summary"),
		Skills:              normalizeSkills(m["skills"]),
		PersonalInfo:        normalizePersonalInfo(m["personal_info"], m["personalInfo"]),
	}
	ext.Experience, ext.Dropped.Experience = normalizeExperience(pick(m, "experience", "work_experience", "workExperience"))
	ext.Education, ext.Dropped.Education = normalizeEducation(m["education"])
	ext.Projects, ext.Dropped.Projects = normalizeProjects(m["projects"])
	return ext, nil
}

// FromExtraction builds a fresh resume seeded with extracted content.
// The caller's title wins over the extracted one when provided.
func FromExtraction(userID, title string, ext Extraction) Resume {
	if strings.TrimSpace(title) == "" {
		title = ext.Title
	}
	r := NewResume(userID, title)
	r.ProfessionalSummary = ext.ProfessionalSummary
	r.Skills = ext.Skills
	r.PersonalInfo = ext.PersonalInfo
	r.Experience = ext.Experience
	r.Education = ext.Education
	r.Projects = ext.Projects
	return r
}

func normalizeSkills(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	skills := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		skills = append(skills, s)
	}
	return skills
}

func normalizePersonalInfo(candidates ...any) PersonalInfo {
	var m map[string]any
	for _, c := range candidates {
		if mm, ok := c.(map[string]any); ok {
			m = mm
			break
		}
	}
	if m == nil {
		return PersonalInfo{}
	}
	return PersonalInfo{
		Image:      stringField(m, "image"),
		FullName:   stringField(m, "full_name", "fullName", "name"),
		Profession: stringField(m, "profession", "professional", "job_title", "jobTitle"),
		Email:      stringField(m, "email"),
		Phone:      stringField(m, "phone"),
		Location:   stringField(m, "location"),
		LinkedIn:   stringField(m, "linkedin", "linkedIn"),
		Website:    stringField(m, "website"),
	}
}

func normalizeExperience(v any) ([]Experience, int) {
	items, ok := v.([]any)
	if !ok {
		return []Experience{}, 0
	}
	out := make([]Experience, 0, len(items))
	dropped := 0
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			dropped++
			continue
		}
		e := Experience{
			Company:     stringField(m, "company", "employer"),
			Position:    stringField(m, "position", "title", "role"),
			StartDate:   stringField(m, "start_date", "startDate"),
			EndDate:     stringField(m, "end_date", "endDate"),
			Description: stringField(m, "description"),
			IsCurrent:   boolField(m, "is_current", "isCurrent", "current"),
		}
		if e.Company == "" || e.Position == "" {
			dropped++
			continue
		}
		if e.IsCurrent {
			e.EndDate = ""
		}
		out = append(out, e)
	}
	return out, dropped
}

func normalizeEducation(v any) ([]Education, int) {
	items, ok := v.([]any)
	if !ok {
		return []Education{}, 0
	}
	out := make([]Education, 0, len(items))
	dropped := 0
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			dropped++
			continue
		}
		e := Education{
			Institution:    stringField(m, "institution", "school"),
			Degree:         stringField(m, "degree"),
			Field:          stringField(m, "field", "field_of_study", "fieldOfStudy"),
			GraduationDate: stringField(m, "graduation_date", "graduationDate"),
			GPA:            stringField(m, "gpa"),
		}
		if e.Institution == "" {
			dropped++
			continue
		}
		out = append(out, e)
	}
	return out, dropped
}

func normalizeProjects(v any) ([]Project, int) {
	items, ok := v.([]any)
	if !ok {
		return []Project{}, 0
	}
	out := make([]Project, 0, len(items))
	dropped := 0
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			dropped++
			continue
		}
		p := Project{
			Name:         stringField(m, "name", "title"),
			Type:         stringField(m, "type"),
			Description:  stringField(m, "description"),
			LiveLink:     stringField(m, "live_link", "liveLink", "url"),
			Technologies: stringField(m, "technologies", "tech_stack", "techStack"),
		}
		if p.Name == "" {
			dropped++
			continue
		}
		out = append(out, p)
	}
	return out, dropped
}

func pick(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func boolField(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return false
}
