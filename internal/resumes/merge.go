package resumes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Section keys accepted by Merge. These are the wire names clients use in
// partial updates.
const (
	SectionTitle               = "title"
	SectionPublic              = "public"
	SectionTemplate            = "template"
	SectionAccentColor         = "accent_color"
	SectionProfessionalSummary = "professional_summary"
	SectionSkills              = "skills"
	SectionPersonalInfo        = "personal_info"
	SectionExperience          = "experience"
	SectionEducation           = "education"
	SectionProjects            = "projects"
)

// PersonalInfoPatch is the partial-update shape for the contact block.
// Nil pointers mean "leave untouched"; a pointer to "" clears the field.
type PersonalInfoPatch struct {
	Image      *string `json:"image"`
	FullName   *string `json:"full_name"`
	Profession *string `json:"profession"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Location   *string `json:"location"`
	LinkedIn   *string `json:"linkedin"`
	Website    *string `json:"website"`
}

func (p PersonalInfoPatch) apply(info PersonalInfo) PersonalInfo {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&info.Image, p.Image)
	set(&info.FullName, p.FullName)
	set(&info.Profession, p.Profession)
	set(&info.Email, p.Email)
	set(&info.Phone, p.Phone)
	set(&info.Location, p.Location)
	set(&info.LinkedIn, p.LinkedIn)
	set(&info.Website, p.Website)
	return info
}

// Merge applies one section update to a copy of current and returns the
// merged resume. The input resume is never mutated; untouched sections carry
// over verbatim. Unknown section keys and invalid payloads are rejected.
func Merge(current Resume, section string, value json.RawMessage) (Resume, error) {
	out := current.Clone()

	switch section {
	case SectionTitle:
		var title string
		if err := strictDecode(value, &title); err != nil {
			return Resume{}, fmt.Errorf("%w: title: %v", ErrInvalidInput, err)
		}
		title = strings.TrimSpace(title)
		if title == "" {
			title = DefaultTitle
		}
		out.Title = title

	case SectionPublic:
		var public bool
		if err := strictDecode(value, &public); err != nil {
			return Resume{}, fmt.Errorf("%w: public: %v", ErrInvalidInput, err)
		}
		out.Public = public

	case SectionTemplate:
		var raw string
		if err := strictDecode(value, &raw); err != nil {
			return Resume{}, fmt.Errorf("%w: template: %v", ErrInvalidInput, err)
		}
		tpl, err := ParseTemplate(raw)
		if err != nil {
			return Resume{}, err
		}
		out.Template = tpl

	case SectionAccentColor:
		var color string
		if err := strictDecode(value, &color); err != nil {
			return Resume{}, fmt.Errorf("%w: accent_color: %v", ErrInvalidInput, err)
		}
		color = strings.TrimSpace(color)
		if color == "" {
			color = DefaultAccentColor
		}
		out.AccentColor = color

	case SectionProfessionalSummary:
		var summary string
		if err := strictDecode(value, &summary); err != nil {
			return Resume{}, fmt.Errorf("%w: professional_summary: %v", ErrInvalidInput, err)
		}
		out.ProfessionalSummary = summary

	case SectionSkills:
		var raw []string
		if err := strictDecode(value, &raw); err != nil {
			return Resume{}, fmt.Errorf("%w: skills: %v", ErrInvalidInput, err)
		}
		skills, err := cleanSkills(raw)
		if err != nil {
			return Resume{}, err
		}
		out.Skills = skills

	case SectionPersonalInfo:
		var patch PersonalInfoPatch
		if err := strictDecode(value, &patch); err != nil {
			return Resume{}, fmt.Errorf("%w: personal_info: %v", ErrInvalidInput, err)
		}
		out.PersonalInfo = patch.apply(out.PersonalInfo)

	case SectionExperience:
		var entries []Experience
		if err := strictDecode(value, &entries); err != nil {
			return Resume{}, fmt.Errorf("%w: experience: %v", ErrInvalidInput, err)
		}
		out.Experience = cleanExperience(entries)

	case SectionEducation:
		var entries []Education
		if err := strictDecode(value, &entries); err != nil {
			return Resume{}, fmt.Errorf("%w: education: %v", ErrInvalidInput, err)
		}
		if entries == nil {
			entries = []Education{}
		}
		out.Education = entries

	case SectionProjects:
		var entries []Project
		if err := strictDecode(value, &entries); err != nil {
			return Resume{}, fmt.Errorf("%w: projects: %v", ErrInvalidInput, err)
		}
		if entries == nil {
			entries = []Project{}
		}
		out.Projects = entries

	default:
		return Resume{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}

	out.UpdatedAt = time.Now().UTC()
	return out, nil
}

// MergeAll applies a keyed bundle of section updates in a stable order.
// Either every section merges or none do.
func MergeAll(current Resume, patch map[string]json.RawMessage) (Resume, error) {
	out := current.Clone()

	order := []string{
		SectionTitle, SectionPublic, SectionTemplate, SectionAccentColor,
		SectionProfessionalSummary, SectionSkills, SectionPersonalInfo,
		SectionExperience, SectionEducation, SectionProjects,
	}
	known := map[string]bool{}
	for _, key := range order {
		known[key] = true
	}
	for key := range patch {
		if !known[key] {
			return Resume{}, fmt.Errorf("%w: %q", ErrUnknownSection, key)
		}
	}

	var err error
	for _, key := range order {
		value, ok := patch[key]
		if !ok {
			continue
		}
		out, err = Merge(out, key, value)
		if err != nil {
			return Resume{}, err
		}
	}
	return out, nil
}

// cleanSkills trims entries, drops empties, and rejects duplicates.
// Comparison is case-insensitive so "Go" and "go" count as the same skill.
func cleanSkills(raw []string) ([]string, error) {
	skills := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSkill, s)
		}
		seen[key] = true
		skills = append(skills, s)
	}
	return skills, nil
}

// cleanExperience enforces the current-role rule: an entry marked current
// never carries an end date, whatever the client sent.
func cleanExperience(entries []Experience) []Experience {
	if entries == nil {
		return []Experience{}
	}
	out := make([]Experience, len(entries))
	for i, e := range entries {
		if e.IsCurrent {
			e.EndDate = ""
		}
		out[i] = e
	}
	return out
}

func strictDecode(raw json.RawMessage, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	var trailing any
	if err := dec.Decode(&trailing); err == nil {
		return fmt.Errorf("trailing data after value")
	}
	return nil
}
