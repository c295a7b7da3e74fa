package render

import (
	"strings"

	"resume-builder/internal/resumes"
)

// Project turns a resume into a display document for its selected template.
// It is a pure function of its input: the resume is never mutated, and
// projecting the same resume twice yields the same document.
//
// Empty sections are omitted entirely. Templates change header treatment and
// styling, never content or ordering: every non-empty section appears in
// every template's output, in the same fixed sequence.
func Project(r resumes.Resume) Document {
	doc := Document{
		Template: r.Template,
		Accent:   accentOrDefault(r.AccentColor),
		Header:   projectHeader(r),
	}

	available := map[string]Section{}
	if body := strings.TrimSpace(r.ProfessionalSummary); body != "" {
		available[SectionSummary] = Section{Kind: SectionSummary, Heading: "Professional Summary", Body: body}
	}
	if len(r.Experience) > 0 {
		available[SectionExperience] = Section{Kind: SectionExperience, Heading: "Experience", Items: projectExperience(r.Experience)}
	}
	if len(r.Education) > 0 {
		available[SectionEducation] = Section{Kind: SectionEducation, Heading: "Education", Items: projectEducation(r.Education)}
	}
	if len(r.Projects) > 0 {
		available[SectionProjects] = Section{Kind: SectionProjects, Heading: "Projects", Items: projectProjects(r.Projects)}
	}
	if len(r.Skills) > 0 {
		available[SectionSkills] = Section{Kind: SectionSkills, Heading: "Skills", Tags: append([]string(nil), r.Skills...)}
	}

	for _, kind := range sectionOrder(r.Template) {
		if section, ok := available[kind]; ok {
			doc.Sections = append(doc.Sections, section)
		}
	}
	return doc
}

// sectionOrder is the fixed section sequence shared by every template:
// summary, experience, projects, then education and skills. Templates restyle
// sections but never reorder them.
func sectionOrder(resumes.Template) []string {
	return []string{SectionSummary, SectionExperience, SectionProjects, SectionEducation, SectionSkills}
}

func projectHeader(r resumes.Resume) Header {
	info := r.PersonalInfo
	h := Header{
		Name:       info.FullName,
		Profession: info.Profession,
	}
	// Only the minimal-image layout renders a photo.
	if r.Template == resumes.TemplateMinimalImage {
		h.Image = info.Image
	}
	if info.Email != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "email", Value: info.Email, Href: "mailto:" + info.Email})
	}
	if info.Phone != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "phone", Value: info.Phone})
	}
	if info.Location != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "location", Value: info.Location})
	}
	if info.LinkedIn != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "linkedin", Value: info.LinkedIn, Href: linkHref(info.LinkedIn)})
	}
	if info.Website != "" {
		h.Contacts = append(h.Contacts, Contact{Kind: "website", Value: info.Website, Href: linkHref(info.Website)})
	}
	return h
}

func projectExperience(entries []resumes.Experience) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{
			Title:     e.Position,
			Subtitle:  e.Company,
			DateRange: FormatRange(e.StartDate, e.EndDate, e.IsCurrent),
			Detail:    e.Description,
		})
	}
	return items
}

func projectEducation(entries []resumes.Education) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		degree := e.Degree
		if e.Field != "" {
			if degree != "" {
				degree += " in " + e.Field
			} else {
				degree = e.Field
			}
		}
		item := Item{
			Title:     degree,
			Subtitle:  e.Institution,
			DateRange: FormatMonth(e.GraduationDate),
		}
		if e.GPA != "" {
			item.Meta = "GPA: " + e.GPA
		}
		items = append(items, item)
	}
	return items
}

func projectProjects(entries []resumes.Project) []Item {
	items := make([]Item, 0, len(entries))
	for _, p := range entries {
		item := Item{
			Title:  p.Name,
			Detail: p.Description,
			Link:   linkHref(p.LiveLink),
		}
		if p.Type != "" {
			item.Subtitle = p.Type
		}
		if p.Technologies != "" {
			item.Meta = p.Technologies
		}
		items = append(items, item)
	}
	return items
}

func accentOrDefault(color string) string {
	color = strings.TrimSpace(color)
	if color == "" {
		return resumes.DefaultAccentColor
	}
	return color
}

func linkHref(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
