package resumes

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeExtractionEmptyObject(t *testing.T) {
	ext, err := NormalizeExtraction(json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("NormalizeExtraction: %v", err)
	}

	if ext.Title != "" || ext.ProfessionalSummary != "" {
		t.Fatalf("expected empty strings, got %+v", ext)
	}
	if len(ext.Skills) != 0 || len(ext.Experience) != 0 || len(ext.Education) != 0 || len(ext.Projects) != 0 {
		t.Fatalf("expected empty lists, got %+v", ext)
	}
	if ext.Dropped.Total() != 0 {
		t.Fatalf("expected no drops, got %+v", ext.Dropped)
	}
}

func TestNormalizeExtractionNonObject(t *testing.T) {
	for _, raw := range []string{`[]`, `"text"`, `42`, `null`, `not json`} {
		if _, err := NormalizeExtraction(json.RawMessage(raw)); !errors.Is(err, ErrUnparseable) {
			t.Fatalf("expected ErrUnparseable for %s, got %v", raw, err)
		}
	}
}

func TestNormalizeExtractionWrongTypedFields(t *testing.T) {
	raw := json.RawMessage(`{
		"title": 7,
		"professional_summary": ["not","a","string"],
		"skills": "Go, SQL",
		"personal_info": "Dana",
		"experience": {"company": "Acme"}
	}`)

	ext, err := NormalizeExtraction(raw)
	if err != nil {
		t.Fatalf("NormalizeExtraction: %v", err)
	}
	if ext.Title != "" {
		t.Fatalf("expected wrong-typed title coerced to empty, got %q", ext.Title)
	}
	if !reflect.DeepEqual(ext.Skills, []string{}) {
		t.Fatalf("expected wrong-typed skills coerced to empty list, got %v", ext.Skills)
	}
	if ext.PersonalInfo != (PersonalInfo{}) {
		t.Fatalf("expected wrong-typed personal_info zeroed, got %+v", ext.PersonalInfo)
	}
	if len(ext.Experience) != 0 {
		t.Fatalf("expected non-list experience coerced to empty, got %v", ext.Experience)
	}
}

func TestNormalizeExtractionDropsEntriesMissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{
		"experience": [
			{"company": "Acme", "position": "Engineer"},
			{"position": "Mystery Role"},
			{"company": "NoTitle Inc", "start_date": "2020-01"},
			"not an object"
		],
		"education": [
			{"institution": "TU Berlin"},
			{"degree": "BSc"}
		],
		"projects": [
			{"name": "CLI tool"},
			{"description": "nameless"}
		]
	}`)

	ext, err := NormalizeExtraction(raw)
	if err != nil {
		t.Fatalf("NormalizeExtraction: %v", err)
	}

	if len(ext.Experience) != 1 || ext.Experience[0].Company != "Acme" {
		t.Fatalf("expected one surviving experience entry, got %v", ext.Experience)
	}
	if ext.Dropped.Experience != 3 {
		t.Fatalf("expected 3 dropped experience entries, got %d", ext.Dropped.Experience)
	}
	if len(ext.Education) != 1 || ext.Dropped.Education != 1 {
		t.Fatalf("expected 1 kept / 1 dropped education, got %v dropped=%d", ext.Education, ext.Dropped.Education)
	}
	if len(ext.Projects) != 1 || ext.Dropped.Projects != 1 {
		t.Fatalf("expected 1 kept / 1 dropped project, got %v dropped=%d", ext.Projects, ext.Dropped.Projects)
	}
	if ext.Dropped.Total() != 5 {
		t.Fatalf("expected total 5 drops, got %d", ext.Dropped.Total())
	}
}

func TestNormalizeExtractionCurrentRoleClearsEnd(t *testing.T) {
	raw := json.RawMessage(`{
		"experience": [
			{"company": "Acme", "position": "Engineer", "is_current": true, "end_date": "2024-05"}
		]
	}`)

	ext, err := NormalizeExtraction(raw)
	if err != nil {
		t.Fatalf("NormalizeExtraction: %v", err)
	}
	if !ext.Experience[0].IsCurrent || ext.Experience[0].EndDate != "" {
		t.Fatalf("expected current entry with cleared end date, got %+v", ext.Experience[0])
	}
}

func TestNormalizeExtractionAcceptsAlternateKeys(t *testing.T) {
	raw := json.RawMessage(`{
		"professionalSummary": "Seasoned engineer.",
		"personalInfo": {
			"fullName": "Dana Smith",
			"professional": "Engineer",
			"image": "https://example.com/p.jpg",
			"linkedIn": "linkedin.com/in/dana"
		},
		"workExperience": [
			{"employer": "Acme", "role": "Engineer", "startDate": "2020-02", "current": true}
		]
	}`)

	ext, err := NormalizeExtraction(raw)
	if err != nil {
		t.Fatalf("NormalizeExtraction: %v", err)
	}
	if ext.ProfessionalSummary != "Seasoned engineer." {
		t.Fatalf("expected camelCase summary accepted, got %q", ext.ProfessionalSummary)
	}
	if ext.PersonalInfo.FullName != "Dana Smith" || ext.PersonalInfo.LinkedIn != "linkedin.com/in/dana" {
		t.Fatalf("expected camelCase personal info accepted, got %+v", ext.PersonalInfo)
	}
	if ext.PersonalInfo.Profession != "Engineer" {
		t.Fatalf("expected professional alias accepted, got %q", ext.PersonalInfo.Profession)
	}
	if ext.PersonalInfo.Image != "https://example.com/p.jpg" {
		t.Fatalf("expected image carried through, got %q", ext.PersonalInfo.Image)
	}
	if len(ext.Experience) != 1 || ext.Experience[0].Company != "Acme" || !ext.Experience[0].IsCurrent {
		t.Fatalf("expected alternate experience keys accepted, got %+v", ext.Experience)
	}
}

func TestNormalizeExtractionDeduplicatesSkills(t *testing.T) {
	raw := json.RawMessage(`{"skills": ["Go", "go", " SQL ", "", 7]}`)

	ext, err := NormalizeExtraction(raw)
	if err != nil {
		t.Fatalf("NormalizeExtraction: %v", err)
	}
	if !reflect.DeepEqual(ext.Skills, []string{"Go", "SQL"}) {
		t.Fatalf("expected deduplicated trimmed skills, got %v", ext.Skills)
	}
}

func TestFromExtraction(t *testing.T) {
	ext := Extraction{
		Title:               "Imported Resume",
		ProfessionalSummary: "Summary.",
		Skills:              []string{"Go"},
		Experience:          []Experience{{Company: "Acme"}},
	}

	r := FromExtraction("user-1", "", ext)
	if r.Title != "Imported Resume" {
		t.Fatalf("expected extraction title used, got %q", r.Title)
	}
	if r.Template != TemplateClassic || r.AccentColor != DefaultAccentColor {
		t.Fatalf("expected defaults applied, got %+v", r)
	}

	r = FromExtraction("user-1", "Caller Title", ext)
	if r.Title != "Caller Title" {
		t.Fatalf("expected caller title to win, got %q", r.Title)
	}
}
