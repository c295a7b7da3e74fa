package llm

import (
	"fmt"
	"strings"
)

// System prompts for the three AI operations.
const (
	SummarySystemPrompt = "You are an expert resume writer. Write tight, professional summaries in the first person without pronouns. Respond with the summary text only, no preamble and no markdown."

	DescriptionSystemPrompt = "You are an expert resume writer. Rewrite job descriptions as concise, achievement-focused bullet points. Respond with the rewritten description only, no preamble and no markdown."

	ExtractionSystemPrompt = "You are a resume parsing engine. Respond with JSON only. Never omit keys. Output must match the schema exactly."
)

// SummaryUserPrompt builds the prompt for enhancing a professional summary.
func SummaryUserPrompt(profession, current string) string {
	var b strings.Builder
	b.WriteString("Improve the professional summary below. Keep it under 60 words and highlight impact.\n")
	if strings.TrimSpace(profession) != "" {
		fmt.Fprintf(&b, "Profession: %s\n", profession)
	}
	b.WriteString("\nCurrent summary:\n")
	b.WriteString(strings.TrimSpace(current))
	return b.String()
}

// DescriptionUserPrompt builds the prompt for enhancing a job description.
func DescriptionUserPrompt(position, company, current string) string {
	var b strings.Builder
	b.WriteString("Improve the job description below. Use 2-4 short bullet points, lead with strong verbs, and quantify results where the text supports it. Do not invent facts.\n")
	if strings.TrimSpace(position) != "" {
		fmt.Fprintf(&b, "Position: %s\n", position)
	}
	if strings.TrimSpace(company) != "" {
		fmt.Fprintf(&b, "Company: %s\n", company)
	}
	b.WriteString("\nCurrent description:\n")
	b.WriteString(strings.TrimSpace(current))
	return b.String()
}

// extractionSchema is the JSON shape the parser must return. Dates are
// "YYYY-MM" strings; unknown values are empty strings, never null.
const extractionSchema = `{
  "title": "",
  "professional_summary": "",
  "skills": [""],
  "personal_info": {
    "full_name": "",
    "profession": "",
    "email": "",
    "phone": "",
    "location": "",
    "linkedin": "",
    "website": ""
  },
  "experience": [
    {"company": "", "position": "", "start_date": "YYYY-MM", "end_date": "YYYY-MM", "description": "", "is_current": false}
  ],
  "education": [
    {"institution": "", "degree": "", "field": "", "graduation_date": "YYYY-MM", "gpa": ""}
  ],
  "projects": [
    {"name": "", "type": "", "description": "", "live_link": "", "technologies": ""}
  ]
}`

// ExtractionUserPrompt builds the prompt for parsing raw resume text into
// structured JSON.
func ExtractionUserPrompt(resumeText string) string {
	return fmt.Sprintf(
		"Extract the resume below into JSON matching this schema exactly. Use empty strings for unknown values and [] for empty lists. Dates are \"YYYY-MM\". Set is_current true for an ongoing role and leave its end_date empty.\n\nSchema:\n%s\n\nResume text:\n%s",
		extractionSchema, resumeText,
	)
}
