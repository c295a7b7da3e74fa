package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements ResumesRepo using Postgres. Section lists live in JSONB
// columns so the document round-trips without a join fan-out.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, title, public, template, accent_color, professional_summary, skills, personal_info, experience, education, projects, created_at, updated_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    title,
    public,
    template,
    accent_color,
    professional_summary,
    skills,
    personal_info,
    experience,
    education,
    projects,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	cols, err := marshalSections(resume)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.Title,
		resume.Public,
		string(resume.Template),
		resume.AccentColor,
		resume.ProfessionalSummary,
		cols.skills,
		cols.personalInfo,
		cols.experience,
		cols.education,
		cols.projects,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByID fetches a resume owned by the given user.
func (r *PGRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND id = $2
LIMIT 1`
	return scanResume(r.DB.QueryRowContext(ctx, query, userId, resumeID))
}

// GetPublic fetches a resume only if it has been shared publicly.
func (r *PGRepo) GetPublic(ctx context.Context, resumeID string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1 AND public = TRUE
LIMIT 1`
	return scanResume(r.DB.QueryRowContext(ctx, query, resumeID))
}

// ListByUser lists the user's resumes, most recently updated first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string) ([]Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Update replaces the stored resume. The owner must match or the update
// reports ErrNotFound.
func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes
SET title = $1,
    public = $2,
    template = $3,
    accent_color = $4,
    professional_summary = $5,
    skills = $6,
    personal_info = $7,
    experience = $8,
    education = $9,
    projects = $10,
    updated_at = $11
WHERE user_id = $12 AND id = $13`

	cols, err := marshalSections(resume)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		resume.Title,
		resume.Public,
		string(resume.Template),
		resume.AccentColor,
		resume.ProfessionalSummary,
		cols.skills,
		cols.personalInfo,
		cols.experience,
		cols.education,
		cols.projects,
		resume.UpdatedAt,
		resume.UserID,
		resume.ID,
	)
	if err != nil {
		return err
	}
	updated, _ := res.RowsAffected()
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume owned by the given user.
func (r *PGRepo) Delete(ctx context.Context, userId, resumeID string) error {
	const query = `
DELETE FROM resumes
WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userId, resumeID)
	if err != nil {
		return err
	}
	deleted, _ := res.RowsAffected()
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

type sectionColumns struct {
	skills       []byte
	personalInfo []byte
	experience   []byte
	education    []byte
	projects     []byte
}

func marshalSections(resume Resume) (sectionColumns, error) {
	var cols sectionColumns
	var err error
	if cols.skills, err = json.Marshal(resume.Skills); err != nil {
		return cols, fmt.Errorf("marshal skills: %w", err)
	}
	if cols.personalInfo, err = json.Marshal(resume.PersonalInfo); err != nil {
		return cols, fmt.Errorf("marshal personal_info: %w", err)
	}
	if cols.experience, err = json.Marshal(resume.Experience); err != nil {
		return cols, fmt.Errorf("marshal experience: %w", err)
	}
	if cols.education, err = json.Marshal(resume.Education); err != nil {
		return cols, fmt.Errorf("marshal education: %w", err)
	}
	if cols.projects, err = json.Marshal(resume.Projects); err != nil {
		return cols, fmt.Errorf("marshal projects: %w", err)
	}
	return cols, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var template string
	var skills, personalInfo, experience, education, projects []byte

	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&resume.Public,
		&template,
		&resume.AccentColor,
		&resume.ProfessionalSummary,
		&skills,
		&personalInfo,
		&experience,
		&education,
		&projects,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}

	resume.Template = Template(template)
	resume.Skills = []string{}
	resume.Experience = []Experience{}
	resume.Education = []Education{}
	resume.Projects = []Project{}

	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &resume.Skills); err != nil {
			return Resume{}, fmt.Errorf("unmarshal skills: %w", err)
		}
	}
	if len(personalInfo) > 0 {
		if err := json.Unmarshal(personalInfo, &resume.PersonalInfo); err != nil {
			return Resume{}, fmt.Errorf("unmarshal personal_info: %w", err)
		}
	}
	if len(experience) > 0 {
		if err := json.Unmarshal(experience, &resume.Experience); err != nil {
			return Resume{}, fmt.Errorf("unmarshal experience: %w", err)
		}
	}
	if len(education) > 0 {
		if err := json.Unmarshal(education, &resume.Education); err != nil {
			return Resume{}, fmt.Errorf("unmarshal education: %w", err)
		}
	}
	if len(projects) > 0 {
		if err := json.Unmarshal(projects, &resume.Projects); err != nil {
			return Resume{}, fmt.Errorf("unmarshal projects: %w", err)
		}
	}
	return resume, nil
}

var _ ResumesRepo = (*PGRepo)(nil)
