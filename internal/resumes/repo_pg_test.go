package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateMarshalsSections(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := NewResume("user-1", "My Resume")
	resume.ID = "resume-1"
	resume.Skills = []string{"Go"}
	resume.Experience = []Experience{{Company: "Acme", Position: "Engineer"}}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID,
			resume.UserID,
			resume.Title,
			resume.Public,
			string(resume.Template),
			resume.AccentColor,
			resume.ProfessionalSummary,
			[]byte(`["Go"]`),
			sqlmock.AnyArg(), // personal_info
			sqlmock.AnyArg(), // experience
			[]byte(`[]`),     // education
			[]byte(`[]`),     // projects
			resume.CreatedAt,
			resume.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDScansSections(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "title", "public", "template", "accent_color", "professional_summary",
		"skills", "personal_info", "experience", "education", "projects", "created_at", "updated_at",
	}).AddRow(
		"resume-1", "user-1", "My Resume", true, "modern", "#112233", "Summary.",
		[]byte(`["Go","SQL"]`),
		[]byte(`{"image":"","full_name":"Dana Smith","profession":"","email":"","phone":"","location":"","linkedin":"","website":""}`),
		[]byte(`[{"company":"Acme","position":"Engineer","is_current":true}]`),
		[]byte(`[]`),
		[]byte(`[]`),
		now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("user-1", "resume-1").
		WillReturnRows(rows)

	resume, err := repo.GetByID(context.Background(), "user-1", "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if resume.Template != TemplateModern {
		t.Fatalf("expected modern template, got %q", resume.Template)
	}
	if len(resume.Skills) != 2 || resume.Skills[0] != "Go" {
		t.Fatalf("expected skills unmarshaled, got %v", resume.Skills)
	}
	if resume.PersonalInfo.FullName != "Dana Smith" {
		t.Fatalf("expected personal info unmarshaled, got %+v", resume.PersonalInfo)
	}
	if len(resume.Experience) != 1 || !resume.Experience[0].IsCurrent {
		t.Fatalf("expected experience unmarshaled, got %+v", resume.Experience)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateReportsMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := NewResume("user-1", "My Resume")
	resume.ID = "resume-1"

	mock.ExpectExec("UPDATE resumes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), resume); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on zero rows, got %v", err)
	}
}

func TestPGRepoDeleteScopedToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("user-1", "resume-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "user-1", "resume-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("intruder", "resume-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "intruder", "resume-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other owner, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
