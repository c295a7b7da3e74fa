package resumes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, repo ResumesRepo, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &Service{Repo: repo}
	handler := NewHandler(svc)

	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterPublicRoutes(api)

	authed := api.Group("")
	authed.Use(func(c *gin.Context) {
		c.Set("userId", userID)
		c.Next()
	})
	handler.RegisterRoutes(authed)
	return router
}

func TestCreateAndGetResume(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(t, repo, "user-1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", strings.NewReader(`{"title":"Backend Resume"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created Resume
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" || created.Title != "Backend Resume" {
		t.Fatalf("unexpected created resume %+v", created)
	}
	if created.Template != TemplateClassic || created.AccentColor != DefaultAccentColor {
		t.Fatalf("expected defaults applied, got %+v", created)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ID, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestCreateResumeDefaultsTitle(t *testing.T) {
	router := newTestRouter(t, NewMemoryRepo(), "user-1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created Resume
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Title != DefaultTitle {
		t.Fatalf("expected default title, got %q", created.Title)
	}
}

func TestPatchSectionEndpoint(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(t, repo, "user-1")

	resume := NewResume("user-1", "My Resume")
	resume.ID = "resume-1"
	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/resumes/resume-1/sections/skills", strings.NewReader(`["Go","SQL"]`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	stored, err := repo.GetByID(context.Background(), "user-1", "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(stored.Skills) != 2 {
		t.Fatalf("expected skills persisted, got %v", stored.Skills)
	}

	// Invalid payload leaves the stored resume untouched.
	req = httptest.NewRequest(http.MethodPatch, "/api/v1/resumes/resume-1/sections/template", strings.NewReader(`"fancy"`))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown template, got %d", resp.Code)
	}

	stored, err = repo.GetByID(context.Background(), "user-1", "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Template != TemplateClassic {
		t.Fatalf("expected template unchanged after rejected patch, got %q", stored.Template)
	}
}

func TestPatchUnknownSection(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(t, repo, "user-1")

	resume := NewResume("user-1", "My Resume")
	resume.ID = "resume-1"
	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/resumes/resume-1/sections/hobbies", strings.NewReader(`["chess"]`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown section, got %d", resp.Code)
	}
}

func TestResumeOwnershipIsolation(t *testing.T) {
	repo := NewMemoryRepo()

	resume := NewResume("owner", "Private Resume")
	resume.ID = "resume-1"
	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	router := newTestRouter(t, repo, "intruder")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/resume-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for other user's resume, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/resumes/resume-1", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 deleting other user's resume, got %d", resp.Code)
	}
}

func TestPublicResumeEndpoint(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(t, repo, "user-1")

	private := NewResume("owner", "Private")
	private.ID = "resume-private"
	shared := NewResume("owner", "Shared")
	shared.ID = "resume-shared"
	shared.Public = true
	for _, r := range []Resume{private, shared} {
		if err := repo.Create(context.Background(), r); err != nil {
			t.Fatalf("seed resume: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/resumes/resume-shared", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for public resume, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/public/resumes/resume-private", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for private resume, got %d", resp.Code)
	}
}

func TestListReturnsSummaries(t *testing.T) {
	repo := NewMemoryRepo()
	router := newTestRouter(t, repo, "user-1")

	resume := NewResume("user-1", "My Resume")
	resume.ID = "resume-1"
	resume.ProfessionalSummary = "should not appear in list"
	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var items []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if _, ok := items[0]["professional_summary"]; ok {
		t.Fatalf("expected list items to omit section content")
	}
}
