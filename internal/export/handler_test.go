package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/render"
	"resume-builder/internal/resumes"
)

type stubRenderer struct {
	out      []byte
	err      error
	lastHTML []byte
}

func (s *stubRenderer) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	s.lastHTML = html
	return s.out, s.err
}

func newTestRouter(t *testing.T, renderer PDFRenderer) (*gin.Engine, *resumes.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &resumes.Service{Repo: resumes.NewMemoryRepo()}
	h := NewHandler(svc, renderer)

	r := gin.New()
	group := r.Group("/api/v1")
	group.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Next()
	})
	h.RegisterRoutes(group)
	return r, svc
}

func seedResume(t *testing.T, svc *resumes.Service) resumes.Resume {
	t.Helper()
	resume, err := svc.Create(context.Background(), "user-1", "Backend Resume")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	patch := map[string]json.RawMessage{
		"personal_info":        json.RawMessage(`{"full_name":"Dana Smith","profession":"Engineer"}`),
		"professional_summary": json.RawMessage(`"Builds backends."`),
	}
	resume, err = svc.Update(context.Background(), "user-1", resume.ID, patch)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	return resume
}

func TestRenderReturnsTree(t *testing.T) {
	r, svc := newTestRouter(t, &stubRenderer{})
	resume := seedResume(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+resume.ID+"/render", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var doc render.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal tree: %v", err)
	}
	if doc.Header.Name != "Dana Smith" {
		t.Fatalf("unexpected header %+v", doc.Header)
	}
	if len(doc.Sections) != 1 || doc.Sections[0].Kind != render.SectionSummary {
		t.Fatalf("unexpected sections %+v", doc.Sections)
	}
}

func TestRenderHTMLFormat(t *testing.T) {
	r, svc := newTestRouter(t, &stubRenderer{})
	resume := seedResume(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+resume.ID+"/render?format=html", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Dana Smith") {
		t.Fatalf("expected rendered name in page")
	}
}

func TestExportPDF(t *testing.T) {
	stub := &stubRenderer{out: []byte("%PDF-1.7 stub")}
	r, svc := newTestRouter(t, stub)
	resume := seedResume(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+resume.ID+"/export.pdf", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "Backend Resume.pdf") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if w.Body.String() != "%PDF-1.7 stub" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
	if len(stub.lastHTML) == 0 {
		t.Fatalf("expected renderer to receive html")
	}
}

func TestExportPDFNotFound(t *testing.T) {
	r, _ := newTestRouter(t, &stubRenderer{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/missing/export.pdf", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
