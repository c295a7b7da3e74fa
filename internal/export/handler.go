package export

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/render"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/util"
)

// Handler serves rendered HTML previews and PDF downloads of a resume.
type Handler struct {
	Resumes  *resumes.Service
	Renderer PDFRenderer
}

// NewHandler constructs a Handler.
func NewHandler(svc *resumes.Service, renderer PDFRenderer) *Handler {
	return &Handler{Resumes: svc, Renderer: renderer}
}

// RegisterRoutes attaches render and export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:id/render", h.renderTree)
	rg.GET("/resumes/:id/export.pdf", h.exportPDF)
}

// renderTree returns the projected document. The default response is the
// render tree as JSON; format=html returns the full standalone page instead.
func (h *Handler) renderTree(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Resumes.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to render resume")
		return
	}

	doc := render.Project(resume)
	if c.Query("format") != "html" {
		respond.OK(c, doc)
		return
	}

	page, err := render.HTML(doc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render resume", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (h *Handler) exportPDF(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Resumes.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to export resume")
		return
	}

	page, err := render.HTML(render.Project(resume))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export resume", nil)
		return
	}

	start := time.Now()
	pdf, err := h.Renderer.RenderPDF(c.Request.Context(), page)
	if err != nil {
		metrics.IncExportFailed()
		respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to export resume", nil)
		return
	}
	metrics.IncExportCompleted()
	metrics.ObserveExportDurationMs(float64(time.Since(start).Milliseconds()))

	fileName, err := util.SanitizeFileName(resume.Title + ".pdf")
	if err != nil {
		fileName = "resume.pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, resumes.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
