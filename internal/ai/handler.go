package ai

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/llm"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the AI service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches AI routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/enhance-summary", h.enhanceSummary)
	rg.POST("/ai/enhance-description", h.enhanceDescription)
	rg.POST("/ai/import", h.importResume)
}

type enhanceSummaryRequest struct {
	Profession string `json:"profession"`
	Text       string `json:"text"`
}

func (h *Handler) enhanceSummary(c *gin.Context) {
	var req enhanceSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	out, err := h.Svc.EnhanceSummary(c.Request.Context(), req.Profession, req.Text)
	if err != nil {
		h.respondError(c, err, "failed to enhance summary")
		return
	}
	respond.OK(c, gin.H{"text": out})
}

type enhanceDescriptionRequest struct {
	Position string `json:"position"`
	Company  string `json:"company"`
	Text     string `json:"text"`
}

func (h *Handler) enhanceDescription(c *gin.Context) {
	var req enhanceDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	out, err := h.Svc.EnhanceDescription(c.Request.Context(), req.Position, req.Company, req.Text)
	if err != nil {
		h.respondError(c, err, "failed to enhance description")
		return
	}
	respond.OK(c, gin.H{"text": out})
}

// importResume accepts either a multipart "file" upload or a "text" form
// field with pasted resume content.
func (h *Handler) importResume(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	title := c.PostForm("title")

	var (
		resume  resumes.Resume
		dropped resumes.DroppedCounts
		err     error
	)

	if fileHeader, fileErr := c.FormFile("file"); fileErr == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
			return
		}
		defer file.Close()

		data, readErr := io.ReadAll(file)
		if readErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
			return
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		resume, dropped, err = h.Svc.ImportFile(c.Request.Context(), userID, title, fileHeader.Filename, data, mimeType)
	} else if text := c.PostForm("text"); text != "" {
		resume, dropped, err = h.Svc.ImportText(c.Request.Context(), userID, title, text)
	} else {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file or text is required", nil)
		return
	}

	if err != nil {
		h.respondError(c, err, "failed to import resume")
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"resume": resume,
		"dropped": gin.H{
			"experience": dropped.Experience,
			"education":  dropped.Education,
			"projects":   dropped.Projects,
		},
	})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusServiceUnavailable, "llm_unavailable", "AI features are not configured", nil)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, resumes.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
