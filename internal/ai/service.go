package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-builder/internal/extract"
	"resume-builder/internal/llm"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
)

// ErrInvalidInput marks requests the service refuses to send to the model.
var ErrInvalidInput = errors.New("invalid input")

// maxImportText caps how much extracted text goes into the import prompt.
const maxImportText = 60_000

// Service contains business logic for the AI writing and import features.
type Service struct {
	LLM     llm.Client
	Resumes *resumes.Service
	Store   object.ObjectStore
}

// EnhanceSummary rewrites a professional summary.
func (s *Service) EnhanceSummary(ctx context.Context, profession, current string) (string, error) {
	if strings.TrimSpace(current) == "" {
		return "", fmt.Errorf("%w: summary text required", ErrInvalidInput)
	}
	out, err := s.LLM.Complete(ctx, llm.SummarySystemPrompt, llm.SummaryUserPrompt(profession, current))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// EnhanceDescription rewrites one experience entry's description.
func (s *Service) EnhanceDescription(ctx context.Context, position, company, current string) (string, error) {
	if strings.TrimSpace(current) == "" {
		return "", fmt.Errorf("%w: description text required", ErrInvalidInput)
	}
	out, err := s.LLM.Complete(ctx, llm.DescriptionSystemPrompt, llm.DescriptionUserPrompt(position, company, current))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ImportFile extracts text from an uploaded resume file, archives the
// original, and builds a new resume from the model's structured extraction.
func (s *Service) ImportFile(ctx context.Context, userId, title, fileName string, data []byte, mimeType string) (resumes.Resume, resumes.DroppedCounts, error) {
	text, err := extract.TextFromBytes(ctx, data, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			return resumes.Resume{}, resumes.DroppedCounts{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return resumes.Resume{}, resumes.DroppedCounts{}, err
	}

	// The original upload is archived so a failed import can be retried
	// later. Archive failure never blocks the import itself.
	if s.Store != nil {
		if _, _, _, err := s.Store.Save(ctx, userId, fileName, bytes.NewReader(data)); err != nil {
			telemetry.Warn("import archive failed", map[string]any{
				"userId":   userId,
				"fileName": fileName,
				"error":    err.Error(),
			})
		}
	}

	return s.importText(ctx, userId, title, text)
}

// ImportText builds a new resume from pasted resume text.
func (s *Service) ImportText(ctx context.Context, userId, title, text string) (resumes.Resume, resumes.DroppedCounts, error) {
	return s.importText(ctx, userId, title, text)
}

func (s *Service) importText(ctx context.Context, userId, title, text string) (resumes.Resume, resumes.DroppedCounts, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return resumes.Resume{}, resumes.DroppedCounts{}, fmt.Errorf("%w: no text to import", ErrInvalidInput)
	}
	if len(text) > maxImportText {
		text = text[:maxImportText]
	}

	raw, err := s.LLM.CompleteJSON(ctx, llm.ExtractionSystemPrompt, llm.ExtractionUserPrompt(text))
	if err != nil {
		metrics.IncImportFailed()
		return resumes.Resume{}, resumes.DroppedCounts{}, err
	}

	ext, err := resumes.NormalizeExtraction(raw)
	if err != nil {
		metrics.IncImportFailed()
		return resumes.Resume{}, resumes.DroppedCounts{}, err
	}
	if ext.Dropped.Total() > 0 {
		metrics.AddImportDroppedEntries(ext.Dropped.Total())
		telemetry.Warn("import dropped entries", map[string]any{
			"userId":     userId,
			"experience": ext.Dropped.Experience,
			"education":  ext.Dropped.Education,
			"projects":   ext.Dropped.Projects,
		})
	}

	resume, err := s.Resumes.CreateFromExtraction(ctx, userId, title, ext)
	if err != nil {
		metrics.IncImportFailed()
		return resumes.Resume{}, resumes.DroppedCounts{}, err
	}
	metrics.IncImportCompleted()
	return resume, ext.Dropped, nil
}
