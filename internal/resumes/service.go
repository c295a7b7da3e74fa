package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for resumes.
type Service struct {
	Repo ResumesRepo
}

// Create builds an empty resume with defaults and persists it.
func (s *Service) Create(ctx context.Context, userId, title string) (Resume, error) {
	if userId == "" {
		return Resume{}, errors.New("user id required")
	}
	resume := NewResume(userId, title)
	resume.ID = uuid.NewString()
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// CreateFromExtraction persists a resume seeded with normalized extracted
// content.
func (s *Service) CreateFromExtraction(ctx context.Context, userId, title string, ext Extraction) (Resume, error) {
	if userId == "" {
		return Resume{}, errors.New("user id required")
	}
	resume := FromExtraction(userId, title, ext)
	resume.ID = uuid.NewString()
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Get returns a resume owned by the user.
func (s *Service) Get(ctx context.Context, userId, resumeID string) (Resume, error) {
	if resumeID == "" {
		return Resume{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userId, resumeID)
}

// GetPublic returns a resume shared publicly, for unauthenticated viewers.
func (s *Service) GetPublic(ctx context.Context, resumeID string) (Resume, error) {
	if resumeID == "" {
		return Resume{}, ErrNotFound
	}
	return s.Repo.GetPublic(ctx, resumeID)
}

// List returns the user's resumes, most recently updated first.
func (s *Service) List(ctx context.Context, userId string) ([]Resume, error) {
	if userId == "" {
		return nil, errors.New("user id required")
	}
	return s.Repo.ListByUser(ctx, userId)
}

// UpdateSection merges one section payload into the stored resume and
// persists the result. The merge either fully applies or the stored resume
// is left untouched.
func (s *Service) UpdateSection(ctx context.Context, userId, resumeID, section string, value json.RawMessage) (Resume, error) {
	current, err := s.Repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return Resume{}, err
	}
	merged, err := Merge(current, section, value)
	if err != nil {
		return Resume{}, err
	}
	if err := s.Repo.Update(ctx, merged); err != nil {
		return Resume{}, err
	}
	return merged, nil
}

// Update merges a keyed bundle of section payloads and persists the result.
func (s *Service) Update(ctx context.Context, userId, resumeID string, patch map[string]json.RawMessage) (Resume, error) {
	current, err := s.Repo.GetByID(ctx, userId, resumeID)
	if err != nil {
		return Resume{}, err
	}
	merged, err := MergeAll(current, patch)
	if err != nil {
		return Resume{}, err
	}
	merged.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, merged); err != nil {
		return Resume{}, err
	}
	return merged, nil
}

// Delete removes a resume owned by the user.
func (s *Service) Delete(ctx context.Context, userId, resumeID string) error {
	if resumeID == "" {
		return ErrNotFound
	}
	return s.Repo.Delete(ctx, userId, resumeID)
}
