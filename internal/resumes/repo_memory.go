package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ResumesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume // resumeID -> resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Resume),
	}
}

// Create stores a new resume.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[resume.ID] = resume.Clone()
	return nil
}

// GetByID returns a resume owned by the given user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.data[resumeID]
	if !ok || resume.UserID != userId {
		return Resume{}, ErrNotFound
	}
	return resume.Clone(), nil
}

// GetPublic returns a resume only if it has been shared publicly.
func (r *MemoryRepo) GetPublic(ctx context.Context, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.data[resumeID]
	if !ok || !resume.Public {
		return Resume{}, ErrNotFound
	}
	return resume.Clone(), nil
}

// ListByUser returns the user's resumes, most recently updated first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Resume{}
	for _, resume := range r.data {
		if resume.UserID == userId {
			out = append(out, resume.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// Update replaces a stored resume. The owner must match.
func (r *MemoryRepo) Update(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.data[resume.ID]
	if !ok || current.UserID != resume.UserID {
		return ErrNotFound
	}
	r.data[resume.ID] = resume.Clone()
	return nil
}

// Delete removes a resume owned by the given user.
func (r *MemoryRepo) Delete(ctx context.Context, userId, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.data[resumeID]
	if !ok || current.UserID != userId {
		return ErrNotFound
	}
	delete(r.data, resumeID)
	return nil
}

var _ ResumesRepo = (*MemoryRepo)(nil)
