package resumes

import "context"

// ResumesRepo defines persistence operations for resumes. Owner-scoped
// methods take the user ID so ownership is enforced at the query, not after.
type ResumesRepo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userId, resumeID string) (Resume, error)
	GetPublic(ctx context.Context, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userId string) ([]Resume, error)
	Update(ctx context.Context, resume Resume) error
	Delete(ctx context.Context, userId, resumeID string) error
}
