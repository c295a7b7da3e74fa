package resumes

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("resume not found")
	ErrInvalidInput = errors.New("invalid input")

	// Merge-boundary rejections, all matching ErrInvalidInput.
	ErrInvalidTemplate = fmt.Errorf("%w: unknown template", ErrInvalidInput)
	ErrDuplicateSkill  = fmt.Errorf("%w: duplicate skill", ErrInvalidInput)
	ErrUnknownSection  = fmt.Errorf("%w: unknown section", ErrInvalidInput)

	// ErrUnparseable means the extraction payload was not a keyed JSON object.
	ErrUnparseable = fmt.Errorf("%w: extraction payload is not a JSON object", ErrInvalidInput)
)
