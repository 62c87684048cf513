package domain

import "errors"

// Creation validation failures.
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrZeroGoal         = errors.New("funding goal must be greater than zero")
	ErrZeroDuration     = errors.New("duration must be greater than zero")
)

// ErrProjectNotFound is returned for lookups of unknown project ids.
var ErrProjectNotFound = errors.New("project not found")
