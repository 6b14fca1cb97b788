package usecase

import "errors"

// Shared error vocabulary. Handlers translate these into HTTP statuses; the
// cause stays server-side.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
	ErrSaveFailed   = errors.New("save failed")
)
