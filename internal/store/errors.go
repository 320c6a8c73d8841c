package store

import "errors"

// Error kinds. Callers match with errors.Is; details are attached by
// wrapping with %w at the failure site.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSaveFailed        = errors.New("save failed")
)
