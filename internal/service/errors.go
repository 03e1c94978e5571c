package service

import "errors"

// Error taxonomy shared by the engine services. Validation and permission
// checks run before any mutation, so a wrapped ErrValidation or
// ErrPermission guarantees the store was not touched. Persistence errors
// from the repositories propagate verbatim.
var (
	ErrValidation = errors.New("validation failed")
	ErrPermission = errors.New("permission denied")
	ErrNotFound   = errors.New("not found")
)
