package services

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the caller layer. Handlers match them with
// errors.Is and translate them to HTTP statuses.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrForbidden        = errors.New("forbidden")
	ErrStorage          = errors.New("storage failure")
)

// storageErr wraps an unexpected database error. Operations run inside a
// transaction, so returning it rolls back every effect of the call.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
