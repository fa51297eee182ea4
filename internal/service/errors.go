package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fleet-logbook/internal/store"
)

// Error categories returned by every service. Transport layers map them to
// status codes with [errors.Is].
var (
	ErrValidation      = errors.New("validation failed")
	ErrPermission      = errors.New("permission denied")
	ErrPersistence     = errors.New("persistence failure")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrAccountInactive = errors.New("account is not active")
)

var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError carries a message meant for the end user, e.g.
// "Tipologia is required". It matches [ErrValidation].
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(err error) error {
	return &ValidationError{Message: err.Error(), Err: err}
}

func validationMessage(msg string) error {
	return &ValidationError{Message: msg}
}

// storeError lifts a repository error into the service error categories.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, op, err)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %s: %w", ErrAlreadyExists, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
