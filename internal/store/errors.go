package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a lookup or update by id matched zero rows.
	ErrNotFound = errors.New("entity not found")

	// ErrData is returned for every other failure of the remote store:
	// network faults, timeouts, provider-side validation.
	ErrData = errors.New("data access failed")

	// ErrDuplicate is a provider-side unique constraint violation.
	ErrDuplicate = fmt.Errorf("%w: duplicate entry", ErrData)

	// ErrConstraint is any other provider-side constraint violation.
	ErrConstraint = fmt.Errorf("%w: constraint violation", ErrData)

	// Entity-specific "not found" errors

	ErrProjectNotFound       = fmt.Errorf("%w: project", ErrNotFound)
	ErrSkillNotFound         = fmt.Errorf("%w: skill", ErrNotFound)
	ErrSkillCategoryNotFound = fmt.Errorf("%w: skill category", ErrNotFound)
	ErrExperienceNotFound    = fmt.Errorf("%w: experience", ErrNotFound)
	ErrEducationNotFound     = fmt.Errorf("%w: education", ErrNotFound)
	ErrCertificateNotFound   = fmt.Errorf("%w: certificate", ErrNotFound)
	ErrMessageNotFound       = fmt.Errorf("%w: message", ErrNotFound)
	ErrSiteSettingsNotFound  = fmt.Errorf("%w: site settings", ErrNotFound)
	ErrAboutMeNotFound       = fmt.Errorf("%w: about me", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The table entity (e.g., "project", "skill")
	Operation string // The operation that failed (e.g., "list", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
