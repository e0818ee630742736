package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/folio-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// The API layer maps them to HTTP status codes.
var (
	// ErrMigrationRequired indicates a category still has skills and no
	// migration target was given. API layer should map this to 400.
	ErrMigrationRequired = errors.New("skills must be migrated before the category can be deleted")

	// ErrMigrationTargetNotFound indicates the migrate_to category does not exist.
	ErrMigrationTargetNotFound = fmt.Errorf("%w: target skill category", store.ErrNotFound)

	// ErrMigrationIncomplete indicates a migration step failed part way. The
	// category is kept and already-moved skills are moved back.
	ErrMigrationIncomplete = fmt.Errorf("%w: skill migration incomplete", store.ErrData)

	// ErrUpload indicates the object store did not accept a file.
	ErrUpload = errors.New("upload failed")
)

// MigrationRequiredError reports how many skills block a category deletion.
type MigrationRequiredError struct {
	Category   string
	SkillCount int
}

// Error implements the error interface.
func (e *MigrationRequiredError) Error() string {
	return fmt.Sprintf("category %q has %d skills: %d skills must be migrated",
		e.Category, e.SkillCount, e.SkillCount)
}

// Is matches ErrMigrationRequired.
func (e *MigrationRequiredError) Is(target error) bool {
	return target == ErrMigrationRequired
}

// ServiceError wraps errors from a service with context.
type ServiceError struct {
	// Service is the service that failed (e.g., "skill_category", "upload")
	Service string
	// Operation is the operation that failed (e.g., "delete", "migrate")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError. Not-found errors from the store
// are returned unwrapped so their entity-specific message survives.
func NewServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if store.IsNotFoundError(err) {
		return err
	}
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
