package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/folio-api/internal/api/middleware"
	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/service"
	"github.com/phrazzld/folio-api/internal/service/auth"
	"github.com/phrazzld/folio-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Checked first: a failed migration wraps the cause of the failure
	case errors.Is(err, service.ErrMigrationIncomplete):
		return http.StatusInternalServerError

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, service.ErrMigrationRequired):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Default: internal server error (store.ErrData, service.ErrUpload, ...)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var migrationErr *service.MigrationRequiredError
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, service.ErrMigrationIncomplete):
		return "Failed to migrate skills"

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return middleware.AuthFailureMessage

	// Bad request errors
	case errors.As(err, &migrationErr):
		return fmt.Sprintf(
			"Category has %d skills. %d skills must be migrated: specify a target category with migrate_to.",
			migrationErr.SkillCount, migrationErr.SkillCount)

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.As(err, &validationErr):
		if validationErr.Field == "" {
			return "Invalid request: " + validationErr.Message
		}
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)

	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"

	// Not found errors
	case errors.Is(err, service.ErrMigrationTargetNotFound):
		return "Target category not found"
	case errors.Is(err, store.ErrProjectNotFound):
		return "Project not found"
	case errors.Is(err, store.ErrSkillNotFound):
		return "Skill not found"
	case errors.Is(err, store.ErrSkillCategoryNotFound):
		return "Category not found"
	case errors.Is(err, store.ErrExperienceNotFound):
		return "Experience not found"
	case errors.Is(err, store.ErrEducationNotFound):
		return "Education entry not found"
	case errors.Is(err, store.ErrCertificateNotFound):
		return "Certificate not found"
	case errors.Is(err, store.ErrMessageNotFound):
		return "Message not found"
	case errors.Is(err, store.ErrSiteSettingsNotFound):
		return "Site settings not found"
	case errors.Is(err, store.ErrAboutMeNotFound):
		return "About me content not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, service.ErrUpload):
		return "Upload failed"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the mapped status and safe message for err and logs
// the redacted cause. defaultMsg replaces the generic 500 message when set.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" && !errors.Is(err, service.ErrUpload) {
		msg = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}
