package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/folio-api/internal/domain"
)

// DecodeJSON decodes the request body into v. Syntax and type errors are
// reported as validation errors.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.NewValidationError(typeErr.Field, "has the wrong type", err)
		}
		return domain.NewValidationError("body", "must be a valid JSON object", err)
	}
	return nil
}

// DecodeAndValidate decodes the request body into v and validates it.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return ValidateRequest(v)
}

// ValidateRequest validates the given struct against its validate tags.
func ValidateRequest(v interface{}) error {
	return domain.Validate(v)
}

// ParseID parses a positive integer id.
func ParseID(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(field, "must be a positive integer", domain.ErrInvalidID)
	}
	return id, nil
}

// PathID extracts a positive integer id from the named URL path parameter.
func PathID(r *http.Request, param string) (int64, error) {
	return ParseID(param, chi.URLParam(r, param))
}
