package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/folio-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedError error
		notError      error
	}{
		{
			name:          "no_rows",
			err:           pgx.ErrNoRows,
			expectedError: store.ErrNotFound,
			notError:      store.ErrData,
		},
		{
			name:          "wrapped_no_rows",
			err:           fmt.Errorf("collect: %w", pgx.ErrNoRows),
			expectedError: store.ErrNotFound,
		},
		{
			name:          "unique_violation",
			err:           &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "skill_categories_name_key"},
			expectedError: store.ErrDuplicate,
			notError:      store.ErrNotFound,
		},
		{
			name:          "check_violation",
			err:           &pgconn.PgError{Code: checkViolationCode, ConstraintName: "skills_level_check"},
			expectedError: store.ErrConstraint,
		},
		{
			name:          "not_null_violation",
			err:           &pgconn.PgError{Code: notNullViolationCode, ColumnName: "title"},
			expectedError: store.ErrConstraint,
		},
		{
			name:          "timeout",
			err:           fmt.Errorf("query: %w", context.DeadlineExceeded),
			expectedError: store.ErrData,
			notError:      store.ErrNotFound,
		},
		{
			name:          "generic",
			err:           errors.New("connection reset by peer"),
			expectedError: store.ErrData,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.err)
			assert.ErrorIs(t, got, tc.expectedError)
			if tc.notError != nil {
				assert.NotErrorIs(t, got, tc.notError)
			}
			// Constraint errors are data errors too.
			if errors.Is(tc.expectedError, store.ErrData) {
				assert.ErrorIs(t, got, store.ErrData)
			}
		})
	}

	assert.NoError(t, MapError(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: checkViolationCode}))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
}
