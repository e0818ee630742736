package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/folio-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrData", store.ErrData, false},
		{"ErrNotFound", store.ErrNotFound, true},
		{"wrapped ErrNotFound", fmt.Errorf("lookup: %w", store.ErrNotFound), true},
		{"ErrProjectNotFound", store.ErrProjectNotFound, true},
		{"ErrSkillCategoryNotFound", store.ErrSkillCategoryNotFound, true},
		{"ErrAboutMeNotFound", store.ErrAboutMeNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, store.IsNotFoundError(tt.err))
		})
	}
}

func TestConstraintErrorsAreDataErrors(t *testing.T) {
	assert.ErrorIs(t, store.ErrDuplicate, store.ErrData)
	assert.ErrorIs(t, store.ErrConstraint, store.ErrData)
	assert.NotErrorIs(t, store.ErrDuplicate, store.ErrNotFound)
}

func TestStoreError(t *testing.T) {
	cause := fmt.Errorf("%w: timeout", store.ErrData)
	err := store.NewStoreError("skill", "update", "query failed", cause)

	assert.Equal(t, "update operation on skill failed: query failed: data access failed: timeout", err.Error())
	assert.ErrorIs(t, err, store.ErrData)

	var se *store.StoreError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "skill", se.Entity)

	bare := store.NewStoreError("project", "get", "no rows", nil)
	assert.Equal(t, "get operation on project failed: no rows", bare.Error())
}

func TestQueryWhereDoesNotAlias(t *testing.T) {
	base := store.Query{Order: []store.Order{store.Asc("id")}}
	a := base.Where("featured", true)
	b := base.Where("category", "Go")

	assert.Empty(t, base.Filters)
	assert.Equal(t, []store.Filter{store.Eq("featured", true)}, a.Filters)
	assert.Equal(t, []store.Filter{store.Eq("category", "Go")}, b.Filters)
	assert.Equal(t, store.Desc("timestamp"), store.Order{Column: "timestamp", Desc: true})
}
