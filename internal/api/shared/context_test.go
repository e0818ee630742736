package shared_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, shared.GetTraceID(context.Background()))

	a := shared.GetTraceID(shared.SetTraceID(context.Background()))
	b := shared.GetTraceID(shared.SetTraceID(context.Background()))
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestIdentityContext(t *testing.T) {
	_, ok := shared.IdentityFromContext(context.Background())
	assert.False(t, ok)

	id := &auth.Identity{UserID: uuid.New()}
	got, ok := shared.IdentityFromContext(shared.WithIdentity(context.Background(), id))
	require.True(t, ok)
	assert.Same(t, id, got)
}
