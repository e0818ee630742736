package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/folio-api/internal/domain"
	"github.com/phrazzld/folio-api/internal/mocks"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/service"
	"github.com/phrazzld/folio-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	buf, log := logger.SetupTestLogger(t)
	messages := mocks.NewMockTable[domain.ContactMessage](store.ErrMessageNotFound)
	svc := service.NewContactService(messages, log)

	before := time.Now().Add(-time.Second)
	receipt, err := svc.Submit(context.Background(), domain.ContactInput{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: ptr("Hello"),
		Message: "Let's work together",
	})
	require.NoError(t, err)

	assert.True(t, receipt.Success)
	assert.Equal(t, service.ContactReply, receipt.Message)
	ts, err := time.Parse(time.RFC3339, receipt.Timestamp)
	require.NoError(t, err)
	assert.False(t, ts.Before(before.Truncate(time.Second)))

	require.Len(t, messages.Rows, 1)
	stored := messages.Rows[0]
	assert.Equal(t, "Ada", stored.Name)
	assert.Equal(t, "ada@example.com", stored.Email)
	assert.False(t, stored.Read)

	assert.Contains(t, buf.String(), "new contact message")
	assert.NotContains(t, buf.String(), "ada@example.com", "email must be redacted in logs")
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input domain.ContactInput
		field string
	}{
		{"malformed email", domain.ContactInput{Name: "A", Email: "not-an-email", Message: "hi"}, "email"},
		{"missing name", domain.ContactInput{Email: "a@example.com", Message: "hi"}, "name"},
		{"missing message", domain.ContactInput{Name: "A", Email: "a@example.com"}, "message"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			messages := mocks.NewMockTable[domain.ContactMessage](store.ErrMessageNotFound)
			svc := service.NewContactService(messages, nil)

			_, err := svc.Submit(context.Background(), tc.input)
			require.ErrorIs(t, err, domain.ErrValidation)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Empty(t, messages.CallsTo("insert"), "nothing may be written")
		})
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	messages := mocks.NewMockTable[domain.ContactMessage](store.ErrMessageNotFound)
	messages.Err = store.ErrData
	svc := service.NewContactService(messages, nil)

	_, err := svc.Submit(context.Background(), domain.ContactInput{Name: "A", Email: "a@example.com", Message: "hi"})
	assert.ErrorIs(t, err, store.ErrData)
}
