package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityServer(t *testing.T, handler http.HandlerFunc) *RemoteVerifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRemoteVerifier(srv.URL+"/", "anon-key", srv.Client(), time.Second, nil)
}

func TestRemoteVerifierAccepts(t *testing.T) {
	userID := uuid.New()

	v := newIdentityServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userPath, r.URL.Path)
		assert.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + userID.String() + `","email":"admin@example.com","role":"authenticated"}`))
	})

	identity, err := v.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "admin@example.com", identity.Email)
	assert.Equal(t, "authenticated", identity.Role)
}

func TestRemoteVerifierRejects(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"msg":"invalid JWT"}`, ErrInvalidToken},
		{"forbidden", http.StatusForbidden, ``, ErrInvalidToken},
		{"provider fault", http.StatusBadGateway, ``, ErrProviderUnavailable},
		{"garbage body", http.StatusOK, `not json`, ErrInvalidToken},
		{"non uuid id", http.StatusOK, `{"id":"42"}`, ErrInvalidToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := newIdentityServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			identity, err := v.Verify(context.Background(), "some-token")
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrInvalidToken, "every failure is an invalid token to callers")
		})
	}
}

func TestRemoteVerifierTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	v := NewRemoteVerifier(srv.URL, "anon-key", srv.Client(), 50*time.Millisecond, nil)

	_, err := v.Verify(context.Background(), "slow-token")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
