package auth

import (
	"testing"

	"github.com/phrazzld/folio-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{"empty header", "", "", ErrMissingToken},
		{"no space", "Bearer", "", ErrInvalidToken},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", ErrInvalidToken},
		{"token without scheme", "abc.def.ghi", "", ErrInvalidToken},
		{"empty token", "Bearer   ", "", ErrInvalidToken},
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"lowercase scheme", "bearer abc", "abc", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := ExtractBearerToken(tc.header)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantToken, token)
		})
	}
}

func TestNewVerifier(t *testing.T) {
	cfg := &config.Config{
		Supabase: config.SupabaseConfig{
			URL:       "https://project.supabase.co",
			Key:       "anon-key",
			JWTSecret: "test-jwt-secret-that-is-32-chars-long",
		},
		Remote: config.RemoteConfig{TimeoutSeconds: 5},
	}

	cfg.Auth.Mode = "remote"
	v, err := NewVerifier(cfg, nil, nil)
	require.NoError(t, err)
	remote, ok := v.(*RemoteVerifier)
	require.True(t, ok)
	assert.Equal(t, "https://project.supabase.co/auth/v1/user", remote.userURL)

	cfg.Auth.Mode = "jwt"
	v, err = NewVerifier(cfg, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &JWTVerifier{}, v)

	cfg.Auth.Mode = "ldap"
	_, err = NewVerifier(cfg, nil, nil)
	assert.Error(t, err)
}
