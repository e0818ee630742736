package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/folio-api/internal/config"
)

// Verifier checks a bearer token against the identity provider.
type Verifier interface {
	// Verify returns the identity the token was issued to, or an error
	// wrapping ErrInvalidToken.
	Verify(ctx context.Context, token string) (*Identity, error)
}

// Identity is the verified holder of a bearer token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// ExtractBearerToken returns the token of an "Authorization: Bearer <token>"
// header value.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", fmt.Errorf("%w: authorization header is not a bearer token", ErrInvalidToken)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: bearer token is empty", ErrInvalidToken)
	}
	return token, nil
}

// NewVerifier builds the verifier selected by cfg.Auth.Mode.
func NewVerifier(cfg *config.Config, client *http.Client, logger *slog.Logger) (Verifier, error) {
	switch cfg.Auth.Mode {
	case "remote":
		return NewRemoteVerifier(cfg.Supabase.URL, cfg.Supabase.Key, client, cfg.RemoteTimeout(), logger), nil
	case "jwt":
		return NewJWTVerifier(cfg.Supabase.JWTSecret, logger)
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}
