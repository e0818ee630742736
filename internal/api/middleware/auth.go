package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/folio-api/internal/api/shared"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/service/auth"
)

// AuthFailureMessage is the only message clients see when a request is
// rejected by the auth guard.
const AuthFailureMessage = "Invalid authentication credentials"

// AuthMiddleware guards routes behind a verified bearer token.
type AuthMiddleware struct {
	verifier auth.Verifier
}

// NewAuthMiddleware creates a new AuthMiddleware with the given verifier.
func NewAuthMiddleware(verifier auth.Verifier) *AuthMiddleware {
	if verifier == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("verifier cannot be nil for AuthMiddleware")
	}
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate verifies the Authorization header and adds the identity to
// the request context. Every failure is answered with 401 and the same
// message; the cause is only logged.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.ExtractBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, AuthFailureMessage, err)
			return
		}

		identity, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			var opts []shared.ResponseOption
			if errors.Is(err, auth.ErrProviderUnavailable) {
				opts = append(opts, shared.WithElevatedLogLevel())
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, AuthFailureMessage, err, opts...)
			return
		}

		ctx := shared.WithIdentity(r.Context(), identity)
		log := logger.FromContext(ctx).With(slog.String("user_id", identity.UserID.String()))
		ctx = logger.WithLogger(ctx, log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the verified identity from the request context.
func GetIdentity(r *http.Request) (*auth.Identity, bool) {
	return shared.IdentityFromContext(r.Context())
}
