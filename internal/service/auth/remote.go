package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/folio-api/internal/platform/logger"
)

const userPath = "/auth/v1/user"

// RemoteVerifier asks the provider's identity service who a token belongs to.
type RemoteVerifier struct {
	userURL string
	apiKey  string
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewRemoteVerifier creates a verifier calling baseURL's identity service
// with apiKey. A nil client uses http.DefaultClient.
func NewRemoteVerifier(
	baseURL, apiKey string,
	client *http.Client,
	timeout time.Duration,
	logger *slog.Logger,
) *RemoteVerifier {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &RemoteVerifier{
		userURL: strings.TrimRight(baseURL, "/") + userPath,
		apiKey:  apiKey,
		client:  client,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "remote_verifier")),
	}
}

var _ Verifier = (*RemoteVerifier)(nil)

type remoteUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Verify implements Verifier.
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	log := logger.FromContextOrDefault(ctx, v.logger)

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		log.Warn("identity service request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Debug("identity service rejected token", slog.Int("status", resp.StatusCode))
		return nil, ErrInvalidToken
	default:
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn("identity service returned unexpected status", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var user remoteUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: undecodable user: %v", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id %q is not a UUID", ErrInvalidToken, user.ID)
	}

	log.Debug("token verified by identity service", slog.String("user_id", userID.String()))
	return &Identity{UserID: userID, Email: user.Email, Role: user.Role}, nil
}
