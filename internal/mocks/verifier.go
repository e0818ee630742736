package mocks

import (
	"context"

	"github.com/phrazzld/folio-api/internal/service/auth"
)

// Ensure MockVerifier implements auth.Verifier
var _ auth.Verifier = (*MockVerifier)(nil)

// MockVerifier implements auth.Verifier for testing.
type MockVerifier struct {
	// VerifyFn allows test cases to mock the Verify behavior
	VerifyFn func(ctx context.Context, token string) (*auth.Identity, error)

	// Default values used when VerifyFn isn't set
	Identity *auth.Identity
	Err      error

	// Tokens records every token passed to Verify.
	Tokens []string
}

// Verify implements the auth.Verifier interface.
func (m *MockVerifier) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	m.Tokens = append(m.Tokens, token)
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Identity == nil {
		return nil, auth.ErrInvalidToken
	}
	return m.Identity, nil
}
