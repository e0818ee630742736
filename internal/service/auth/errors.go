package auth

import (
	"errors"
	"fmt"
)

// Common authentication errors. Every one of them is reported to the client
// as the same 401 response.
var (
	// ErrInvalidToken indicates the token is malformed or was rejected.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = fmt.Errorf("%w: token has expired", ErrInvalidToken)

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future).
	ErrTokenNotYetValid = fmt.Errorf("%w: token not yet valid", ErrInvalidToken)

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrProviderUnavailable indicates the identity service could not be
	// reached or answered with an unexpected status.
	ErrProviderUnavailable = fmt.Errorf("%w: identity provider unavailable", ErrInvalidToken)
)
