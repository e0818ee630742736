// Package auth verifies the bearer tokens presented on admin routes. Tokens
// are issued by the hosted identity provider; this package never issues them.
// Two verifiers are available: RemoteVerifier asks the provider's identity
// service for the token's user, JWTVerifier checks the signature locally with
// the project's signing secret.
package auth
