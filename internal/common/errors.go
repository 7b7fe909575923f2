// Package common defines shared constants and sentinel errors used across
// gophauth layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")
	// ErrConflict is returned by compare-and-set writes that lost a race.
	ErrConflict = errors.New("concurrent modification")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Credential lifecycle errors.
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrTokenNotFound         = errors.New("token not found")
	ErrTokenInvalid          = errors.New("invalid token")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenExpiredOrRevoked = errors.New("token expired or revoked")
	ErrClientMismatch        = errors.New("client mismatch")
	ErrRateLimitExceeded     = errors.New("rate limit exceeded")

	// ErrConfiguration marks a startup-time misconfiguration.
	ErrConfiguration = errors.New("configuration error")
)
