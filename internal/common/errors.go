// Package common defines shared constants and sentinel errors used across
// seizurelog layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrDuplicateToken  = errors.New("duplicate refresh token")
	ErrorEmailTaken    = errors.New("email already taken")
	ErrorProfileExists = errors.New("profile already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorSeizureData = errors.New("insufficient seizure data")
	ErrorProfileData = errors.New("insufficient profile data")

	// Access token errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Session lifecycle errors.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// Change feed errors.
	ErrUpstreamLost = errors.New("mutation feed connection lost")
)
