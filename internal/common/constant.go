// Package common contains shared constants and sentinel errors used across
// seizurelog components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on authenticated requests.
const AccessTokenHeaderName = "access_token"

// RefreshTokenHeaderName is the gRPC metadata key used to carry the
// refresh token on session-lifecycle requests.
const RefreshTokenHeaderName = "refresh_token"
