package grpc

import (
	"github.com/mbalakin/seizurelog/internal/server/models"
)

// Wire messages for the SeizureLog service. Encoded with the JSON codec.

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPairResponse is returned by both SignUp and SignIn.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshAccessTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshAccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type SignOutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type SignOutResponse struct{}

type CreateProfileRequest struct {
	Name string `json:"name"`
}

type CreateProfileResponse struct{}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

type UpdateProfileResponse struct{}

type GetProfileRequest struct{}

type GetProfileResponse struct {
	Profile *models.Profile `json:"profile"`
}

type CreateSeizureRequest struct {
	Type            models.SeizureType `json:"type"`
	DurationSeconds float64            `json:"duration_seconds"`
}

type CreateSeizureResponse struct {
	Seizure *models.Seizure `json:"seizure"`
}

type DeleteSeizureRequest struct {
	SeizureID string `json:"seizure_id"`
}

type DeleteSeizureResponse struct{}

// ListSeizuresRequest filters by duration; a nil bound leaves that side open.
type ListSeizuresRequest struct {
	DurationFrom *float64 `json:"duration_from,omitempty"`
	DurationTill *float64 `json:"duration_till,omitempty"`
}

type ListSeizuresResponse struct {
	Seizures []*models.Seizure `json:"seizures"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type StreamProfileRequest struct{}

// ProfileChangeEvent is one server-streamed profile change. Change is one of
// "create", "update", "delete".
type ProfileChangeEvent struct {
	Change  string         `json:"change"`
	Profile models.Profile `json:"profile"`
}

// StreamSeizuresRequest optionally narrows the stream to seizures whose
// duration lies in the inclusive [DurationFrom, DurationTill] range.
type StreamSeizuresRequest struct {
	DurationFrom *float64 `json:"duration_from,omitempty"`
	DurationTill *float64 `json:"duration_till,omitempty"`
}

// SeizureChangeEvent is one server-streamed seizure change.
type SeizureChangeEvent struct {
	Change  string         `json:"change"`
	Seizure models.Seizure `json:"seizure"`
}
