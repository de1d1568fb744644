package models

import "time"

// Session is one active refresh-token row. RefreshToken is globally unique
// and is the lookup key; rotation is delete-old/create-new, never an update
// of the token column.
type Session struct {
	ID           string
	UserID       string
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}
