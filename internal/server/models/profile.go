package models

import "time"

// Profile is the single per-user profile record. Its primary key is the
// owning user's id.
type Profile struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerID reports the subject the record belongs to.
func (p Profile) OwnerID() string { return p.UserID }
