package models

import "time"

// SeizureType enumerates the recognized seizure kinds.
type SeizureType int32

const (
	SeizureTonic SeizureType = iota
	SeizureAtonic
)

// Valid reports whether t is one of the recognized kinds.
func (t SeizureType) Valid() bool {
	return t == SeizureTonic || t == SeizureAtonic
}

// Seizure is one diary entry. Deleted is a soft-delete tombstone: the row is
// kept but excluded from reads, and the change feed reclassifies an update
// that sets it as a delete.
type Seizure struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	Type            SeizureType `json:"type"`
	DurationSeconds float64     `json:"duration_seconds"`
	Deleted         bool        `json:"deleted"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OwnerID reports the subject the record belongs to.
func (s Seizure) OwnerID() string { return s.UserID }

// Tombstoned reports whether the record carries the soft-delete marker.
func (s Seizure) Tombstoned() bool { return s.Deleted }

// RangeValue is the field range-filtered subscriptions evaluate.
func (s Seizure) RangeValue() float64 { return s.DurationSeconds }
