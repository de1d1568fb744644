// Package seizures provides a PostgreSQL-backed repository for seizure-log
// entries.
package seizures

import (
	"context"

	"github.com/mbalakin/seizurelog/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, seizure *models.Seizure) error
	// SoftDelete sets the tombstone flag on the caller's own row; deleting
	// another user's row (or an absent one) yields common.ErrorNotFound.
	SoftDelete(ctx context.Context, userID string, seizureID string) error
	// SelectRange returns the caller's non-tombstoned rows whose duration
	// lies in [durationFrom, durationTill], both bounds inclusive.
	SelectRange(ctx context.Context, userID string, durationFrom, durationTill float64) ([]*models.Seizure, error)
}
