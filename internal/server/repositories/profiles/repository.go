// Package profiles provides a PostgreSQL-backed repository for user profiles.
package profiles

import (
	"context"

	"github.com/mbalakin/seizurelog/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string, name string) error
	Update(ctx context.Context, userID string, name string) error
	Get(ctx context.Context, userID string) (*models.Profile, error)
}
