// Package users provides a PostgreSQL-backed repository for user accounts.
package users

import (
	"context"

	"github.com/mbalakin/seizurelog/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
