// Package sessions provides a PostgreSQL-backed repository for refresh-token
// sessions used in the server's authentication flow.
package sessions

import (
	"context"
	"time"

	"github.com/mbalakin/seizurelog/internal/server/models"
)

// Repository stores one row per outstanding refresh token. The token value
// is never updated in place; rotation is delete-old/create-new at the
// service layer.
type Repository interface {
	// Create inserts a new session row. A colliding token yields
	// common.ErrDuplicateToken; the caller must regenerate and retry.
	Create(ctx context.Context, userID string, token string, expiresAt time.Time) error
	// Find returns the session for the given token, or common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.Session, error)
	// Delete removes a session by token. Deleting an absent token is not
	// an error.
	Delete(ctx context.Context, token string) error
}
