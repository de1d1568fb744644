package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mbalakin/seizurelog/internal/common"
	"github.com/mbalakin/seizurelog/internal/dbx"
	"github.com/mbalakin/seizurelog/internal/server/models"
)

const uniqueViolation = "23505"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the profile row for userID. A second profile for the same
// user yields common.ErrorProfileExists.
func (r *PostgresRepository) Create(ctx context.Context, userID string, name string) error {
	query := `
		INSERT INTO profiles (user_id, name)
		VALUES ($1, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, name); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrorProfileExists
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// Update replaces the profile name. An absent profile yields
// common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, userID string, name string) error {
	query := `
		UPDATE profiles
		SET name = $2, updated_at = now()
		WHERE user_id = $1
	`
	res, err := r.db.ExecContext(ctx, query, userID, name)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Get returns the profile for userID, or common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT user_id, name, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	profile := &models.Profile{}
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&profile.UserID, &profile.Name, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return profile, nil
}
