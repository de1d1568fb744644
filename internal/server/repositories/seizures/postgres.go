package seizures

import (
	"context"
	"fmt"

	"github.com/mbalakin/seizurelog/internal/common"
	"github.com/mbalakin/seizurelog/internal/dbx"
	"github.com/mbalakin/seizurelog/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new seizure row.
func (r *PostgresRepository) Create(ctx context.Context, seizure *models.Seizure) error {
	query := `
		INSERT INTO seizures (id, user_id, type, duration_seconds)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, seizure.ID, seizure.UserID, seizure.Type, seizure.DurationSeconds); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// SoftDelete marks the row as deleted. The ownership check is part of the
// statement so a foreign id behaves exactly like an absent one.
func (r *PostgresRepository) SoftDelete(ctx context.Context, userID string, seizureID string) error {
	query := `
		UPDATE seizures
		SET deleted = true
		WHERE id = $1 AND user_id = $2 AND NOT deleted
	`
	res, err := r.db.ExecContext(ctx, query, seizureID, userID)
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

// SelectRange returns the caller's live rows inside the inclusive duration
// range, oldest first.
func (r *PostgresRepository) SelectRange(ctx context.Context, userID string, durationFrom, durationTill float64) ([]*models.Seizure, error) {
	query := `
		SELECT id, user_id, type, duration_seconds, deleted, created_at
		FROM seizures
		WHERE user_id = $1
		  AND NOT deleted
		  AND duration_seconds >= $2
		  AND duration_seconds <= $3
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID, durationFrom, durationTill)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var result []*models.Seizure
	for rows.Next() {
		s := &models.Seizure{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.Type, &s.DurationSeconds, &s.Deleted, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
