package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mbalakin/seizurelog/internal/common"
	"github.com/mbalakin/seizurelog/internal/server/models"
	"github.com/mbalakin/seizurelog/internal/server/repositories/repomanager"
)

// SeizureService manages seizure diary entries. Deletion is a soft delete so
// the change feed can announce it to live subscribers as a tombstone.
type SeizureService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewSeizureService constructs a SeizureService.
func NewSeizureService(db *sql.DB, m repomanager.RepositoryManager) *SeizureService {
	return &SeizureService{db: db, repomanager: m}
}

// Create validates and stores a new entry, returning it with the generated id.
func (s *SeizureService) Create(ctx context.Context, userID string, seizureType models.SeizureType, durationSeconds float64) (*models.Seizure, error) {
	if !seizureType.Valid() || durationSeconds < 0 {
		return nil, common.ErrorSeizureData
	}

	seizure := &models.Seizure{
		ID:              uuid.NewString(),
		UserID:          userID,
		Type:            seizureType,
		DurationSeconds: durationSeconds,
		CreatedAt:       time.Now(),
	}
	if err := s.repomanager.Seizures(s.db).Create(ctx, seizure); err != nil {
		return nil, fmt.Errorf("error creating seizure: %w", err)
	}
	return seizure, nil
}

// Delete tombstones the caller's own entry. A row belonging to another user
// is indistinguishable from an absent one.
func (s *SeizureService) Delete(ctx context.Context, userID string, seizureID string) error {
	if err := s.repomanager.Seizures(s.db).SoftDelete(ctx, userID, seizureID); err != nil {
		if err == common.ErrorNotFound {
			return err
		}
		return fmt.Errorf("error deleting seizure: %w", err)
	}
	return nil
}

// List returns the caller's live entries whose duration falls within
// [durationFrom, durationTill], both ends inclusive.
func (s *SeizureService) List(ctx context.Context, userID string, durationFrom, durationTill float64) ([]*models.Seizure, error) {
	if durationFrom > durationTill {
		return nil, common.ErrorSeizureData
	}
	seizures, err := s.repomanager.Seizures(s.db).SelectRange(ctx, userID, durationFrom, durationTill)
	if err != nil {
		return nil, fmt.Errorf("error listing seizures: %w", err)
	}
	return seizures, nil
}
