package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mbalakin/seizurelog/internal/common"
	"github.com/mbalakin/seizurelog/internal/server/models"
	"github.com/mbalakin/seizurelog/internal/server/repositories/repomanager"
)

// ProfileService manages the single per-user profile record. Authorization
// is structural: every operation is keyed by the caller's own user id.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewProfileService constructs a ProfileService.
func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

func (s *ProfileService) Create(ctx context.Context, userID string, name string) error {
	if name == "" {
		return common.ErrorProfileData
	}
	if err := s.repomanager.Profiles(s.db).Create(ctx, userID, name); err != nil {
		if err == common.ErrorProfileExists {
			return err
		}
		return fmt.Errorf("error creating profile: %w", err)
	}
	return nil
}

func (s *ProfileService) Update(ctx context.Context, userID string, name string) error {
	if name == "" {
		return common.ErrorProfileData
	}
	if err := s.repomanager.Profiles(s.db).Update(ctx, userID, name); err != nil {
		if err == common.ErrorNotFound {
			return err
		}
		return fmt.Errorf("error updating profile: %w", err)
	}
	return nil
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.repomanager.Profiles(s.db).Get(ctx, userID)
	if err != nil {
		if err == common.ErrorNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("error loading profile: %w", err)
	}
	return profile, nil
}
