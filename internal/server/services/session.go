// Package services contains server-side business logic. This file implements
// SessionService: the refresh-session lifecycle (issue, refresh, revoke,
// validate) over the sessions repository plus the stateless JWT codec.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mbalakin/seizurelog/internal/common"
	"github.com/mbalakin/seizurelog/internal/server/auth"
	"github.com/mbalakin/seizurelog/internal/server/config"
	"github.com/mbalakin/seizurelog/internal/server/models"
	"github.com/mbalakin/seizurelog/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// refreshTokenBytes is the entropy of a refresh token; the stored value is
// its hex encoding (twice as many characters).
const refreshTokenBytes = 16

// maxTokenGenerationAttempts bounds the regenerate-on-collision loop.
// Exhausting it means the process entropy is broken, not a user error.
const maxTokenGenerationAttempts = 5

// SessionService manages refresh sessions:
// - Create: open a session and mint the initial token pair
// - Refresh: exchange a live refresh token for a fresh access token
// - SignOut: revoke a session (idempotent)
// - Guard: validation-only check used by authorization guards
type SessionService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	sessionValidityDuration     time.Duration
}

// NewSessionService constructs a SessionService using repositories and server config.
func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SessionService {
	return &SessionService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		sessionValidityDuration:     cfg.SessionValidityDuration,
	}
}

// Create opens a new session for userID and returns the token pair. The
// refresh token is regenerated while the store reports a collision; the
// store's unique constraint is the arbiter, not a pre-read.
func (s *SessionService) Create(ctx context.Context, userID string) (*TokenPair, error) {
	repo := s.repomanager.Sessions(s.db)

	for attempt := 0; attempt < maxTokenGenerationAttempts; attempt++ {
		refreshToken, err := common.MakeRandHexString(refreshTokenBytes)
		if err != nil {
			return nil, common.ErrorInternal
		}

		expiresAt := time.Now().Add(s.sessionValidityDuration)
		err = repo.Create(ctx, userID, refreshToken, expiresAt)
		if errors.Is(err, common.ErrDuplicateToken) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error creating session: %w", err)
		}

		accessToken, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
		if err != nil {
			return nil, common.ErrorInternal
		}
		return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
	}

	return nil, fmt.Errorf("refresh token generation exhausted after %d attempts: %w",
		maxTokenGenerationAttempts, common.ErrorInternal)
}

// Refresh exchanges a live refresh token for a fresh access token. It does
// not rotate the refresh token and does not extend the session (no sliding
// expiration). Concurrent calls against the same token are read-only safe.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	session, err := s.lookupValid(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	accessToken, err := auth.GenerateToken(session.UserID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return accessToken, nil
}

// SignOut revokes the session. An absent or already-invalid token is treated
// as already signed out, never as an error.
func (s *SessionService) SignOut(ctx context.Context, refreshToken string) error {
	if err := s.repomanager.Sessions(s.db).Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// Guard is the validation-only variant of Refresh used to gate actions that
// require an active session.
func (s *SessionService) Guard(ctx context.Context, refreshToken string) error {
	_, err := s.lookupValid(ctx, refreshToken)
	return err
}

// lookupValid fails closed: any store error, an absent row, and an expiry at
// or before now all collapse into ErrInvalidRefreshToken. Validity requires
// expiresAt strictly in the future.
func (s *SessionService) lookupValid(ctx context.Context, refreshToken string) (*models.Session, error) {
	session, err := s.repomanager.Sessions(s.db).Find(ctx, refreshToken)
	if err != nil {
		return nil, common.ErrInvalidRefreshToken
	}
	if !session.ExpiresAt.After(time.Now()) {
		return nil, common.ErrInvalidRefreshToken
	}
	return session, nil
}
