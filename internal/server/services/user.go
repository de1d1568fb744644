package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mbalakin/seizurelog/internal/common"
	"github.com/mbalakin/seizurelog/internal/server/models"
	"github.com/mbalakin/seizurelog/internal/server/repositories/repomanager"
)

// UserService handles account creation and credential verification. On
// success both paths open a fresh session through SessionService, so the
// caller always leaves with a token pair.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sessions    *SessionService
}

// NewUserService constructs a UserService.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, sessions *SessionService) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		sessions:    sessions,
	}
}

// SignUp creates a user with a bcrypt-hashed password and opens a session.
// A duplicate email yields common.ErrorEmailTaken.
func (s *UserService) SignUp(ctx context.Context, email string, password string) (*TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	repo := s.repomanager.Users(s.db)
	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return nil, common.ErrorEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.sessions.Create(ctx, user.ID)
}

// SignIn verifies the password against the stored hash and opens a session.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *UserService) SignIn(ctx context.Context, email string, password string) (*TokenPair, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	return s.sessions.Create(ctx, user.ID)
}
