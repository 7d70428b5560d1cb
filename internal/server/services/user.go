// Package services contains server-side business logic. This file
// implements UserService: registration, password login issuing JWTs, and
// whoami.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/battleapi/internal/common"
	"github.com/dmitrijs2005/battleapi/internal/server/auth"
	"github.com/dmitrijs2005/battleapi/internal/server/config"
	"github.com/dmitrijs2005/battleapi/internal/server/models"
	"github.com/dmitrijs2005/battleapi/internal/server/repositories/repomanager"
)

// UserService provides the authentication use-cases:
//   - Register: create users
//   - Login: verify credentials and mint an access token
//   - Whoami: resolve a token back to its user
type UserService struct {
	db                          *sql.DB
	repos                       repomanager.RepositoryManager
	identity                    *IdentityService
	jwtSecret                   []byte
	jwtAlgorithm                string
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, identity *IdentityService, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repos:                       m,
		identity:                    identity,
		jwtSecret:                   []byte(cfg.SecretKey),
		jwtAlgorithm:                cfg.JWTAlgorithm,
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// Register creates a new active user. A taken email or username yields
// common.ErrConflict, both from the pre-check and from the store's
// uniqueness constraint, so concurrent duplicate registrations cannot both
// succeed.
func (s *UserService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	repo := s.repos.Users(s.db)

	_, err := repo.GetByEmailOrUsername(ctx, email, username)
	if err == nil {
		return nil, common.ErrConflict
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("registration pre-check: %w", err)
	}

	digest, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		UserName:     username,
		PasswordHash: digest,
		IsActive:     true,
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the username/password pair and returns a signed access
// token. An unknown username and a wrong password produce the identical
// common.ErrUnauthenticated, so callers cannot tell which factor failed.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrUnauthenticated
		}
		return "", fmt.Errorf("user lookup: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrUnauthenticated
	}

	token, err := auth.GenerateToken(user.UserName, s.jwtSecret, s.jwtAlgorithm, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrInternal
	}

	return token, nil
}

// Whoami resolves a raw bearer token to its user.
func (s *UserService) Whoami(ctx context.Context, token string) (*models.User, error) {
	return s.identity.Resolve(ctx, token)
}
