package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/battleapi/internal/common"
	"github.com/dmitrijs2005/battleapi/internal/server/auth"
	"github.com/dmitrijs2005/battleapi/internal/server/config"
	"github.com/dmitrijs2005/battleapi/internal/server/models"
	"github.com/dmitrijs2005/battleapi/internal/server/repositories/repomanager"
)

// IdentityService resolves bearer tokens to users. Every call re-reads the
// store, so deactivating an account cuts off its still-valid tokens on the
// next request; there is no other revocation mechanism.
type IdentityService struct {
	db           *sql.DB
	repos        repomanager.RepositoryManager
	jwtSecret    []byte
	jwtAlgorithm string
}

func NewIdentityService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *IdentityService {
	return &IdentityService{
		db:           db,
		repos:        m,
		jwtSecret:    []byte(cfg.SecretKey),
		jwtAlgorithm: cfg.JWTAlgorithm,
	}
}

// Resolve verifies the token and loads the embedded user. Any token defect
// and an unknown subject both yield common.ErrUnauthenticated, so a caller
// cannot probe which accounts exist. A known subject with is_active=false
// yields common.ErrForbidden: the identity is valid, access is
// administratively disabled.
func (s *IdentityService) Resolve(ctx context.Context, token string) (*models.User, error) {
	subject, err := auth.SubjectFromToken(token, s.jwtSecret, s.jwtAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthenticated, err)
	}

	repo := s.repos.Users(s.db)

	user, err := repo.GetByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	if !user.IsActive {
		return nil, common.ErrForbidden
	}

	return user, nil
}
