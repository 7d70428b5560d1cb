// Package users defines the user store consumed by the auth services.
package users

import (
	"context"

	"github.com/dmitrijs2005/battleapi/internal/server/models"
)

// Repository is the abstract user store. Implementations return
// common.ErrNotFound for absent users and common.ErrConflict when an
// insert violates the email/username uniqueness constraints.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
}
