// Package items defines the store for user-owned items.
package items

import (
	"context"

	"github.com/dmitrijs2005/battleapi/internal/server/models"
)

// Repository is the abstract item store. Lookups of absent items return
// common.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	GetByID(ctx context.Context, id string) (*models.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Item, error)
	Delete(ctx context.Context, id string) error
}
