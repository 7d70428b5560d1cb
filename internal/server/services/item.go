package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/battleapi/internal/common"
	"github.com/dmitrijs2005/battleapi/internal/dbx"
	"github.com/dmitrijs2005/battleapi/internal/server/models"
	"github.com/dmitrijs2005/battleapi/internal/server/repositories/repomanager"
)

// ItemService implements ownership-filtered item access. The owner is
// always the resolved user of the current request, never caller input.
type ItemService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewItemService(db *sql.DB, m repomanager.RepositoryManager) *ItemService {
	return &ItemService{db: db, repos: m}
}

func (s *ItemService) List(ctx context.Context, ownerID string) ([]*models.Item, error) {
	return s.repos.Items(s.db).ListByOwner(ctx, ownerID)
}

func (s *ItemService) Create(ctx context.Context, ownerID, title, description string) (*models.Item, error) {
	item := &models.Item{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}

	item, err := s.repos.Items(s.db).Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}

	return item, nil
}

// Delete removes an item owned by ownerID. An absent item yields
// common.ErrNotFound; an item owned by someone else yields
// common.ErrForbidden. The check and the delete run in one transaction so
// a concurrent delete cannot slip between them.
func (s *ItemService) Delete(ctx context.Context, ownerID, itemID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Items(tx)

		item, err := repo.GetByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return common.ErrNotFound
			}
			return fmt.Errorf("item lookup: %w", err)
		}

		if item.OwnerID != ownerID {
			return common.ErrForbidden
		}

		return repo.Delete(ctx, itemID)
	})
}
