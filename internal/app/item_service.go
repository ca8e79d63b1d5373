package app

import (
	"context"
	"fmt"

	"github.com/riverphoenix/ai-pm-ide/internal/core/item"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// ItemServiceImpl implements the ItemService interface.
type ItemServiceImpl struct {
	itemRepo secondary.ItemRepository
}

// NewItemService creates a new ItemService with injected dependencies.
func NewItemService(itemRepo secondary.ItemRepository) *ItemServiceImpl {
	return &ItemServiceImpl{
		itemRepo: itemRepo,
	}
}

// SearchItems unions context documents and framework outputs matching the
// term by name or tag, ordered by name. An unknown project simply yields an
// empty result.
func (s *ItemServiceImpl) SearchItems(ctx context.Context, projectID, term string) ([]*primary.Item, error) {
	records, err := s.itemRepo.Search(ctx, projectID, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	items := make([]*primary.Item, len(records))
	for i, r := range records {
		items[i] = &primary.Item{
			ID:         r.ID,
			Name:       r.Name,
			Kind:       r.Kind,
			FolderID:   r.FolderID,
			Category:   r.Category,
			DocType:    r.DocType,
			IsFavorite: r.IsFavorite,
			CreatedAt:  r.CreatedAt,
		}
	}
	return items, nil
}

// ToggleFavorite sets an item's favorite flag.
func (s *ItemServiceImpl) ToggleFavorite(ctx context.Context, req primary.ToggleFavoriteRequest) error {
	kind, err := item.ParseKind(req.Kind)
	if err != nil {
		return err
	}
	return s.itemRepo.ToggleFavorite(ctx, string(kind), req.ItemID, req.Value)
}

// Ensure ItemServiceImpl implements the interface.
var _ primary.ItemService = (*ItemServiceImpl)(nil)
