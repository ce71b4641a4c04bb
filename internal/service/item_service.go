package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/splitcart/splitcart/internal/models"
	"github.com/splitcart/splitcart/internal/storage"
)

// ItemUpdate carries a partial item update; nil fields are left unchanged.
// Updates are set-only: a price or payer, once recorded, can be changed but
// not cleared.
type ItemUpdate struct {
	Name      *string
	Price     *decimal.Decimal
	Completed *bool
	PaidBy    *string
}

// ItemServiceProvider defines the interface for item services.
type ItemServiceProvider interface {
	Add(ctx context.Context, listID, name string, price *decimal.Decimal, paidBy *string) (*models.Item, error)
	Update(ctx context.Context, itemID string, update ItemUpdate) (*models.Item, error)
	ItemsForList(ctx context.Context, listID string) ([]*models.Item, error)
}

// ItemService provides business logic for item management.
type ItemService struct {
	store storage.Store
}

// NewItemService creates a new ItemService with the given storage backend.
func NewItemService(store storage.Store) *ItemService {
	return &ItemService{store: store}
}

// Add creates a new item on a list. Price and payer are optional; completed
// starts false. The list must exist.
func (s *ItemService) Add(ctx context.Context, listID, name string, price *decimal.Decimal, paidBy *string) (*models.Item, error) {
	if _, err := s.store.GetList(ctx, listID); err != nil {
		return nil, err
	}

	item := &models.Item{
		ListID: listID,
		Name:   name,
		Price:  price,
		PaidBy: paidBy,
	}
	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	slog.Info("Item added", "item_id", item.ID, "list_id", listID, "name", name)
	return item, nil
}

// Update applies a partial update to an existing item. The whole record is
// replaced in one write, so the item never holds a mix of old and new
// fields.
func (s *ItemService) Update(ctx context.Context, itemID string, update ItemUpdate) (*models.Item, error) {
	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		item.Name = *update.Name
	}
	if update.Price != nil {
		item.Price = update.Price
	}
	if update.Completed != nil {
		item.Completed = *update.Completed
	}
	if update.PaidBy != nil {
		item.PaidBy = update.PaidBy
	}

	if err := s.store.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	slog.Info("Item updated", "item_id", item.ID, "list_id", item.ListID)
	return item, nil
}

// ItemsForList returns all items on a list.
func (s *ItemService) ItemsForList(ctx context.Context, listID string) ([]*models.Item, error) {
	return s.store.ItemsForList(ctx, listID)
}
