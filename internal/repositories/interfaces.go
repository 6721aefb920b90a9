package repositories

import (
	"context"

	"items-api/internal/models"
)

// ItemRepository defines the storage contract for items. The in-memory
// implementation lives in the memory package; a durable backend would
// satisfy the same interface.
type ItemRepository interface {
	// Create stores a new item. Returns ErrDuplicateEntry if the ID is taken.
	Create(ctx context.Context, item *models.Item) error

	// GetByID retrieves an item by ID. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*models.Item, error)

	// Update replaces a stored item in place. Returns ErrNotFound if absent.
	Update(ctx context.Context, item *models.Item) error

	// Delete removes an item and returns the removed record.
	// Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) (*models.Item, error)

	// List returns all items in insertion order.
	List(ctx context.Context) ([]*models.Item, error)

	// GetByCategory returns items whose category matches exactly,
	// in insertion order.
	GetByCategory(ctx context.Context, category string) ([]*models.Item, error)

	// Count returns the number of stored items.
	Count(ctx context.Context) (int, error)
}
