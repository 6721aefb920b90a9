package memory

import (
	"context"
	"sync"

	"items-api/internal/models"
	"items-api/internal/repositories"
)

// ItemRepository is an in-memory implementation of
// repositories.ItemRepository. State is scoped to the process: a warm
// function instance keeps its items between invocations, a fresh
// instance starts empty. Each instance owns an independent store and no
// cross-instance synchronization is attempted.
type ItemRepository struct {
	mu    sync.RWMutex
	items map[string]*models.Item
	order []string // insertion order, so List is stable
}

// NewItemRepository creates an empty in-memory item repository
func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items: make(map[string]*models.Item),
	}
}

// Create stores a new item
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	if item == nil {
		return repositories.ValidationError("item", "", repositories.ErrInvalidID)
	}

	if err := item.Validate(); err != nil {
		return repositories.ValidationError("item", item.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return repositories.DuplicateError("item", item.ID)
	}

	r.items[item.ID] = item.Clone()
	r.order = append(r.order, item.ID)
	return nil
}

// GetByID retrieves an item by ID
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, repositories.NotFoundError("item", id)
	}

	return item.Clone(), nil
}

// Update replaces a stored item in place
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	if item == nil {
		return repositories.ValidationError("item", "", repositories.ErrInvalidID)
	}

	if err := item.Validate(); err != nil {
		return repositories.ValidationError("item", item.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return repositories.NotFoundError("item", item.ID)
	}

	// Insertion order is preserved across updates.
	r.items[item.ID] = item.Clone()
	return nil
}

// Delete removes an item and returns the removed record
func (r *ItemRepository) Delete(ctx context.Context, id string) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[id]
	if !exists {
		return nil, repositories.NotFoundError("item", id)
	}

	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return item, nil
}

// List returns all items in insertion order
func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*models.Item, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id].Clone())
	}

	return items, nil
}

// GetByCategory returns items whose category matches exactly
func (r *ItemRepository) GetByCategory(ctx context.Context, category string) ([]*models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*models.Item, 0)
	for _, id := range r.order {
		if item := r.items[id]; item.MatchesCategory(category) {
			items = append(items, item.Clone())
		}
	}

	return items, nil
}

// Count returns the number of stored items
func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items), nil
}
