package services

import (
	"context"

	"items-api/internal/models"
)

// ItemService defines the business operations for items
type ItemService interface {
	// CreateItem creates a new item from the request, applying defaults
	// for absent optional fields
	CreateItem(ctx context.Context, req *CreateItemRequest) (*models.Item, error)

	// GetItem retrieves an item by ID
	GetItem(ctx context.Context, id string) (*models.Item, error)

	// UpdateItem merges the provided fields into an existing item
	UpdateItem(ctx context.Context, id string, req *UpdateItemRequest) (*models.Item, error)

	// DeleteItem removes an item and returns the removed record
	DeleteItem(ctx context.Context, id string) (*models.Item, error)

	// ListItems retrieves items with optional filters
	ListItems(ctx context.Context, filters *ItemFilters) ([]*models.Item, error)
}
