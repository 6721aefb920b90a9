package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"items-api/internal/models"
	"items-api/internal/repositories"
)

// itemService implements the ItemService interface
type itemService struct {
	itemRepo  repositories.ItemRepository
	validator *validator.Validate
}

// NewItemService creates a new item service instance
func NewItemService(itemRepo repositories.ItemRepository) ItemService {
	return &itemService{
		itemRepo:  itemRepo,
		validator: validator.New(),
	}
}

// CreateItem creates a new item
func (s *itemService) CreateItem(ctx context.Context, req *CreateItemRequest) (*models.Item, error) {
	if req == nil {
		return nil, fmt.Errorf("create item request cannot be nil")
	}

	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, repositories.ValidationError("item", "", err)
	}

	// Create item model with defaults for absent optional fields
	item := models.NewItem(req.Name, req.Description, req.Category, req.Price)

	// Create item in repository
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"item_id":  item.ID,
		"category": item.Category,
	}).Info("Item created")

	return item, nil
}

// GetItem retrieves an item by ID. An empty or otherwise unknown ID is
// simply absent from the store, so it surfaces as not-found.
func (s *itemService) GetItem(ctx context.Context, id string) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// UpdateItem merges the provided fields into an existing item
func (s *itemService) UpdateItem(ctx context.Context, id string, req *UpdateItemRequest) (*models.Item, error) {
	if req == nil {
		return nil, fmt.Errorf("update item request cannot be nil")
	}

	// Get existing item
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	// Merge fields, keeping existing values where not provided.
	// UpdatedAt is always refreshed; ID and CreatedAt stay untouched.
	item.ApplyUpdate(&models.ItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
	})

	// Update item in repository
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	logrus.WithField("item_id", item.ID).Info("Item updated")

	return item, nil
}

// DeleteItem removes an item and returns the removed record
func (s *itemService) DeleteItem(ctx context.Context, id string) (*models.Item, error) {
	item, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	logrus.WithField("item_id", id).Info("Item deleted")

	return item, nil
}

// ListItems retrieves items with optional filters
func (s *itemService) ListItems(ctx context.Context, filters *ItemFilters) ([]*models.Item, error) {
	if filters == nil {
		filters = &ItemFilters{}
	}

	if filters.Category != nil {
		items, err := s.itemRepo.GetByCategory(ctx, *filters.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to list items by category: %w", err)
		}
		return items, nil
	}

	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}
