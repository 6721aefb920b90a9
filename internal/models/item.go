package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to items created without an explicit category.
const DefaultCategory = "general"

// Item represents a single inventory item in the system
type Item struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Name        string    `json:"name" validate:"required,min=1,max=255"`
	Description string    `json:"description"`
	Category    string    `json:"category" validate:"required"`
	Price       float64   `json:"price" validate:"min=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItem creates a new item with a generated ID and timestamps.
// Empty category falls back to DefaultCategory.
func NewItem(name, description, category string, price float64) *Item {
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}

	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the item data
func (i *Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item ID is required")
	}

	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("item name is required")
	}

	if len(i.Name) > 255 {
		return fmt.Errorf("item name cannot exceed 255 characters")
	}

	if strings.TrimSpace(i.Category) == "" {
		return fmt.Errorf("item category is required")
	}

	if i.Price < 0 {
		return fmt.Errorf("item price cannot be negative")
	}

	return nil
}

// ItemUpdate carries the mutable fields of an item. A nil field means
// "keep the existing value".
type ItemUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ApplyUpdate merges the provided fields into the item, keeping existing
// values for absent fields. ID and CreatedAt are never touched.
// UpdatedAt is always refreshed.
func (i *Item) ApplyUpdate(update *ItemUpdate) {
	if update.Name != nil {
		i.Name = *update.Name
	}
	if update.Description != nil {
		i.Description = *update.Description
	}
	if update.Category != nil {
		i.Category = *update.Category
	}
	if update.Price != nil {
		i.Price = *update.Price
	}

	i.UpdateTimestamp()
}

// UpdateTimestamp updates the UpdatedAt timestamp
func (i *Item) UpdateTimestamp() {
	i.UpdatedAt = time.Now().UTC()
}

// Clone returns a copy of the item. Stored items are cloned on the way
// in and out of the store so callers cannot mutate shared state.
func (i *Item) Clone() *Item {
	copied := *i
	return &copied
}

// MatchesCategory reports whether the item belongs to the given
// category. Matching is exact and case-sensitive.
func (i *Item) MatchesCategory(category string) bool {
	return i.Category == category
}
