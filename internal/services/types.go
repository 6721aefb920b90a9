package services

// CreateItemRequest represents the payload for creating an item
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" validate:"min=0"`
}

// UpdateItemRequest represents the payload for updating an item.
// Nil fields keep their stored values.
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ItemFilters represents optional filters for listing items
type ItemFilters struct {
	Category *string
}
