package services

import (
	"context"
	"testing"
	"time"

	"items-api/internal/models"
	"items-api/internal/repositories"
	"items-api/internal/repositories/memory"
)

func newTestService() ItemService {
	return NewItemService(memory.NewItemRepository())
}

func TestCreateItemDefaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, &CreateItemRequest{Name: "Widget"})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	if item.ID == "" {
		t.Error("Expected a generated ID")
	}
	if item.Description != "" {
		t.Errorf("Expected empty description, got '%s'", item.Description)
	}
	if item.Category != models.DefaultCategory {
		t.Errorf("Expected category '%s', got '%s'", models.DefaultCategory, item.Category)
	}
	if item.Price != 0 {
		t.Errorf("Expected price 0, got %.2f", item.Price)
	}
}

func TestCreateItemValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  *CreateItemRequest
	}{
		{"empty name", &CreateItemRequest{Name: ""}},
		{"negative price", &CreateItemRequest{Name: "Widget", Price: -1}},
	}

	for _, tc := range cases {
		if _, err := svc.CreateItem(ctx, tc.req); !repositories.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, &CreateItemRequest{
		Name:        "Croissant",
		Description: "buttery",
		Category:    "pastries",
		Price:       4.50,
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	got, err := svc.GetItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}

	if got.ID != created.ID || got.Name != created.Name ||
		got.Description != created.Description || got.Category != created.Category ||
		got.Price != created.Price ||
		!got.CreatedAt.Equal(created.CreatedAt) || !got.UpdatedAt.Equal(created.UpdatedAt) {
		t.Errorf("Round trip mismatch: got %+v, want %+v", got, created)
	}
}

func TestUpdateItemMerge(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, &CreateItemRequest{
		Name:     "Coffee",
		Category: "beverages",
		Price:    5.00,
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	time.Sleep(time.Millisecond)

	newPrice := 5.50
	updated, err := svc.UpdateItem(ctx, created.ID, &UpdateItemRequest{Price: &newPrice})
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}

	if updated.Name != "Coffee" || updated.Category != "beverages" {
		t.Error("Expected omitted fields to keep their values")
	}
	if updated.Price != 5.50 {
		t.Errorf("Expected price 5.50, got %.2f", updated.Price)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Expected created_at to be untouched")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("Expected updated_at to advance")
	}

	// The merge must be persisted, not just returned.
	got, err := svc.GetItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if got.Price != 5.50 {
		t.Errorf("Expected persisted price 5.50, got %.2f", got.Price)
	}
}

func TestEmptyIDIsNotFound(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.GetItem(ctx, ""); !repositories.IsNotFound(err) {
		t.Errorf("GetItem: expected not found for empty ID, got %v", err)
	}

	if _, err := svc.UpdateItem(ctx, "", &UpdateItemRequest{}); !repositories.IsNotFound(err) {
		t.Errorf("UpdateItem: expected not found for empty ID, got %v", err)
	}

	if _, err := svc.DeleteItem(ctx, ""); !repositories.IsNotFound(err) {
		t.Errorf("DeleteItem: expected not found for empty ID, got %v", err)
	}
}

func TestUpdateMissingItem(t *testing.T) {
	svc := newTestService()

	name := "Ghost"
	_, err := svc.UpdateItem(context.Background(), "no-such-id", &UpdateItemRequest{Name: &name})
	if !repositories.IsNotFound(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestDeleteItemReturnsRecord(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateItem(ctx, &CreateItemRequest{Name: "Widget", Price: 2})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	removed, err := svc.DeleteItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if removed.ID != created.ID || removed.Name != created.Name || removed.Price != created.Price {
		t.Error("Expected delete to return the full removed record")
	}

	if _, err := svc.GetItem(ctx, created.ID); !repositories.IsNotFound(err) {
		t.Errorf("Expected not found after delete, got %v", err)
	}
}

func TestListItemsFilter(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	seed := []*CreateItemRequest{
		{Name: "Croissant", Category: "pastries"},
		{Name: "Coffee", Category: "beverages"},
		{Name: "Danish", Category: "pastries"},
	}
	for _, req := range seed {
		if _, err := svc.CreateItem(ctx, req); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
	}

	all, err := svc.ListItems(ctx, nil)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(all))
	}

	category := "pastries"
	filtered, err := svc.ListItems(ctx, &ItemFilters{Category: &category})
	if err != nil {
		t.Fatalf("ListItems with filter failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 pastries, got %d", len(filtered))
	}
	for _, item := range filtered {
		if item.Category != "pastries" {
			t.Errorf("Expected only pastries, got '%s'", item.Category)
		}
	}

	missing := "no-such-category"
	empty, err := svc.ListItems(ctx, &ItemFilters{Category: &missing})
	if err != nil {
		t.Fatalf("ListItems with unmatched filter failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty result, got %d items", len(empty))
	}
}

func TestListItemsEmptyStore(t *testing.T) {
	svc := newTestService()

	items, err := svc.ListItems(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no items, got %d", len(items))
	}
}
