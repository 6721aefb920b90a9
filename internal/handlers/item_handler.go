package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"items-api/internal/repositories"
	"items-api/internal/services"
	"items-api/pkg/lambda"
)

// Allowed method sets per route, reported in 405 responses
var (
	collectionMethods = []string{http.MethodGet, http.MethodPost}
	singleMethods     = []string{http.MethodGet, http.MethodPut, http.MethodDelete}
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	itemService services.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService services.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// unmarshalBody parses a JSON object body. An absent or empty body is
// treated as an empty object, so required-field validation still runs.
func unmarshalBody(body []byte, v interface{}) error {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	return json.Unmarshal(body, v)
}

// listItems returns stored items, optionally filtered by exact
// case-sensitive category match. An empty store or a filter with no
// matches yields an empty list, never an error.
func (h *ItemHandler) listItems(ctx context.Context, category string) (int, interface{}, error) {
	filters := &services.ItemFilters{}
	var filter *string
	if category != "" {
		filters.Category = &category
		filter = &category
	}

	items, err := h.itemService.ListItems(ctx, filters)
	if err != nil {
		return 0, nil, err
	}

	return http.StatusOK, ListItemsResponse{
		Items:   items,
		Total:   len(items),
		Filter:  filter,
		Message: fmt.Sprintf("Retrieved %d items", len(items)),
	}, nil
}

// createItem validates and stores a new item
func (h *ItemHandler) createItem(ctx context.Context, body []byte) (int, interface{}, error) {
	var req services.CreateItemRequest
	if err := unmarshalBody(body, &req); err != nil {
		return http.StatusBadRequest, ErrorResponse{
			Error: "Invalid JSON in request body",
			Tip:   "Ensure request Content-Type is application/json",
		}, nil
	}

	if strings.TrimSpace(req.Name) == "" {
		return http.StatusBadRequest, ErrorResponse{
			Error: "Name is required",
			Field: "name",
		}, nil
	}

	item, err := h.itemService.CreateItem(ctx, &req)
	if err != nil {
		if repositories.IsValidation(err) {
			return http.StatusBadRequest, ErrorResponse{Error: err.Error()}, nil
		}
		return 0, nil, err
	}

	return http.StatusCreated, ItemResponse{
		Item:    item,
		Message: "Item created successfully",
	}, nil
}

// getItem retrieves a single item by ID
func (h *ItemHandler) getItem(ctx context.Context, itemID string) (int, interface{}, error) {
	item, err := h.itemService.GetItem(ctx, itemID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return http.StatusNotFound, ErrorResponse{
				Error:  "Item not found",
				ItemID: itemID,
			}, nil
		}
		return 0, nil, err
	}

	return http.StatusOK, ItemResponse{
		Item:    item,
		Message: "Item retrieved successfully",
	}, nil
}

// updateItem merges the provided fields into an existing item. Fields
// absent from the body keep their stored values.
func (h *ItemHandler) updateItem(ctx context.Context, itemID string, body []byte) (int, interface{}, error) {
	var req services.UpdateItemRequest
	if err := unmarshalBody(body, &req); err != nil {
		return http.StatusBadRequest, ErrorResponse{
			Error: "Invalid JSON in request body",
		}, nil
	}

	item, err := h.itemService.UpdateItem(ctx, itemID, &req)
	if err != nil {
		if repositories.IsNotFound(err) {
			return http.StatusNotFound, ErrorResponse{
				Error:  "Item not found",
				ItemID: itemID,
			}, nil
		}
		if repositories.IsValidation(err) {
			return http.StatusBadRequest, ErrorResponse{Error: err.Error()}, nil
		}
		return 0, nil, err
	}

	return http.StatusOK, ItemResponse{
		Item:    item,
		Message: "Item updated successfully",
	}, nil
}

// deleteItem removes an item and returns the removed record
func (h *ItemHandler) deleteItem(ctx context.Context, itemID string) (int, interface{}, error) {
	item, err := h.itemService.DeleteItem(ctx, itemID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return http.StatusNotFound, ErrorResponse{
				Error:  "Item not found",
				ItemID: itemID,
			}, nil
		}
		return 0, nil, err
	}

	return http.StatusOK, ItemResponse{
		Item:    item,
		Message: "Item deleted successfully",
	}, nil
}

// HandleCollection routes /items requests by method
func (h *ItemHandler) HandleCollection(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	switch req.Method {
	case http.MethodGet:
		status, payload, err := h.listItems(ctx, req.QueryParams["category"])
		if err != nil {
			return nil, err
		}
		return respond(status, payload), nil

	case http.MethodPost:
		status, payload, err := h.createItem(ctx, req.Body)
		if err != nil {
			return nil, err
		}
		return respond(status, payload), nil

	default:
		return respond(http.StatusMethodNotAllowed, ErrorResponse{
			Error:          fmt.Sprintf("Method %s not allowed for /items", req.Method),
			AllowedMethods: collectionMethods,
		}), nil
	}
}

// HandleSingle routes /items/{id} requests by method
func (h *ItemHandler) HandleSingle(ctx context.Context, req *lambda.Request, itemID string) (*lambda.Response, error) {
	var (
		status  int
		payload interface{}
		err     error
	)

	switch req.Method {
	case http.MethodGet:
		status, payload, err = h.getItem(ctx, itemID)
	case http.MethodPut:
		status, payload, err = h.updateItem(ctx, itemID, req.Body)
	case http.MethodDelete:
		status, payload, err = h.deleteItem(ctx, itemID)
	default:
		return respond(http.StatusMethodNotAllowed, ErrorResponse{
			Error:          fmt.Sprintf("Method %s not allowed for /items/%s", req.Method, itemID),
			AllowedMethods: singleMethods,
		}), nil
	}

	if err != nil {
		return nil, err
	}
	return respond(status, payload), nil
}

// Gin handler methods for server mode. They share the core logic above
// so both transports return identical bodies.

// @Summary List items
// @Description Get all items with an optional category filter
// @Tags items
// @Produce json
// @Param category query string false "Filter by exact category"
// @Success 200 {object} ListItemsResponse
// @Failure 500 {object} ErrorResponse
// @Router /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	status, payload, err := h.listItems(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(status, payload)
}

// @Summary Create an item
// @Description Create a new item; name is required
// @Tags items
// @Accept json
// @Produce json
// @Param item body services.CreateItemRequest true "Item data"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON in request body"})
		return
	}

	status, payload, err := h.createItem(c.Request.Context(), body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(status, payload)
}

// @Summary Get an item
// @Description Get an item by ID
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	status, payload, err := h.getItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(status, payload)
}

// @Summary Update an item
// @Description Merge the provided fields into an existing item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body services.UpdateItemRequest true "Fields to update"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON in request body"})
		return
	}

	status, payload, err := h.updateItem(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(status, payload)
}

// @Summary Delete an item
// @Description Remove an item and return the removed record
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	status, payload, err := h.deleteItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(status, payload)
}
