package handlers

import (
	"encoding/json"
	"net/http"

	"items-api/internal/models"
	"items-api/pkg/lambda"
)

// CORS headers attached to every response so browser clients on other
// origins can call the API, matching what API Gateway proxy
// integrations expect the function to return.
const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"
	corsAllowMethods = "GET,POST,PUT,DELETE,OPTIONS"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error          string   `json:"error"`
	Field          string   `json:"field,omitempty"`
	ItemID         string   `json:"item_id,omitempty"`
	Tip            string   `json:"tip,omitempty"`
	AllowedMethods []string `json:"allowed_methods,omitempty"`
}

// MessageResponse represents a bare informational response
type MessageResponse struct {
	Message string `json:"message"`
}

// ItemResponse wraps a single item with a status message
type ItemResponse struct {
	Item    *models.Item `json:"item"`
	Message string       `json:"message"`
}

// ListItemsResponse wraps a collection of items. Filter echoes the
// applied category filter and is null when no filter was given.
type ListItemsResponse struct {
	Items   []*models.Item `json:"items"`
	Total   int            `json:"total"`
	Filter  *string        `json:"filter"`
	Message string         `json:"message"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Service   string `json:"service"`
}

// corsHeaders returns a fresh header map carrying the CORS header set
func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  corsAllowOrigin,
		"Access-Control-Allow-Headers": corsAllowHeaders,
		"Access-Control-Allow-Methods": corsAllowMethods,
	}
}

// respond marshals the payload into a response descriptor with CORS headers
func respond(statusCode int, payload interface{}) *lambda.Response {
	body, err := json.Marshal(payload)
	if err != nil {
		return &lambda.Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders(),
			Body:       []byte(`{"error": "failed to encode response"}`),
		}
	}

	return &lambda.Response{
		StatusCode: statusCode,
		Headers:    corsHeaders(),
		Body:       body,
	}
}
