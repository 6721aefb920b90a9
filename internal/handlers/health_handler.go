package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"items-api/pkg/lambda"
)

const serviceName = "items-api"

// healthMessage is the fixed informational message returned by the
// health endpoint.
const healthMessage = "Items API backend is running successfully!"

// HealthHandler handles health check requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// healthPayload builds the health check body. The timestamp is a
// sortable RFC3339 string in UTC.
func (h *HealthHandler) healthPayload() HealthResponse {
	return HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   healthMessage,
		Service:   serviceName,
	}
}

// Handle responds to a health check request. The method is ignored and
// there is no failure mode.
func (h *HealthHandler) Handle(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return respond(http.StatusOK, h.healthPayload()), nil
}

// @Summary Health check
// @Description Verify the service is up
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthPayload())
}
