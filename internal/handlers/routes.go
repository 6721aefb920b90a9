package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"items-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	ItemService services.ItemService
}

// SetupRoutes configures all API routes for server mode. The route set
// mirrors the Lambda router exactly: /health plus the items CRUD pair.
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	itemHandler := NewItemHandler(config.ItemService)
	healthHandler := NewHealthHandler()

	// Match the Lambda router's unrouted-path and disallowed-method bodies.
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Path not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		path := c.Request.URL.Path

		var allowed []string
		switch {
		case path == "/items":
			allowed = collectionMethods
		case strings.HasPrefix(path, "/items/"):
			allowed = singleMethods
		}

		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Error:          fmt.Sprintf("Method %s not allowed for %s", c.Request.Method, path),
			AllowedMethods: allowed,
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", healthHandler.Health)

	// Item routes
	items := router.Group("/items")
	{
		items.GET("", itemHandler.ListItems)
		items.POST("", itemHandler.CreateItem)
		items.GET("/:id", itemHandler.GetItem)
		items.PUT("/:id", itemHandler.UpdateItem)
		items.DELETE("/:id", itemHandler.DeleteItem)
	}
}
