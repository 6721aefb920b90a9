package server

import (
	"github.com/sirupsen/logrus"

	"items-api/internal/config"
	"items-api/internal/repositories"
	"items-api/internal/repositories/memory"
	"items-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	ItemService services.ItemService

	// Internal dependencies
	itemRepo repositories.ItemRepository
}

// NewContainer creates a new dependency injection container. The item
// store is in-memory and scoped to this container, so each process (and
// each test) gets an isolated store. A durable backend would be wired
// here in place of the memory repository.
func NewContainer(cfg *config.Config) (*Container, error) {
	configureLogging(cfg)

	itemRepo := memory.NewItemRepository()
	itemService := services.NewItemService(itemRepo)

	return &Container{
		Config:      cfg,
		ItemService: itemService,
		itemRepo:    itemRepo,
	}, nil
}

// Close cleans up all resources. The in-memory store has nothing to
// release; this exists so callers do not depend on the storage backend.
func (c *Container) Close() error {
	return nil
}

// configureLogging sets up logrus from config
func configureLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
