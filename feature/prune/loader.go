package prune

import (
	"seedbox-mover/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new prune feature around an existing service.
func NewFeature(service *Service, limits server.Config, logger *zap.Logger) *Feature {
	return &Feature{service: service, handler: NewHandler(service, limits, logger)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "prune"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
