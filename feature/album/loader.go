package album

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"music-catalog/core/cache"
	"music-catalog/core/provider"
	"music-catalog/feature/library"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Album feature. catalog may be nil when the
// data provider is local.
func NewFeature(db *gorm.DB, c *cache.Cache, saver *library.Saver, catalog provider.Catalog, settings provider.Settings, logger *zap.Logger) *Feature {
	svc := NewService(db, c, saver, catalog, settings, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "album"
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
