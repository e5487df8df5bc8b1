package catalog

import (
	"gorm.io/gorm"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/repository"
)

// ProvideCatalogRepository provides the GORM repository wrapped with tracing
func ProvideCatalogRepository(db *gorm.DB) domain.CatalogRepository {
	return repository.NewTracingCatalogRepository(repository.NewGormCatalogRepository(db))
}

// Migrate creates or updates the catalog tables
func Migrate(db *gorm.DB) error {
	return repository.NewGormCatalogRepository(db).AutoMigrate()
}
