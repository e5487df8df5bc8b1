//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/product-catalog/internal/catalog/cache"
	"github.com/tair/product-catalog/internal/catalog/delivery/http"
	"github.com/tair/product-catalog/internal/catalog/storage"
	"github.com/tair/product-catalog/internal/catalog/usecase/command"
	"github.com/tair/product-catalog/internal/catalog/usecase/query"
	"github.com/tair/product-catalog/internal/catalog/validation"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
)

var CacheSet = wire.NewSet(
	wire.Bind(new(command.ProductCacheInvalidator), new(*cache.ProductCache)),
	wire.Bind(new(query.ProductCache), new(*cache.ProductCache)),
)

var CommandSet = wire.NewSet(
	command.NewUploadProductHandler,
	command.NewEditProductHandler,
	command.NewDeleteProductHandler,
	command.NewDeleteImageHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetProductHandler,
	query.NewListCategoryProductsHandler,
	query.NewGetCategoryHandler,
	query.NewFeaturedCategoriesHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(
	db *gorm.DB,
	store storage.ImageStore,
	productCache *cache.ProductCache,
	publisher command.EventPublisher,
	reg prometheus.Registerer,
) (*http.CatalogHandler, error) {
	wire.Build(
		RepositorySet,
		CacheSet,
		CommandSet,
		QuerySet,
		validation.New,
		http.NewMetrics,
		http.NewCatalogHandler,
	)
	return nil, nil
}
