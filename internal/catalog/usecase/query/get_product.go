package query

import (
	"context"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/pkg/logger"
)

// ProductCache is the read-through cache consulted before the store. Writes
// are conditional on the version sampled before the store read, so an
// invalidation that lands in between wins.
type ProductCache interface {
	Get(ctx context.Context, id uint) (*domain.Product, bool, error)
	Version(ctx context.Context, id uint) (int64, error)
	SetIfVersion(ctx context.Context, product *domain.Product, version int64) (bool, error)
}

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ID uint
}

// ProductView is a product split into its row, its detail and its images
type ProductView struct {
	Product *domain.Product       `json:"product"`
	Detail  *domain.ProductDetail `json:"detail"`
	Images  *domain.ProductImage  `json:"images"`
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo  domain.CatalogRepository
	cache ProductCache
}

// NewGetProductHandler creates a new get product handler. cache may be nil.
func NewGetProductHandler(repo domain.CatalogRepository, cache ProductCache) *GetProductHandler {
	return &GetProductHandler{repo: repo, cache: cache}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (*ProductView, error) {
	if query.ID == 0 {
		return nil, domain.ErrProductNotFound
	}

	cacheable := false
	var version int64
	if h.cache != nil {
		product, hit, err := h.cache.Get(ctx, query.ID)
		if err != nil {
			logger.Warn(ctx).Err(err).Uint("product_id", query.ID).Msg("Product cache read failed")
		}
		if hit {
			logger.Debug(ctx).Uint("product_id", query.ID).Msg("Product cache hit")
			return newProductView(product), nil
		}

		version, err = h.cache.Version(ctx, query.ID)
		if err != nil {
			logger.Warn(ctx).Err(err).Uint("product_id", query.ID).Msg("Product cache version read failed")
		} else {
			cacheable = true
		}
	}

	product, err := h.repo.FetchProduct(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	if cacheable {
		stored, err := h.cache.SetIfVersion(ctx, product, version)
		switch {
		case err != nil:
			logger.Warn(ctx).Err(err).Uint("product_id", query.ID).Msg("Product cache write failed")
		case !stored:
			logger.Debug(ctx).Uint("product_id", query.ID).Msg("Product cache write skipped")
		}
	}

	return newProductView(product), nil
}

func newProductView(product *domain.Product) *ProductView {
	bare := *product
	bare.Detail = nil
	bare.Image = nil
	return &ProductView{
		Product: &bare,
		Detail:  product.Detail,
		Images:  product.Image,
	}
}
