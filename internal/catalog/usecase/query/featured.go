package query

import (
	"context"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

// FeaturedCategoriesQuery represents the query for a random sample of categories
type FeaturedCategoriesQuery struct {
	Size int
}

// FeaturedCategory is a category with its products always present on the
// wire, so a category emptied by deletes encodes as "products": [].
type FeaturedCategory struct {
	domain.Category
	Products []domain.Product `json:"products"`
}

// FeaturedCategoriesHandler handles featured categories query
type FeaturedCategoriesHandler struct {
	repo domain.CatalogRepository
}

// NewFeaturedCategoriesHandler creates a new featured categories handler
func NewFeaturedCategoriesHandler(repo domain.CatalogRepository) *FeaturedCategoriesHandler {
	return &FeaturedCategoriesHandler{repo: repo}
}

// Handle executes the featured categories query. Size 0 means the default of five.
func (h *FeaturedCategoriesHandler) Handle(ctx context.Context, query FeaturedCategoriesQuery) ([]FeaturedCategory, error) {
	size := query.Size
	if size <= 0 {
		size = domain.DefaultFeaturedSize
	}

	categories, err := h.repo.FeaturedSample(ctx, size)
	if err != nil {
		return nil, err
	}

	featured := make([]FeaturedCategory, len(categories))
	for i, c := range categories {
		products := c.Products
		if products == nil {
			products = []domain.Product{}
		}
		c.Products = nil
		featured[i] = FeaturedCategory{Category: c, Products: products}
	}
	return featured, nil
}
