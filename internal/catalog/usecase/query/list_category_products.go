package query

import (
	"context"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

// ListCategoryProductsQuery represents the query to list a category's products
type ListCategoryProductsQuery struct {
	CategoryID uint
}

// ListCategoryProductsHandler handles list category products query
type ListCategoryProductsHandler struct {
	repo domain.CatalogRepository
}

// NewListCategoryProductsHandler creates a new list category products handler
func NewListCategoryProductsHandler(repo domain.CatalogRepository) *ListCategoryProductsHandler {
	return &ListCategoryProductsHandler{repo: repo}
}

// Handle executes the list category products query. An unknown category
// yields an empty listing.
func (h *ListCategoryProductsHandler) Handle(ctx context.Context, query ListCategoryProductsQuery) (*domain.CategoryListing, error) {
	return h.repo.ListByCategory(ctx, query.CategoryID)
}
