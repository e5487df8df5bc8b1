package query

import (
	"context"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

// GetCategoryQuery represents the query to get a category by ID
type GetCategoryQuery struct {
	ID uint
}

// GetCategoryHandler handles get category query
type GetCategoryHandler struct {
	repo domain.CatalogRepository
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(repo domain.CatalogRepository) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo}
}

// Handle executes the get category query
func (h *GetCategoryHandler) Handle(ctx context.Context, query GetCategoryQuery) (*domain.Category, error) {
	if query.ID == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return h.repo.FindCategory(ctx, query.ID)
}
