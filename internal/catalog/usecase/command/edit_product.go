package command

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/storage"
	"github.com/tair/product-catalog/kafka"
	"github.com/tair/product-catalog/pkg/logger"
)

// EditProductCommand represents the command to change an existing product
type EditProductCommand struct {
	ID           uint
	Category     string
	Name         string
	Price        string
	Description  string
	Manufacturer string
	NafdacNo     *string
	Expiry       *time.Time
	Images       []ImageFile
}

// EditProductHandler handles product edit command
type EditProductHandler struct {
	repo      domain.CatalogRepository
	store     storage.ImageStore
	cache     ProductCacheInvalidator
	publisher EventPublisher
}

// NewEditProductHandler creates a new edit product handler
func NewEditProductHandler(repo domain.CatalogRepository, store storage.ImageStore, cache ProductCacheInvalidator, publisher EventPublisher) *EditProductHandler {
	return &EditProductHandler{repo: repo, store: store, cache: cache, publisher: publisher}
}

// Handle executes the edit product command. The target category goes through
// find-or-create, so its in_stock_count is bumped even when it is unchanged.
// The detail row is overwritten in place and only the uploaded image slots are
// replaced.
func (h *EditProductHandler) Handle(ctx context.Context, cmd EditProductCommand) (*UploadResult, error) {
	product, err := h.repo.FetchProduct(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	category, err := h.repo.FindOrCreateCategory(ctx, cmd.Category)
	if err != nil {
		return nil, err
	}

	previousCategory := product.CategoryID
	product.Name = cmd.Name
	product.Price = cmd.Price
	product.CategoryID = category.ID
	if err := h.repo.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}

	detail, err := h.repo.AttachDetail(ctx, product.ID, domain.DetailInput{
		Description:  cmd.Description,
		Manufacturer: cmd.Manufacturer,
		NafdacRegNo:  cmd.NafdacNo,
		ExpiryDate:   cmd.Expiry,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to attach product detail: %w", err)
	}

	image := product.Image
	if len(cmd.Images) > 0 {
		image, err = storeImages(ctx, h.repo, h.store, product.ID, cmd.Images)
		if err != nil {
			invalidate(ctx, h.cache, product.ID)
			return nil, err
		}
	}

	invalidate(ctx, h.cache, product.ID)

	logger.Info(ctx).
		Uint("product_id", product.ID).
		Uint("category_id", category.ID).
		Uint("previous_category_id", previousCategory).
		Str("category", category.Name).
		Int("images", len(cmd.Images)).
		Msg("Product updated")

	publish(ctx, h.publisher, kafka.CatalogEvent{
		EventType:    kafka.EventTypeProductUpdated,
		ProductID:    product.ID,
		ProductName:  product.Name,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	})

	product.Detail = nil
	product.Image = nil
	return &UploadResult{
		Product:  product,
		Category: category,
		Detail:   detail,
		Image:    image,
	}, nil
}
