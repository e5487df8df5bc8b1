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

// UploadProductCommand represents the command to add a product to the catalog
type UploadProductCommand struct {
	Category     string
	Name         string
	Price        string
	Description  string
	Manufacturer string
	NafdacNo     *string
	Expiry       *time.Time
	Images       []ImageFile
}

// UploadProductHandler handles product upload command
type UploadProductHandler struct {
	repo      domain.CatalogRepository
	store     storage.ImageStore
	publisher EventPublisher
}

// NewUploadProductHandler creates a new upload product handler
func NewUploadProductHandler(repo domain.CatalogRepository, store storage.ImageStore, publisher EventPublisher) *UploadProductHandler {
	return &UploadProductHandler{repo: repo, store: store, publisher: publisher}
}

// Handle executes the upload product command: find or create the category,
// create the product, attach its detail and then its images.
func (h *UploadProductHandler) Handle(ctx context.Context, cmd UploadProductCommand) (*UploadResult, error) {
	category, err := h.repo.FindOrCreateCategory(ctx, cmd.Category)
	if err != nil {
		return nil, err
	}

	product, err := h.repo.CreateProduct(ctx, cmd.Name, cmd.Price, category.ID)
	if err != nil {
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

	image, err := storeImages(ctx, h.repo, h.store, product.ID, cmd.Images)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("product_id", product.ID).
		Uint("category_id", category.ID).
		Str("category", category.Name).
		Int("in_stock_count", category.InStockCount).
		Int("images", len(cmd.Images)).
		Msg("Product uploaded")

	publish(ctx, h.publisher, kafka.CatalogEvent{
		EventType:    kafka.EventTypeProductUploaded,
		ProductID:    product.ID,
		ProductName:  product.Name,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	})

	return &UploadResult{
		Product:  product,
		Category: category,
		Detail:   detail,
		Image:    image,
	}, nil
}
