package command

import (
	"context"
	"errors"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/kafka"
	"github.com/tair/product-catalog/pkg/logger"
)

// DeleteImageCommand represents the command to delete a product image row
type DeleteImageCommand struct {
	ID uint
}

// DeleteImageHandler handles image row deletion command
type DeleteImageHandler struct {
	repo      domain.CatalogRepository
	cache     ProductCacheInvalidator
	publisher EventPublisher
}

// NewDeleteImageHandler creates a new delete image handler
func NewDeleteImageHandler(repo domain.CatalogRepository, cache ProductCacheInvalidator, publisher EventPublisher) *DeleteImageHandler {
	return &DeleteImageHandler{repo: repo, cache: cache, publisher: publisher}
}

// Handle executes the delete image command. The row is looked up first only to
// know which cached product to drop; an unknown id still succeeds.
func (h *DeleteImageHandler) Handle(ctx context.Context, cmd DeleteImageCommand) error {
	var productID uint
	image, err := h.repo.FindImage(ctx, cmd.ID)
	switch {
	case err == nil:
		productID = image.ProductID
	case !errors.Is(err, domain.ErrImageNotFound):
		return err
	}

	if err := h.repo.DeleteImageRow(ctx, cmd.ID); err != nil {
		return err
	}

	if productID != 0 {
		invalidate(ctx, h.cache, productID)
	}

	logger.Info(ctx).
		Uint("image_id", cmd.ID).
		Uint("product_id", productID).
		Msg("Product image deleted")

	publish(ctx, h.publisher, kafka.CatalogEvent{
		EventType: kafka.EventTypeImageDeleted,
		ProductID: productID,
		ImageID:   cmd.ID,
	})
	return nil
}
