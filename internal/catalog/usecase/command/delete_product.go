package command

import (
	"context"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/kafka"
	"github.com/tair/product-catalog/pkg/logger"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo      domain.CatalogRepository
	cache     ProductCacheInvalidator
	publisher EventPublisher
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.CatalogRepository, cache ProductCacheInvalidator, publisher EventPublisher) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, cache: cache, publisher: publisher}
}

// Handle executes the delete product command. Deleting an unknown id succeeds.
// Detail and image rows stay behind and category counters do not change.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := h.repo.DeleteProduct(ctx, cmd.ID); err != nil {
		return err
	}

	invalidate(ctx, h.cache, cmd.ID)

	logger.Info(ctx).Uint("product_id", cmd.ID).Msg("Product deleted")

	publish(ctx, h.publisher, kafka.CatalogEvent{
		EventType: kafka.EventTypeProductDeleted,
		ProductID: cmd.ID,
	})
	return nil
}
