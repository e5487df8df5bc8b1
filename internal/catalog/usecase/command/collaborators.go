package command

import (
	"context"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/kafka"
	"github.com/tair/product-catalog/pkg/logger"
)

// EventPublisher publishes catalog change events
type EventPublisher interface {
	Publish(ctx context.Context, event kafka.CatalogEvent) error
}

// ProductCacheInvalidator drops cached copies of a product
type ProductCacheInvalidator interface {
	Invalidate(ctx context.Context, id uint) error
}

// ImageFile is an already validated upload bound for one slot
type ImageFile struct {
	Slot      domain.Slot
	Data      []byte
	Extension string
}

// UploadResult is returned by upload and edit
type UploadResult struct {
	Product  *domain.Product       `json:"product"`
	Category *domain.Category      `json:"category"`
	Detail   *domain.ProductDetail `json:"description"`
	Image    *domain.ProductImage  `json:"images"`
}

// publish sends event and only logs a failure; the catalog write has already happened
func publish(ctx context.Context, publisher EventPublisher, event kafka.CatalogEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("event_type", event.EventType).
			Uint("product_id", event.ProductID).
			Msg("Failed to publish catalog event")
	}
}

func invalidate(ctx context.Context, cache ProductCacheInvalidator, productID uint) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, productID); err != nil {
		logger.Warn(ctx).
			Err(err).
			Uint("product_id", productID).
			Msg("Failed to invalidate cached product")
	}
}
