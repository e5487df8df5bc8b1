package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/kafka"
)

func TestDeleteProductHandler_Handle(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	created, err := NewUploadProductHandler(f.repo, f.store, nil).
		Handle(ctx, uploadCommand("Pharmacy", png(domain.SlotImage1)))
	require.NoError(t, err)

	h := NewDeleteProductHandler(f.repo, f.cache, f.publisher)

	require.NoError(t, h.Handle(ctx, DeleteProductCommand{ID: created.Product.ID}))
	_, err = f.repo.FetchProduct(ctx, created.Product.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	// idempotent
	require.NoError(t, h.Handle(ctx, DeleteProductCommand{ID: created.Product.ID}))
	require.NoError(t, h.Handle(ctx, DeleteProductCommand{ID: 404}))

	category, err := f.repo.FindCategory(ctx, created.Category.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, category.InStockCount)

	assert.Equal(t, []uint{created.Product.ID, created.Product.ID, 404}, f.cache.invalidated)
	require.Len(t, f.publisher.events, 3)
	assert.Equal(t, kafka.EventTypeProductDeleted, f.publisher.events[0].EventType)
}

func TestDeleteProductHandler_RepositoryError(t *testing.T) {
	f := setup(t)
	h := NewDeleteProductHandler(failingRepo{f.repo}, f.cache, f.publisher)

	err := h.Handle(context.Background(), DeleteProductCommand{ID: 1})
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, f.cache.invalidated)
	assert.Empty(t, f.publisher.events)
}

func TestDeleteImageHandler_Handle(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	created, err := NewUploadProductHandler(f.repo, f.store, nil).
		Handle(ctx, uploadCommand("Pharmacy", png(domain.SlotImage1)))
	require.NoError(t, err)

	h := NewDeleteImageHandler(f.repo, f.cache, f.publisher)

	require.NoError(t, h.Handle(ctx, DeleteImageCommand{ID: created.Image.ID}))
	_, err = f.repo.FindImage(ctx, created.Image.ID)
	assert.ErrorIs(t, err, domain.ErrImageNotFound)

	// the product itself survives
	product, err := f.repo.FetchProduct(ctx, created.Product.ID)
	require.NoError(t, err)
	assert.Nil(t, product.Image)

	require.NoError(t, h.Handle(ctx, DeleteImageCommand{ID: created.Image.ID}))

	assert.Equal(t, []uint{created.Product.ID}, f.cache.invalidated)
	require.Len(t, f.publisher.events, 2)
	assert.Equal(t, kafka.EventTypeImageDeleted, f.publisher.events[0].EventType)
	assert.Equal(t, created.Product.ID, f.publisher.events[0].ProductID)
	assert.Equal(t, uint(0), f.publisher.events[1].ProductID)
}
