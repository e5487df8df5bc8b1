package command

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/kafka"
)

func TestUploadProductHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("creates category, product, detail and images", func(t *testing.T) {
		f := setup(t)
		h := NewUploadProductHandler(f.repo, f.store, f.publisher)

		nafdac := "A4-0001"
		cmd := uploadCommand("Pharmacy", png(domain.SlotImage1), png(domain.SlotImage3))
		cmd.NafdacNo = &nafdac

		result, err := h.Handle(ctx, cmd)
		require.NoError(t, err)

		assert.Equal(t, "Pharmacy", result.Category.Name)
		assert.Equal(t, 1, result.Category.InStockCount)
		assert.Equal(t, domain.AvailabilityInStock, result.Product.Availability)
		assert.Equal(t, result.Category.ID, result.Product.CategoryID)
		assert.Equal(t, "Emzor", result.Detail.Manufacturer)
		require.NotNil(t, result.Detail.NafdacRegNo)
		assert.Equal(t, nafdac, *result.Detail.NafdacRegNo)

		require.NotNil(t, result.Image)
		first, ok := result.Image.Get(domain.SlotImage1)
		require.True(t, ok)
		assert.Equal(t, "Prod 1 image1.png", first)
		_, ok = result.Image.Get(domain.SlotImage2)
		assert.False(t, ok)

		exists, err := afero.Exists(f.fs, f.store.Path(domain.SlotImage3, "Prod 1 image3.png"))
		require.NoError(t, err)
		assert.True(t, exists)

		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, kafka.EventTypeProductUploaded, f.publisher.events[0].EventType)
		assert.Equal(t, result.Product.ID, f.publisher.events[0].ProductID)
	})

	t.Run("second upload to same category bumps counter", func(t *testing.T) {
		f := setup(t)
		h := NewUploadProductHandler(f.repo, f.store, nil)

		first, err := h.Handle(ctx, uploadCommand("Pharmacy", png(domain.SlotImage1)))
		require.NoError(t, err)
		second, err := h.Handle(ctx, uploadCommand("Pharmacy", png(domain.SlotImage1)))
		require.NoError(t, err)

		assert.Equal(t, first.Category.ID, second.Category.ID)
		assert.Equal(t, 2, second.Category.InStockCount)
		assert.Equal(t, 0, second.Category.SoldOutCount)
	})

	t.Run("publish failure does not fail upload", func(t *testing.T) {
		f := setup(t)
		f.publisher.err = errBoom
		h := NewUploadProductHandler(f.repo, f.store, f.publisher)

		_, err := h.Handle(ctx, uploadCommand("Pharmacy", png(domain.SlotImage1)))
		assert.NoError(t, err)
	})

	t.Run("storage failure keeps earlier slots", func(t *testing.T) {
		f := setup(t)
		store := &failingStore{next: f.store, failOn: domain.SlotImage2}
		h := NewUploadProductHandler(f.repo, store, f.publisher)

		_, err := h.Handle(ctx, uploadCommand("Pharmacy", png(domain.SlotImage1), png(domain.SlotImage2)))
		assert.ErrorIs(t, err, errBoom)
		assert.Empty(t, f.publisher.events)

		product, err := f.repo.FetchProduct(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, product.Image)
		_, ok := product.Image.Get(domain.SlotImage1)
		assert.True(t, ok)
		_, ok = product.Image.Get(domain.SlotImage2)
		assert.False(t, ok)
	})

	t.Run("empty category is rejected", func(t *testing.T) {
		f := setup(t)
		h := NewUploadProductHandler(f.repo, f.store, f.publisher)

		_, err := h.Handle(ctx, uploadCommand("", png(domain.SlotImage1)))
		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	})
}
