package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/kafka"
)

func TestEditProductHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product", func(t *testing.T) {
		f := setup(t)
		h := NewEditProductHandler(f.repo, f.store, f.cache, f.publisher)

		_, err := h.Handle(ctx, EditProductCommand{ID: 99, Category: "Pharmacy", Name: "x", Price: "1"})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)

		// the category must not have been touched
		listing, err := f.repo.FeaturedSample(ctx, 5)
		require.NoError(t, err)
		assert.Empty(t, listing)
	})

	t.Run("moves product, overwrites detail and replaces given slots", func(t *testing.T) {
		f := setup(t)
		upload := NewUploadProductHandler(f.repo, f.store, nil)
		created, err := upload.Handle(ctx, uploadCommand("Pharmacy", png(domain.SlotImage1), png(domain.SlotImage2)))
		require.NoError(t, err)

		h := NewEditProductHandler(f.repo, f.store, f.cache, f.publisher)
		gif := ImageFile{Slot: domain.SlotImage2, Data: []byte("GIF89a"), Extension: "gif"}
		result, err := h.Handle(ctx, EditProductCommand{
			ID:           created.Product.ID,
			Category:     "Supermarket",
			Name:         "Paracetamol Extra",
			Price:        "600",
			Description:  "Stronger",
			Manufacturer: "Emzor",
			Images:       []ImageFile{gif},
		})
		require.NoError(t, err)

		assert.Equal(t, "Supermarket", result.Category.Name)
		assert.Equal(t, 1, result.Category.InStockCount)
		assert.Equal(t, created.Detail.ID, result.Detail.ID)
		assert.Equal(t, "Stronger", result.Detail.Description)
		assert.Equal(t, created.Image.ID, result.Image.ID)

		slot1, _ := result.Image.Get(domain.SlotImage1)
		slot2, _ := result.Image.Get(domain.SlotImage2)
		assert.Equal(t, "Prod 1 image1.png", slot1)
		assert.Equal(t, "Prod 1 image2.gif", slot2)

		stored, err := f.repo.FetchProduct(ctx, created.Product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Paracetamol Extra", stored.Name)
		assert.Equal(t, "600", stored.Price)
		assert.Equal(t, result.Category.ID, stored.CategoryID)

		assert.Equal(t, []uint{created.Product.ID}, f.cache.invalidated)
		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, kafka.EventTypeProductUpdated, f.publisher.events[0].EventType)
	})

	t.Run("same category still bumps counter", func(t *testing.T) {
		f := setup(t)
		upload := NewUploadProductHandler(f.repo, f.store, nil)
		created, err := upload.Handle(ctx, uploadCommand("Pharmacy", png(domain.SlotImage1)))
		require.NoError(t, err)

		h := NewEditProductHandler(f.repo, f.store, f.cache, nil)
		cmd := EditProductCommand{
			ID:           created.Product.ID,
			Category:     "Pharmacy",
			Name:         created.Product.Name,
			Price:        created.Product.Price,
			Description:  "Pain relief",
			Manufacturer: "Emzor",
		}
		result, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Category.InStockCount)
		assert.Equal(t, created.Image.ID, result.Image.ID)
	})
}
