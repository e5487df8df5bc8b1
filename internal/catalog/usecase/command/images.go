package command

import (
	"context"
	"fmt"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/storage"
)

// storeImages saves each file and records it on the product's image row one
// slot at a time. A failure returns the error and leaves earlier slots stored.
func storeImages(ctx context.Context, repo domain.CatalogRepository, store storage.ImageStore, productID uint, files []ImageFile) (*domain.ProductImage, error) {
	var image *domain.ProductImage
	for _, f := range files {
		filename, err := store.Save(ctx, f.Slot, productID, f.Extension, f.Data)
		if err != nil {
			return image, fmt.Errorf("failed to store %s: %w", f.Slot, err)
		}

		image, err = repo.AttachImages(ctx, productID, map[domain.Slot]string{f.Slot: filename})
		if err != nil {
			return nil, fmt.Errorf("failed to attach %s: %w", f.Slot, err)
		}
	}
	return image, nil
}
