// Package storage persists uploaded product images.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

// ImageStore writes image bytes and returns the filename to record on the
// product's image row.
type ImageStore interface {
	Save(ctx context.Context, slot domain.Slot, productID uint, ext string, data []byte) (string, error)
}

// Filename builds the stored name of a product image, e.g. "Prod 7 image2.png".
func Filename(productID uint, slot domain.Slot, ext string) string {
	return fmt.Sprintf("Prod %d %s.%s", productID, slot, strings.TrimPrefix(ext, "."))
}

// FileImageStore stores images under <root>/<slot>/<filename> on an afero filesystem.
type FileImageStore struct {
	fs   afero.Fs
	root string
}

// NewFileImageStore creates an image store rooted at root
func NewFileImageStore(fs afero.Fs, root string) *FileImageStore {
	return &FileImageStore{fs: fs, root: root}
}

// NewOSImageStore creates an image store on the local disk
func NewOSImageStore(root string) *FileImageStore {
	return NewFileImageStore(afero.NewOsFs(), root)
}

// Path returns the location of a stored file.
func (s *FileImageStore) Path(slot domain.Slot, filename string) string {
	return filepath.Join(s.root, string(slot), filename)
}

// Save writes data for the given product slot, replacing any previous file of the same name.
func (s *FileImageStore) Save(ctx context.Context, slot domain.Slot, productID uint, ext string, data []byte) (string, error) {
	if !slot.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownSlot, slot)
	}
	if ext == "" {
		return "", fmt.Errorf("missing file extension for %s", slot)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, string(slot))
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	name := Filename(productID, slot, ext)
	if err := afero.WriteFile(s.fs, filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return name, nil
}
