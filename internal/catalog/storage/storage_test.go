package storage

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "Prod 7 image2.png", Filename(7, domain.SlotImage2, "png"))
	assert.Equal(t, "Prod 7 image1.jpg", Filename(7, domain.SlotImage1, ".jpg"))
}

func TestFileImageStore_Save(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileImageStore(fs, "/public")

	name, err := store.Save(context.Background(), domain.SlotImage1, 12, ".gif", []byte("GIF89a"))
	require.NoError(t, err)
	assert.Equal(t, "Prod 12 image1.gif", name)

	data, err := afero.ReadFile(fs, "/public/image1/Prod 12 image1.gif")
	require.NoError(t, err)
	assert.Equal(t, []byte("GIF89a"), data)
	assert.Equal(t, "/public/image1/Prod 12 image1.gif", store.Path(domain.SlotImage1, name))

	t.Run("overwrites", func(t *testing.T) {
		_, err := store.Save(context.Background(), domain.SlotImage1, 12, "gif", []byte("second"))
		require.NoError(t, err)
		data, err := afero.ReadFile(fs, "/public/image1/Prod 12 image1.gif")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), data)
	})

	t.Run("unknown slot", func(t *testing.T) {
		_, err := store.Save(context.Background(), "image9", 12, "gif", nil)
		assert.ErrorIs(t, err, domain.ErrUnknownSlot)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := store.Save(ctx, domain.SlotImage3, 12, "png", []byte("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
