package command

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/repository"
	"github.com/tair/product-catalog/internal/catalog/storage"
	"github.com/tair/product-catalog/kafka"
)

var errBoom = errors.New("boom")

type fixture struct {
	repo      *repository.GormCatalogRepository
	fs        afero.Fs
	store     *storage.FileImageStore
	publisher *recordingPublisher
	cache     *recordingCache
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	repo := repository.NewGormCatalogRepository(db)
	require.NoError(t, repo.AutoMigrate())

	fs := afero.NewMemMapFs()
	return &fixture{
		repo:      repo,
		fs:        fs,
		store:     storage.NewFileImageStore(fs, "uploads"),
		publisher: &recordingPublisher{},
		cache:     &recordingCache{},
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.CatalogEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event kafka.CatalogEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

type recordingCache struct {
	invalidated []uint
}

func (c *recordingCache) Invalidate(_ context.Context, id uint) error {
	c.invalidated = append(c.invalidated, id)
	return nil
}

// failingStore fails on the given slot and delegates the rest
type failingStore struct {
	next   storage.ImageStore
	failOn domain.Slot
}

func (s *failingStore) Save(ctx context.Context, slot domain.Slot, productID uint, ext string, data []byte) (string, error) {
	if slot == s.failOn {
		return "", errBoom
	}
	return s.next.Save(ctx, slot, productID, ext, data)
}

// failingRepo fails DeleteProduct and delegates the rest
type failingRepo struct {
	domain.CatalogRepository
}

func (failingRepo) DeleteProduct(context.Context, uint) error { return errBoom }

func png(slot domain.Slot) ImageFile {
	return ImageFile{Slot: slot, Data: []byte("\x89PNG fake"), Extension: "png"}
}

func uploadCommand(category string, images ...ImageFile) UploadProductCommand {
	return UploadProductCommand{
		Category:     category,
		Name:         "Paracetamol",
		Price:        "450",
		Description:  "Pain relief",
		Manufacturer: "Emzor",
		Images:       images,
	}
}
