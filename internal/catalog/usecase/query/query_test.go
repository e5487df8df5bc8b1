package query

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/repository"
)

func setupRepo(t *testing.T) *repository.GormCatalogRepository {
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
	return repo
}

func seedProduct(t *testing.T, repo domain.CatalogRepository, category, name string) *domain.Product {
	t.Helper()
	ctx := context.Background()

	c, err := repo.FindOrCreateCategory(ctx, category)
	require.NoError(t, err)
	p, err := repo.CreateProduct(ctx, name, "100", c.ID)
	require.NoError(t, err)
	_, err = repo.AttachDetail(ctx, p.ID, domain.DetailInput{Description: "d", Manufacturer: "m"})
	require.NoError(t, err)
	_, err = repo.AttachImages(ctx, p.ID, map[domain.Slot]string{domain.SlotImage1: "Prod 1 image1.png"})
	require.NoError(t, err)
	return p
}

// mapCache is an in-process stand-in for the Redis product cache
type mapCache struct {
	items    map[uint]domain.Product
	versions map[uint]int64
	getErr   error
	sets     int
}

func newMapCache() *mapCache {
	return &mapCache{items: map[uint]domain.Product{}, versions: map[uint]int64{}}
}

func (c *mapCache) Get(_ context.Context, id uint) (*domain.Product, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	p, ok := c.items[id]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (c *mapCache) Version(_ context.Context, id uint) (int64, error) {
	return c.versions[id], nil
}

func (c *mapCache) SetIfVersion(_ context.Context, p *domain.Product, version int64) (bool, error) {
	if c.versions[p.ID] != version {
		return false, nil
	}
	c.sets++
	c.items[p.ID] = *p
	return true, nil
}

func (c *mapCache) Invalidate(_ context.Context, id uint) error {
	delete(c.items, id)
	c.versions[id]++
	return nil
}

// invalidatingRepo runs an edit's invalidation after the row is read and
// before the caller can cache it.
type invalidatingRepo struct {
	domain.CatalogRepository
	cache *mapCache
}

func (r invalidatingRepo) FetchProduct(ctx context.Context, id uint) (*domain.Product, error) {
	product, err := r.CatalogRepository.FetchProduct(ctx, id)
	if err == nil {
		r.cache.Invalidate(ctx, id)
	}
	return product, err
}

func TestGetProductHandler_Handle(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	product := seedProduct(t, repo, "Pharmacy", "Paracetamol")

	testCases := []struct {
		name    string
		id      uint
		wantErr error
	}{
		{name: "Existing product", id: product.ID},
		{name: "Unknown product", id: 999, wantErr: domain.ErrProductNotFound},
		{name: "Zero id", id: 0, wantErr: domain.ErrProductNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := NewGetProductHandler(repo, nil).Handle(ctx, GetProductQuery{ID: tc.id})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Paracetamol", view.Product.Name)
			assert.Nil(t, view.Product.Detail)
			assert.Nil(t, view.Product.Image)
			require.NotNil(t, view.Detail)
			assert.Equal(t, "m", view.Detail.Manufacturer)
			require.NotNil(t, view.Images)
		})
	}
}

func TestGetProductHandler_ReadThroughCache(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	product := seedProduct(t, repo, "Pharmacy", "Paracetamol")
	cache := newMapCache()
	h := NewGetProductHandler(repo, cache)

	_, err := h.Handle(ctx, GetProductQuery{ID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// served from cache once the row is gone
	require.NoError(t, repo.DeleteProduct(ctx, product.ID))
	view, err := h.Handle(ctx, GetProductQuery{ID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", view.Product.Name)
	assert.Equal(t, 1, cache.sets)

	// a broken cache falls back to the store
	cache.getErr = errors.New("redis down")
	_, err = h.Handle(ctx, GetProductQuery{ID: product.ID})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProductHandler_InvalidatedDuringRead(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	product := seedProduct(t, repo, "Pharmacy", "Paracetamol")
	cache := newMapCache()

	view, err := NewGetProductHandler(invalidatingRepo{repo, cache}, cache).Handle(ctx, GetProductQuery{ID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", view.Product.Name)
	assert.Zero(t, cache.sets)
	_, hit, _ := cache.Get(ctx, product.ID)
	assert.False(t, hit)

	// the next read sees the new version and caches normally
	_, err = NewGetProductHandler(repo, cache).Handle(ctx, GetProductQuery{ID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
}

func TestListCategoryProductsHandler_Handle(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	first := seedProduct(t, repo, "Pharmacy", "Paracetamol")
	seedProduct(t, repo, "Pharmacy", "Ibuprofen")
	seedProduct(t, repo, "Drinks", "Water")

	h := NewListCategoryProductsHandler(repo)

	listing, err := h.Handle(ctx, ListCategoryProductsQuery{CategoryID: first.CategoryID})
	require.NoError(t, err)
	assert.Len(t, listing.Products, 2)
	assert.Len(t, listing.Details, 2)
	assert.Len(t, listing.Images, 2)

	empty, err := h.Handle(ctx, ListCategoryProductsQuery{CategoryID: 404})
	require.NoError(t, err)
	assert.Empty(t, empty.Products)
	assert.NotNil(t, empty.Products)
}

func TestGetCategoryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	product := seedProduct(t, repo, "Pharmacy", "Paracetamol")
	h := NewGetCategoryHandler(repo)

	category, err := h.Handle(ctx, GetCategoryQuery{ID: product.CategoryID})
	require.NoError(t, err)
	assert.Equal(t, "Pharmacy", category.Name)

	_, err = h.Handle(ctx, GetCategoryQuery{ID: 404})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	_, err = h.Handle(ctx, GetCategoryQuery{})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestFeaturedCategoriesHandler_Handle(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		seedProduct(t, repo, name, "item "+name)
	}
	h := NewFeaturedCategoriesHandler(repo)

	categories, err := h.Handle(ctx, FeaturedCategoriesQuery{})
	require.NoError(t, err)
	assert.Len(t, categories, domain.DefaultFeaturedSize)

	seen := map[uint]bool{}
	for _, c := range categories {
		assert.False(t, seen[c.ID], "duplicate category %d", c.ID)
		seen[c.ID] = true
		require.Len(t, c.Products, 1)
		assert.NotNil(t, c.Products[0].Image)
	}

	few, err := h.Handle(ctx, FeaturedCategoriesQuery{Size: 2})
	require.NoError(t, err)
	assert.Len(t, few, 2)
}

func TestFeaturedCategoriesHandler_EmptyCategory(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	product := seedProduct(t, repo, "Empty", "gone")
	require.NoError(t, repo.DeleteProduct(ctx, product.ID))

	categories, err := NewFeaturedCategoriesHandler(repo).Handle(ctx, FeaturedCategoriesQuery{})
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Empty", categories[0].Name)
	assert.NotNil(t, categories[0].Products)
	assert.Empty(t, categories[0].Products)

	data, err := json.Marshal(categories)
	require.NoError(t, err)
	var decoded []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.JSONEq(t, `[]`, string(decoded[0]["products"]))
	assert.JSONEq(t, `"Empty"`, string(decoded[0]["name"]))
}
