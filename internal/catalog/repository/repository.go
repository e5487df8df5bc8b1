package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

// GormCatalogRepository implements domain.CatalogRepository using GORM
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AutoMigrate creates or updates the catalog tables
func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Category{},
		&domain.Product{},
		&domain.ProductDetail{},
		&domain.ProductImage{},
	)
}

// rowLocks reports whether the dialect understands SELECT ... FOR UPDATE.
func (r *GormCatalogRepository) rowLocks() bool {
	return r.db.Dialector.Name() == "postgres"
}

// FindOrCreateCategory looks a category up by exact name inside a single
// transaction. An existing row gets in_stock_count incremented atomically and
// sold_out_count reset; a missing one is inserted with in_stock_count = 1.
//
// The name has no unique index, so two transactions inserting the same new
// name concurrently can still both succeed.
func (r *GormCatalogRepository) FindOrCreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidCategory
	}

	var category domain.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lookup := tx.Where("name = ?", name).Order("id")
		if r.rowLocks() {
			lookup = lookup.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		err := lookup.First(&category).Error
		switch {
		case err == nil:
			if err := tx.Model(&category).Updates(map[string]interface{}{
				"in_stock_count": gorm.Expr("in_stock_count + ?", 1),
				"sold_out_count": 0,
			}).Error; err != nil {
				return err
			}
			return tx.First(&category, category.ID).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			category = domain.Category{Name: name, InStockCount: 1}
			return tx.Create(&category).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find or create category: %w", err)
	}
	return &category, nil
}

// FindCategory retrieves a category by ID
func (r *GormCatalogRepository) FindCategory(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

// CreateProduct inserts a new in-stock product
func (r *GormCatalogRepository) CreateProduct(ctx context.Context, name, price string, categoryID uint) (*domain.Product, error) {
	if name == "" || price == "" {
		return nil, domain.ErrInvalidProduct
	}

	product := &domain.Product{
		Name:         name,
		Price:        price,
		Availability: domain.AvailabilityInStock,
		CategoryID:   categoryID,
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct overwrites name, price and category of an existing product
func (r *GormCatalogRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.Name == "" || product.Price == "" {
		return domain.ErrInvalidProduct
	}

	result := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"price":       product.Price,
			"category_id": product.CategoryID,
		})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// FetchProduct retrieves a product with its detail and image record
func (r *GormCatalogRepository) FetchProduct(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Preload("Detail").
		Preload("Image").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &product, nil
}

// DeleteProduct removes the product row only. Detail and image rows are left
// in place and category counters are untouched. Deleting a missing id is not
// an error.
func (r *GormCatalogRepository) DeleteProduct(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Product{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// CountProducts returns the number of product rows
func (r *GormCatalogRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// AttachDetail writes the product's detail row, updating it in place when one
// already exists.
func (r *GormCatalogRepository) AttachDetail(ctx context.Context, productID uint, input domain.DetailInput) (*domain.ProductDetail, error) {
	db := r.db.WithContext(ctx)

	var detail domain.ProductDetail
	err := db.Where("product_id = ?", productID).Order("id").First(&detail).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		detail = domain.ProductDetail{
			ProductID:    productID,
			Description:  input.Description,
			Manufacturer: input.Manufacturer,
			NafdacRegNo:  input.NafdacRegNo,
			ExpiryDate:   input.ExpiryDate,
		}
		if err := db.Create(&detail).Error; err != nil {
			return nil, fmt.Errorf("failed to create product detail: %w", err)
		}
		return &detail, nil
	case err != nil:
		return nil, fmt.Errorf("failed to find product detail: %w", err)
	}

	// A map is used so that cleared optional fields are written as NULL.
	if err := db.Model(&detail).Updates(map[string]interface{}{
		"description":   input.Description,
		"manufacturer":  input.Manufacturer,
		"nafdac_reg_no": input.NafdacRegNo,
		"expiry_date":   input.ExpiryDate,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update product detail: %w", err)
	}

	detail.Description = input.Description
	detail.Manufacturer = input.Manufacturer
	detail.NafdacRegNo = input.NafdacRegNo
	detail.ExpiryDate = input.ExpiryDate
	return &detail, nil
}

// AttachImages records stored filenames on the product's image row. Only the
// slots present in the map are written; other slots keep their value. The row
// is created on first use.
func (r *GormCatalogRepository) AttachImages(ctx context.Context, productID uint, slots map[domain.Slot]string) (*domain.ProductImage, error) {
	for slot := range slots {
		if !slot.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSlot, slot)
		}
	}

	db := r.db.WithContext(ctx)

	var image domain.ProductImage
	err := db.Where("product_id = ?", productID).Order("id").First(&image).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if len(slots) == 0 {
			return nil, domain.ErrImageNotFound
		}
		image = domain.ProductImage{ProductID: productID}
		for slot, filename := range slots {
			if err := image.Set(slot, filename); err != nil {
				return nil, err
			}
		}
		if err := db.Create(&image).Error; err != nil {
			return nil, fmt.Errorf("failed to create product image: %w", err)
		}
		return &image, nil
	case err != nil:
		return nil, fmt.Errorf("failed to find product image: %w", err)
	}

	if len(slots) == 0 {
		return &image, nil
	}

	columns := make(map[string]interface{}, len(slots))
	for slot, filename := range slots {
		columns[slot.Column()] = filename
		if err := image.Set(slot, filename); err != nil {
			return nil, err
		}
	}
	if err := db.Model(&domain.ProductImage{}).Where("id = ?", image.ID).Updates(columns).Error; err != nil {
		return nil, fmt.Errorf("failed to update product image: %w", err)
	}
	return &image, nil
}

// FindImage retrieves an image row by ID
func (r *GormCatalogRepository) FindImage(ctx context.Context, id uint) (*domain.ProductImage, error) {
	var image domain.ProductImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to find product image: %w", err)
	}
	return &image, nil
}

// DeleteImageRow removes an image row independently of its product. Deleting
// a missing id is not an error.
func (r *GormCatalogRepository) DeleteImageRow(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&domain.ProductImage{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product image: %w", err)
	}
	return nil
}

// ListByCategory returns the products of a category together with their
// detail and image rows. An unknown category yields an empty listing.
func (r *GormCatalogRepository) ListByCategory(ctx context.Context, categoryID uint) (*domain.CategoryListing, error) {
	listing := &domain.CategoryListing{
		Products: []domain.Product{},
		Details:  []domain.ProductDetail{},
		Images:   []domain.ProductImage{},
	}

	if _, err := r.FindCategory(ctx, categoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return listing, nil
		}
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("category_id = ?", categoryID).Order("id").Find(&listing.Products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if len(listing.Products) == 0 {
		return listing, nil
	}

	ids := make([]uint, len(listing.Products))
	for i, p := range listing.Products {
		ids[i] = p.ID
	}

	if err := db.Where("product_id IN ?", ids).Order("id").Find(&listing.Details).Error; err != nil {
		return nil, fmt.Errorf("failed to list product details: %w", err)
	}
	if err := db.Where("product_id IN ?", ids).Order("id").Find(&listing.Images).Error; err != nil {
		return nil, fmt.Errorf("failed to list product images: %w", err)
	}
	return listing, nil
}

// FeaturedSample picks up to n categories in random order, each with its
// products and their image rows. Fewer than n categories returns them all.
func (r *GormCatalogRepository) FeaturedSample(ctx context.Context, n int) ([]domain.Category, error) {
	if n <= 0 {
		n = domain.DefaultFeaturedSize
	}

	var categories []domain.Category
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Products.Image").
		Order("RANDOM()").
		Limit(n).
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sample featured categories: %w", err)
	}

	for i := range categories {
		if categories[i].Products == nil {
			categories[i].Products = []domain.Product{}
		}
	}
	return categories, nil
}
