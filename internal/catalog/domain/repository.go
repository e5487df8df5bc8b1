package domain

import "context"

// CategoryListing is the flat view of a category's products and their child rows.
type CategoryListing struct {
	Products []Product       `json:"products"`
	Details  []ProductDetail `json:"detail"`
	Images   []ProductImage  `json:"images"`
}

// DefaultFeaturedSize is the number of categories returned by FeaturedSample
// when the caller does not ask for a specific size.
const DefaultFeaturedSize = 5

// CatalogRepository defines the contract for catalog data access
type CatalogRepository interface {
	FindOrCreateCategory(ctx context.Context, name string) (*Category, error)
	FindCategory(ctx context.Context, id uint) (*Category, error)

	CreateProduct(ctx context.Context, name, price string, categoryID uint) (*Product, error)
	UpdateProduct(ctx context.Context, product *Product) error
	FetchProduct(ctx context.Context, id uint) (*Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	CountProducts(ctx context.Context) (int64, error)

	AttachDetail(ctx context.Context, productID uint, input DetailInput) (*ProductDetail, error)
	AttachImages(ctx context.Context, productID uint, slots map[Slot]string) (*ProductImage, error)
	FindImage(ctx context.Context, id uint) (*ProductImage, error)
	DeleteImageRow(ctx context.Context, id uint) error

	ListByCategory(ctx context.Context, categoryID uint) (*CategoryListing, error)
	FeaturedSample(ctx context.Context, n int) ([]Category, error)
}
