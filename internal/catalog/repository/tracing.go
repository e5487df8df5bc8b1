package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/product-catalog/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracingCatalogRepository wraps a CatalogRepository with one span per call
type TracingCatalogRepository struct {
	next domain.CatalogRepository
}

// NewTracingCatalogRepository creates a new repository with tracing
func NewTracingCatalogRepository(next domain.CatalogRepository) *TracingCatalogRepository {
	return &TracingCatalogRepository{next: next}
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// finish records err on span and ends it
func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (r *TracingCatalogRepository) FindOrCreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	ctx, span := startSpan(ctx, "repository.FindOrCreateCategory",
		attribute.String("category.name", name),
	)
	category, err := r.next.FindOrCreateCategory(ctx, name)
	if err == nil {
		span.SetAttributes(
			attribute.Int("category.id", int(category.ID)),
			attribute.Int("category.in_stock_count", category.InStockCount),
		)
	}
	finish(span, err)
	return category, err
}

func (r *TracingCatalogRepository) FindCategory(ctx context.Context, id uint) (*domain.Category, error) {
	ctx, span := startSpan(ctx, "repository.FindCategory",
		attribute.Int("category.id", int(id)),
	)
	category, err := r.next.FindCategory(ctx, id)
	finish(span, err)
	return category, err
}

func (r *TracingCatalogRepository) CreateProduct(ctx context.Context, name, price string, categoryID uint) (*domain.Product, error) {
	ctx, span := startSpan(ctx, "repository.CreateProduct",
		attribute.String("product.name", name),
		attribute.String("product.price", price),
		attribute.Int("category.id", int(categoryID)),
	)
	product, err := r.next.CreateProduct(ctx, name, price, categoryID)
	if err == nil {
		span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	}
	finish(span, err)
	return product, err
}

func (r *TracingCatalogRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	ctx, span := startSpan(ctx, "repository.UpdateProduct",
		attribute.Int("product.id", int(product.ID)),
		attribute.String("product.name", product.Name),
		attribute.Int("category.id", int(product.CategoryID)),
	)
	err := r.next.UpdateProduct(ctx, product)
	finish(span, err)
	return err
}

func (r *TracingCatalogRepository) FetchProduct(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := startSpan(ctx, "repository.FetchProduct",
		attribute.Int("product.id", int(id)),
	)
	product, err := r.next.FetchProduct(ctx, id)
	if err == nil {
		span.SetAttributes(
			attribute.String("product.name", product.Name),
			attribute.Bool("product.has_detail", product.Detail != nil),
			attribute.Bool("product.has_images", product.Image != nil),
		)
	}
	finish(span, err)
	return product, err
}

func (r *TracingCatalogRepository) DeleteProduct(ctx context.Context, id uint) error {
	ctx, span := startSpan(ctx, "repository.DeleteProduct",
		attribute.Int("product.id", int(id)),
	)
	err := r.next.DeleteProduct(ctx, id)
	finish(span, err)
	return err
}

func (r *TracingCatalogRepository) CountProducts(ctx context.Context) (int64, error) {
	ctx, span := startSpan(ctx, "repository.CountProducts")
	count, err := r.next.CountProducts(ctx)
	if err == nil {
		span.SetAttributes(attribute.Int64("result.count", count))
	}
	finish(span, err)
	return count, err
}

func (r *TracingCatalogRepository) AttachDetail(ctx context.Context, productID uint, input domain.DetailInput) (*domain.ProductDetail, error) {
	ctx, span := startSpan(ctx, "repository.AttachDetail",
		attribute.Int("product.id", int(productID)),
		attribute.String("detail.manufacturer", input.Manufacturer),
	)
	detail, err := r.next.AttachDetail(ctx, productID, input)
	finish(span, err)
	return detail, err
}

func (r *TracingCatalogRepository) AttachImages(ctx context.Context, productID uint, slots map[domain.Slot]string) (*domain.ProductImage, error) {
	ctx, span := startSpan(ctx, "repository.AttachImages",
		attribute.Int("product.id", int(productID)),
		attribute.Int("image.slots", len(slots)),
	)
	image, err := r.next.AttachImages(ctx, productID, slots)
	if err == nil {
		span.SetAttributes(attribute.Int("image.id", int(image.ID)))
	}
	finish(span, err)
	return image, err
}

func (r *TracingCatalogRepository) FindImage(ctx context.Context, id uint) (*domain.ProductImage, error) {
	ctx, span := startSpan(ctx, "repository.FindImage",
		attribute.Int("image.id", int(id)),
	)
	image, err := r.next.FindImage(ctx, id)
	finish(span, err)
	return image, err
}

func (r *TracingCatalogRepository) DeleteImageRow(ctx context.Context, id uint) error {
	ctx, span := startSpan(ctx, "repository.DeleteImageRow",
		attribute.Int("image.id", int(id)),
	)
	err := r.next.DeleteImageRow(ctx, id)
	finish(span, err)
	return err
}

func (r *TracingCatalogRepository) ListByCategory(ctx context.Context, categoryID uint) (*domain.CategoryListing, error) {
	ctx, span := startSpan(ctx, "repository.ListByCategory",
		attribute.Int("category.id", int(categoryID)),
	)
	listing, err := r.next.ListByCategory(ctx, categoryID)
	if err == nil {
		span.SetAttributes(attribute.Int("result.count", len(listing.Products)))
	}
	finish(span, err)
	return listing, err
}

func (r *TracingCatalogRepository) FeaturedSample(ctx context.Context, n int) ([]domain.Category, error) {
	ctx, span := startSpan(ctx, "repository.FeaturedSample",
		attribute.Int("query.limit", n),
	)
	categories, err := r.next.FeaturedSample(ctx, n)
	if err == nil {
		span.SetAttributes(attribute.Int("result.count", len(categories)))
	}
	finish(span, err)
	return categories, err
}
