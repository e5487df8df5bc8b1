// Package seed fills an empty catalog with sample products for local development.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/pkg/logger"
)

// DefaultCount is the number of products created when no count is given
const DefaultCount = 20

var (
	categories    = []string{"Pharmacy", "Supermarket", "Beverages", "Personal Care", "Baby", "Household"}
	productNames  = []string{"Paracetamol", "Vitamin C", "Rice", "Orange Juice", "Toothpaste", "Diapers", "Detergent", "Bottled Water", "Cough Syrup", "Soap"}
	manufacturers = []string{"Emzor", "Fidson", "Nestle", "Unilever", "PZ Cussons", "May & Baker"}
)

// Seeder creates sample products, each with a detail row and an image row
type Seeder struct {
	repo domain.CatalogRepository
	rng  *rand.Rand
}

// New creates a seeder. A nil rng uses a time seeded source.
func New(repo domain.CatalogRepository, rng *rand.Rand) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Seeder{repo: repo, rng: rng}
}

// Run creates count products and returns how many were written
func (s *Seeder) Run(ctx context.Context, count int) (int, error) {
	if count <= 0 {
		count = DefaultCount
	}

	for i := 0; i < count; i++ {
		if err := s.one(ctx, i); err != nil {
			return i, err
		}
	}

	logger.Info(ctx).Int("count", count).Msg("Catalog seeded")
	return count, nil
}

func (s *Seeder) one(ctx context.Context, i int) error {
	category, err := s.repo.FindOrCreateCategory(ctx, pick(s.rng, categories))
	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s %d", pick(s.rng, productNames), i+1)
	product, err := s.repo.CreateProduct(ctx, name, s.price(), category.ID)
	if err != nil {
		return err
	}

	var nafdac *string
	if s.rng.Intn(2) == 0 {
		reg := fmt.Sprintf("A%d-%04d", s.rng.Intn(9)+1, s.rng.Intn(10000))
		nafdac = &reg
	}
	expiry := time.Now().AddDate(0, s.rng.Intn(36)+1, 0).Truncate(24 * time.Hour)

	if _, err := s.repo.AttachDetail(ctx, product.ID, domain.DetailInput{
		Description:  fmt.Sprintf("Sample %s for the %s aisle", name, category.Name),
		Manufacturer: pick(s.rng, manufacturers),
		NafdacRegNo:  nafdac,
		ExpiryDate:   &expiry,
	}); err != nil {
		return err
	}

	_, err = s.repo.AttachImages(ctx, product.ID, map[domain.Slot]string{
		domain.SlotImage1: fmt.Sprintf("Prod %d %s.jpg", product.ID, domain.SlotImage1),
	})
	return err
}

// price returns an amount between 1.00 and 50000.00 rendered with two decimals
func (s *Seeder) price() string {
	kobo := decimal.NewFromInt(s.rng.Int63n(4_999_901) + 100)
	return kobo.Shift(-2).StringFixed(2)
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}
