package seed

import (
	"context"
	"fmt"

	"storefront_service/internal/clients"
	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// Seeder fills an empty products table from the external catalog.
type Seeder struct {
	products domain.ProductRepository
	catalog  clients.CatalogClient
	log      *logrus.Logger
}

func NewSeeder(products domain.ProductRepository, catalog clients.CatalogClient, logger *logrus.Logger) *Seeder {
	return &Seeder{
		products: products,
		catalog:  catalog,
		log:      logger,
	}
}

// SeedProducts imports the catalog when the table is empty and returns how many rows it inserted.
// Source ids are dropped so the store assigns its own; all rows go in one transaction.
func (s *Seeder) SeedProducts(ctx context.Context) (int, error) {
	count, err := s.products.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: count products: %w", err)
	}
	if count > 0 {
		s.log.Infof("Seeder: products table already has %d rows, skipping", count)
		return 0, nil
	}

	fetched, err := s.catalog.FetchProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: fetch catalog: %w", err)
	}

	products := make([]domain.Product, 0, len(fetched))
	for _, p := range fetched {
		products = append(products, domain.Product{
			Title:       p.Title,
			Price:       p.Price,
			Description: p.Description,
			Category:    p.Category,
			Image:       p.Image,
		})
	}

	if err := s.products.CreateBatch(ctx, products); err != nil {
		return 0, fmt.Errorf("seed: insert products: %w", err)
	}
	s.log.Infof("Seeder: imported %d products", len(products))
	return len(products), nil
}
