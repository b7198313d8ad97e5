package usecase

import (
	"context"

	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) List(ctx context.Context) ([]domain.Product, error) {
	return uc.productRepo.List(ctx)
}

func (uc *productUseCase) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// Create builds a new entity from the request so no client-side id can reach the store.
func (uc *productUseCase) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	product := &domain.Product{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
	}
	uc.log.Debugf("Use Case: Creating product '%s'", product.Title)
	return uc.productRepo.Create(ctx, product)
}

func (uc *productUseCase) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return uc.productRepo.Update(ctx, product)
}

func (uc *productUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.productRepo.Delete(ctx, id)
}
