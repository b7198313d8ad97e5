package repository

import (
	"context"
	"fmt"

	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const seedBatchSize = 100

type gormProductRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormProductRepository(db *gorm.DB, logger *logrus.Logger) domain.ProductRepository {
	return &gormProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, storeError(r.log, "list products", err)
	}
	r.log.Debugf("Repository: Retrieved %d products", len(products))
	return products, nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if isNotFound(err) {
			r.log.Debugf("Repository: Product with ID %d not found", id)
			return nil, fmt.Errorf("product with id %d %w", id, domain.ErrNotFound)
		}
		return nil, storeError(r.log, fmt.Sprintf("get product %d", id), err)
	}
	return &product, nil
}

func (r *gormProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.ID = 0
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, storeError(r.log, fmt.Sprintf("create product '%s'", product.Title), err)
	}
	r.log.Infof("Repository: Product created with ID: %d, Title: %s", product.ID, product.Title)
	// The column type may round the price, so answer with the stored row.
	return r.GetByID(ctx, product.ID)
}

func (r *gormProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"title":       product.Title,
			"price":       product.Price,
			"description": product.Description,
			"category":    product.Category,
			"image":       product.Image,
		})
	if result.Error != nil {
		return nil, storeError(r.log, fmt.Sprintf("update product %d", product.ID), result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Debugf("Repository: Product with ID %d not found for update", product.ID)
		return nil, fmt.Errorf("product with id %d %w", product.ID, domain.ErrNotFound)
	}

	r.log.Infof("Repository: Product %d updated", product.ID)
	return r.GetByID(ctx, product.ID)
}

func (r *gormProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return false, storeError(r.log, fmt.Sprintf("delete product %d", id), result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Debugf("Repository: Attempted to delete non-existent product ID %d", id)
		return false, nil
	}
	r.log.Infof("Repository: Product %d deleted", id)
	return true, nil
}

func (r *gormProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return 0, storeError(r.log, "count products", err)
	}
	return count, nil
}

// CreateBatch inserts all products in a single transaction; ids are left to the store.
func (r *gormProductRepository) CreateBatch(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	for i := range products {
		products[i].ID = 0
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(products, seedBatchSize).Error
	})
	if err != nil {
		return storeError(r.log, fmt.Sprintf("insert %d products", len(products)), err)
	}
	r.log.Infof("Repository: Inserted %d products in one transaction", len(products))
	return nil
}
