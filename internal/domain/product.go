// domain/product.go
package domain

import "context"

type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, product *Product) (*Product, error)

	// Update overwrites every mutable field of the row identified by product.ID.
	Update(ctx context.Context, product *Product) (*Product, error)

	// Delete reports whether a row was found and removed.
	Delete(ctx context.Context, id int64) (bool, error)

	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, products []Product) error
}
