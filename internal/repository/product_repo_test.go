package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"storefront_service/internal/domain"
	"storefront_service/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductRepo(t *testing.T, name string) domain.ProductRepository {
	t.Helper()
	return NewGormProductRepository(testutil.OpenInMemoryDB(t, name), testutil.QuietLogger())
}

func shirt() *domain.Product {
	return &domain.Product{Title: "Shirt", Price: 19.99, Description: "d", Category: "c", Image: "http://x/y.png"}
}

func TestProductRepository_CRUD(t *testing.T) {
	repo := newProductRepo(t, "productrepo_crud")
	ctx := context.Background()

	created, err := repo.Create(ctx, shirt())
	require.NoError(t, err)
	require.Positive(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	updated, err := repo.Update(ctx, &domain.Product{ID: created.ID, Title: "Jacket", Price: 49.5, Description: "warm", Category: "outerwear", Image: "http://x/j.png"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Jacket", updated.Title)
	assert.Equal(t, 49.5, updated.Price)
	assert.Equal(t, "outerwear", updated.Category)

	found, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProductRepository_CreateIgnoresClientID(t *testing.T) {
	repo := newProductRepo(t, "productrepo_clientid")
	ctx := context.Background()

	p := shirt()
	p.ID = 4242
	created, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.NotEqual(t, int64(4242), created.ID)
}

func TestProductRepository_UpdateCanClearFields(t *testing.T) {
	repo := newProductRepo(t, "productrepo_zero")
	ctx := context.Background()

	created, err := repo.Create(ctx, shirt())
	require.NoError(t, err)

	updated, err := repo.Update(ctx, &domain.Product{ID: created.ID, Title: "Shirt"})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Description)
	assert.Equal(t, 0.0, updated.Price)
}

func TestProductRepository_MissingRows(t *testing.T) {
	repo := newProductRepo(t, "productrepo_missing")
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Update(ctx, &domain.Product{ID: 99, Title: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	found, err := repo.Delete(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestProductRepository_CountAndCreateBatch(t *testing.T) {
	repo := newProductRepo(t, "productrepo_batch")
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	batch := []domain.Product{
		{ID: 1, Title: "a", Price: 1},
		{ID: 2, Title: "b", Price: 2},
		{ID: 3, Title: "c", Price: 3},
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))
	require.NoError(t, repo.CreateBatch(ctx, nil))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	titles := []string{}
	for _, p := range list {
		titles = append(titles, p.Title)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, titles)
}

func TestProductRepository_CreateReturnsStoredRow(t *testing.T) {
	database := testutil.OpenInMemoryDB(t, "productrepo_stored")
	// Emulates the two-decimal rounding of the postgres decimal(18,2) column.
	require.NoError(t, database.Exec(`CREATE TRIGGER round_price AFTER INSERT ON products
		BEGIN UPDATE products SET price = ROUND(NEW.price, 2) WHERE id = NEW.id; END`).Error)
	repo := NewGormProductRepository(database, testutil.QuietLogger())
	ctx := context.Background()

	p := shirt()
	p.Price = 19.999
	created, err := repo.Create(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, 20.0, created.Price)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *got, *created)
}

func TestProductRepository_CreateBatchIsAllOrNothing(t *testing.T) {
	database := testutil.OpenInMemoryDB(t, "productrepo_batch_rollback")
	calls := 0
	require.NoError(t, database.Callback().Create().Before("gorm:create").Register("test:fail_second_batch", func(tx *gorm.DB) {
		calls++
		if calls == 2 {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))
	repo := NewGormProductRepository(database, testutil.QuietLogger())
	ctx := context.Background()

	products := make([]domain.Product, seedBatchSize+50)
	for i := range products {
		products[i] = domain.Product{Title: fmt.Sprintf("item-%d", i), Price: float64(i)}
	}

	err := repo.CreateBatch(ctx, products)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataAccess)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 2, calls)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "a failed batch must roll back the ones before it")
}
