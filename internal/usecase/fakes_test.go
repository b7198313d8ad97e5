package usecase

import (
	"context"
	"fmt"
	"sort"

	"storefront_service/internal/domain"
)

type fakeProductRepo struct {
	products map[int64]domain.Product
	nextID   int64
	created  []domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]domain.Product{}, nextID: 1}
}

func (f *fakeProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product with id %d %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	f.created = append(f.created, *product)
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = *product
	return product, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := f.products[product.ID]; !ok {
		return nil, fmt.Errorf("product with id %d %w", product.ID, domain.ErrNotFound)
	}
	f.products[product.ID] = *product
	return product, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) CreateBatch(ctx context.Context, products []domain.Product) error {
	for i := range products {
		if _, err := f.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

type fakeUserRepo struct {
	users  []domain.User
	nextID int64
	err    error
}

func (f *fakeUserRepo) FindByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username && u.Password == password {
			u := u
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s %w", username, domain.ErrNotFound)
}

func (f *fakeUserRepo) ListByUsername(ctx context.Context, username string) ([]domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.User{}
	for _, u := range f.users {
		if u.Username == username {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, username, password, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	u := domain.User{ID: f.nextID, Username: username, Password: password, Email: email}
	f.users = append(f.users, u)
	return &u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with id %d %w", id, domain.ErrNotFound)
}
