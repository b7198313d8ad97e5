package domain

import "context"

type UserRepository interface {
	FindByCredentials(ctx context.Context, username, password string) (*User, error)
	ListByUsername(ctx context.Context, username string) ([]User, error)
	Create(ctx context.Context, username, password, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}
