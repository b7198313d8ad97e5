package repository

import (
	"context"
	"fmt"

	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormUserRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormUserRepository(db *gorm.DB, logger *logrus.Logger) domain.UserRepository {
	return &gormUserRepository{
		db:  db,
		log: logger,
	}
}

// FindByCredentials returns the lowest-id user whose username and password both match exactly.
func (r *gormUserRepository) FindByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		Order("id").
		First(&user).Error
	if err != nil {
		if isNotFound(err) {
			r.log.Debugf("Repository: No user matches the credentials for username %s", username)
			return nil, fmt.Errorf("user %s %w", username, domain.ErrNotFound)
		}
		return nil, storeError(r.log, fmt.Sprintf("find user %s", username), err)
	}
	return &user, nil
}

func (r *gormUserRepository) ListByUsername(ctx context.Context, username string) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.WithContext(ctx).Where("username = ?", username).Order("id").Find(&users).Error; err != nil {
		return nil, storeError(r.log, fmt.Sprintf("list users named %s", username), err)
	}
	return users, nil
}

// Create always inserts; usernames are not required to be unique.
func (r *gormUserRepository) Create(ctx context.Context, username, password, email string) (*domain.User, error) {
	user := &domain.User{
		Username: username,
		Password: password,
		Email:    email,
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, storeError(r.log, fmt.Sprintf("create user '%s'", username), err)
	}
	r.log.Infof("Repository: User created with ID: %d, Username: %s", user.ID, user.Username)
	return user, nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if isNotFound(err) {
			r.log.Debugf("Repository: User with ID %d not found", id)
			return nil, fmt.Errorf("user with id %d %w", id, domain.ErrNotFound)
		}
		return nil, storeError(r.log, fmt.Sprintf("get user %d", id), err)
	}
	return &user, nil
}
