package usecase

import (
	"context"
	"errors"
	"fmt"

	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type UserUseCase interface {
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Register(ctx context.Context, username, password, email string) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// userUseCase implements UserUseCase on top of a domain.UserRepository.
type userUseCase struct {
	userRepo domain.UserRepository
	hasher   PasswordHasher
	log      *logrus.Logger
}

func NewUserUseCase(repo domain.UserRepository, hasher PasswordHasher, logger *logrus.Logger) UserUseCase {
	return &userUseCase{
		userRepo: repo,
		hasher:   hasher,
		log:      logger,
	}
}

// Login returns the stored user for matching credentials or domain.ErrInvalidCredentials.
func (uc *userUseCase) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if uc.hasher.Plain() {
		user, err := uc.userRepo.FindByCredentials(ctx, username, password)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				uc.log.Warnf("Use Case: Login failed for username %s", username)
				return nil, domain.ErrInvalidCredentials
			}
			return nil, err
		}
		return user, nil
	}

	// Usernames are not unique, so every candidate is checked in id order.
	candidates, err := uc.userRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		ok, err := uc.hasher.Matches(candidates[i].Password, password)
		if err != nil {
			return nil, fmt.Errorf("internal error during authentication: %w", err)
		}
		if ok {
			return &candidates[i], nil
		}
	}
	uc.log.Warnf("Use Case: Login failed for username %s", username)
	return nil, domain.ErrInvalidCredentials
}

func (uc *userUseCase) Register(ctx context.Context, username, password, email string) error {
	stored, err := uc.hasher.Hash(password)
	if err != nil {
		return err
	}
	user, err := uc.userRepo.Create(ctx, username, stored, email)
	if err != nil {
		return err
	}
	uc.log.Infof("Use Case: User registered. ID: %d, Username: %s", user.ID, user.Username)
	return nil
}

func (uc *userUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}
