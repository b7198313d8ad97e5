package usecase

import (
	"errors"
	"fmt"

	"storefront_service/config"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher decides how passwords are stored and compared.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(stored, password string) (bool, error)
	// Plain reports whether stored values are the passwords themselves,
	// which lets login match in a single query.
	Plain() bool
}

func NewPasswordHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case "", config.PasswordModePlain:
		return plainHasher{}, nil
	case config.PasswordModeBcrypt:
		return bcryptHasher{cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password mode %q", mode)
	}
}

// plainHasher keeps passwords as given. This is the historical behaviour of the service
// and is insecure; use bcrypt where stored credentials matter.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return password, nil }

func (plainHasher) Matches(stored, password string) (bool, error) {
	return stored == password, nil
}

func (plainHasher) Plain() bool { return true }

type bcryptHasher struct {
	cost int
}

func (h bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("internal error processing password: %w", err)
	}
	return string(hashed), nil
}

func (bcryptHasher) Matches(stored, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
		return false, nil
	}
	return false, err
}

func (bcryptHasher) Plain() bool { return false }
