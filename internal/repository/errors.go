package repository

import (
	"errors"
	"fmt"

	"storefront_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// storeError wraps a failed store call as a data-access fault, logging postgres
// constraint violations at warn level and everything else at error level.
func storeError(log *logrus.Logger, op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505", "23503", "23514":
			log.Warnf("Repository: Constraint violation (%s) during %s: %s", pqErr.Code.Name(), op, pqErr.Message)
			return fmt.Errorf("%s: constraint violation: %w: %w", op, domain.ErrDataAccess, err)
		}
	}
	log.Errorf("Repository: Failed to %s: %v", op, err)
	return fmt.Errorf("could not %s: %w: %w", op, domain.ErrDataAccess, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
