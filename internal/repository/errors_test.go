package repository

import (
	"errors"
	"strings"
	"testing"

	"storefront_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreError(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		level      logrus.Level
		constraint bool
	}{
		{"unique violation", &pq.Error{Code: "23505", Message: "duplicate key value"}, logrus.WarnLevel, true},
		{"foreign key violation", &pq.Error{Code: "23503", Message: "violates foreign key"}, logrus.WarnLevel, true},
		{"check violation", &pq.Error{Code: "23514", Message: "violates check constraint"}, logrus.WarnLevel, true},
		{"other postgres error", &pq.Error{Code: "42P01", Message: "relation does not exist"}, logrus.ErrorLevel, false},
		{"plain error", errors.New("connection reset"), logrus.ErrorLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()

			err := storeError(logger, "create product 'x'", tt.cause)
			require.Error(t, err)

			assert.ErrorIs(t, err, domain.ErrDataAccess)
			assert.ErrorIs(t, err, tt.cause)
			assert.Contains(t, err.Error(), "create product 'x'")
			assert.Equal(t, tt.constraint, strings.Contains(err.Error(), "constraint violation"))

			var pqErr *pq.Error
			if _, ok := tt.cause.(*pq.Error); ok {
				require.True(t, errors.As(err, &pqErr))
				assert.Equal(t, tt.cause, pqErr)
			} else {
				assert.False(t, errors.As(err, &pqErr))
			}

			require.Len(t, hook.AllEntries(), 1)
			assert.Equal(t, tt.level, hook.LastEntry().Level)
		})
	}
}
