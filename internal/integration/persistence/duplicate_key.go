// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// pqUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pqUniqueViolation = "23505"

// isDuplicateKey reports whether the error came from a unique constraint
// violation. The gorm postgres driver translates these to ErrDuplicatedKey
// when TranslateError is enabled; the raw pq error is checked as well for
// paths that bypass translation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}
