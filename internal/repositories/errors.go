package repository

import (
	"errors"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation (duplicate category name).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// IsForeignKeyViolation reports whether err is a postgres foreign-key
// violation (item referencing a missing category).
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}
