package database

import (
	"errors"

	"github.com/lib/pq"
)

// foreignKeyViolation is the postgres error class for a failed foreign key
// constraint.
const foreignKeyViolation = "23503"

// isForeignKeyViolation reports whether err wraps a postgres foreign key
// constraint failure.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
