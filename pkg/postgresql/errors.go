package postgresql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE class 23 constraint violation codes.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// IsUniqueViolation reports whether err is a unique constraint violation.
// Concurrent writers racing on the same (sku, created_at) surface this code;
// the losing writer must treat it as benign.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return false
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == foreignKeyViolationCode
	}
	return false
}
