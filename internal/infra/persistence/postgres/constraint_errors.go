package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"gatehouse/internal/errors"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Helper functions for PostgreSQL error checking. GORM translates driver
// errors only when TranslateError is enabled, so the SQLSTATE is checked too.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || hasSQLState(err, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || hasSQLState(err, pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, pgNotNullViolation)
}

func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}
