package postgres

import (
	domainerrors "greengrocer/internal/domain/errors"
	"greengrocer/internal/domain/repository"
	"greengrocer/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgForeignKeyViolation
}

// translateWriteError maps a failed insert, update or delete to a repository
// sentinel when the store rejected it on a constraint, and to a store error otherwise.
func translateWriteError(err error, op string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(repository.ErrReferenceViolation, op)
	case isUniqueConstraintViolation(err):
		return domainerrors.NewDatabaseExecuteError(err, op+": duplicate key")
	default:
		return domainerrors.NewDatabaseExecuteError(err, op)
	}
}

// translateReadError maps gorm.ErrRecordNotFound to notFound and any other
// failure to a store error.
func translateReadError(err error, notFound error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}
