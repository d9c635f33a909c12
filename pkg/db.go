package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func IsUniqueViolationError(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgCodeUniqueViolation
}

func IsForeignKeyViolationError(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgCodeForeignKeyViolation
}

// ViolatedConstraint returns the constraint name carried by a postgres error, or "".
func ViolatedConstraint(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}
