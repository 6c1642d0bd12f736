package postgres

import (
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// duplicateField classifies a unique-constraint violation and reports which
// users column was violated. Requires the raw driver error: gorm's error
// translation must stay disabled or the constraint name is lost.
func duplicateField(err error) (field string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}

	// The constraint names match the migration; the substring check covers
	// renamed or index-backed constraints on the same column.
	switch pgErr.ConstraintName {
	case "users_username_key":
		return "username", true
	case "users_email_key":
		return "email", true
	}
	if strings.Contains(pgErr.ConstraintName, "username") {
		return "username", true
	}

	return "email", true
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.NotNullViolation
	}

	return false
}
