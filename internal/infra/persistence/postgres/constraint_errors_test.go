package postgres

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func uniqueViolation(constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: constraint,
		Message:        `duplicate key value violates unique constraint "` + constraint + `"`,
	}
}

func TestDuplicateField_ClassifiesByConstraintName(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantField string
	}{
		{
			name:      "username constraint",
			err:       uniqueViolation("users_username_key"),
			wantField: "username",
		},
		{
			name:      "email constraint",
			err:       uniqueViolation("users_email_key"),
			wantField: "email",
		},
		{
			name:      "renamed username index",
			err:       uniqueViolation("idx_users_username"),
			wantField: "username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := duplicateField(tt.err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestDuplicateField_UnwrapsDriverError(t *testing.T) {
	// Create surfaces the driver error wrapped; classification must see
	// through the wrapping to the constraint name.
	wrapped := errors.Wrap(uniqueViolation("users_username_key"), "create user")

	field, ok := duplicateField(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "username", field)
}

func TestDuplicateField_RejectsNonUniqueErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("connection reset")},
		{name: "not-null violation", err: &pgconn.PgError{Code: pgerrcode.NotNullViolation}},
		{
			// The translated sentinel has no constraint name, so it must not
			// be classified at all; misreading it would mislabel a duplicate
			// username as a duplicate email.
			name: "translated sentinel",
			err:  gorm.ErrDuplicatedKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := duplicateField(tt.err)
			assert.False(t, ok)
			assert.Empty(t, field)
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.False(t, isNotNullConstraintViolation(uniqueViolation("users_email_key")))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection reset")))
}
