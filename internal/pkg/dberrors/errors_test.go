package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := uniqueViolation("accounts_email_key")

	assert.True(t, IsDuplicateConstraintError(err, "accounts_email_key"))
	assert.False(t, IsDuplicateConstraintError(err, "students_student_number_key"))

	// Wrapped errors still match
	wrapped := fmt.Errorf("error creating account: %w", err)
	assert.True(t, IsDuplicateConstraintError(wrapped, "accounts_email_key"))

	assert.False(t, IsDuplicateConstraintError(errors.New("plain error"), "accounts_email_key"))
	assert.False(t, IsDuplicateConstraintError(nil, "accounts_email_key"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(uniqueViolation("any_key")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(nil))
}
