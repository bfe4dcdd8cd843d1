package postgres

import (
	"strings"

	domainerrors "travelhub/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translateWriteError maps insert failures onto the domain taxonomy.
func translateWriteError(err error, operation string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrDuplicateEntry.WrapMessage(operation)
	}

	if isForeignKeyConstraintViolation(err) {
		return domainerrors.NewDatabaseExecuteError(err, operation+": foreign key violation")
	}

	return domainerrors.NewDatabaseExecuteError(err, operation)
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	// Translated by GORM when TranslateError is enabled
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "sqlstate 23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "violates foreign key constraint") ||
		strings.Contains(errMsg, "sqlstate 23503")
}
