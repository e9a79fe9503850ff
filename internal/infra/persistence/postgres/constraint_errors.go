package postgres

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translateError maps driver errors onto the repository sentinels.
func translateError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Wrap(repository.ErrRecordNotFound, op)
	case isUniqueConstraintViolation(err):
		return errors.Wrapf(repository.ErrDuplicateKey, "%s: %v", op, err)
	case isForeignKeyConstraintViolation(err):
		return errors.Wrapf(repository.ErrDanglingReference, "%s: %v", op, err)
	default:
		return domainerrors.NewDatabaseExecuteError(err, op)
	}
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// 23505 unique_violation, raised untranslated inside some drivers' batch paths
	return strings.Contains(err.Error(), "SQLSTATE 23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(err.Error(), "SQLSTATE 23503")
}
