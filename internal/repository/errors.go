package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/growlocal360/maxx-energy/internal/models"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// mapError translates driver errors into model sentinels and wraps the rest.
func mapError(op string, t Table, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return models.ErrAlreadyExists
		case pqForeignKeyViolation:
			return models.ErrInvalidReference
		}
	}

	return fmt.Errorf("%s %s: %w", op, t.Entity, err)
}
