package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"coursework_service/internal/errdefs"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// handleError maps driver failures onto the shared taxonomy. Anything not
// recognized is an internal storage failure.
func handleError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return errdefs.ErrAlreadyExists
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errdefs.ErrNotFound
	}
	return errdefs.Internal(err)
}
