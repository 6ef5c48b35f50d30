package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/rewards-server/internal/model"
)

// wrapError classifies a driver error. Data exceptions and constraint
// violations are the caller's fault; everything else means storage is unavailable.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgerrcode.IsDataException(pgErr.Code) || pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return fmt.Errorf("failed to %s: %w: %w", op, model.ErrMalformedInput, err)
		}
	}

	return fmt.Errorf("failed to %s: %w: %w", op, model.ErrStorageUnavailable, err)
}
