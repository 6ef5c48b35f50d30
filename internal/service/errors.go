package service

import (
	"errors"
	"fmt"

	"github.com/dtroode/rewards-server/internal/model"
)

// storageError wraps err for op, tagging unclassified failures as ErrStorageUnavailable.
func storageError(op string, err error) error {
	if errors.Is(err, model.ErrStorageUnavailable) ||
		errors.Is(err, model.ErrMalformedInput) ||
		errors.Is(err, model.ErrRateLimited) {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return fmt.Errorf("failed to %s: %w: %w", op, model.ErrStorageUnavailable, err)
}
