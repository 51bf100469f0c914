package service

import (
	"errors"
	"fmt"

	"autorental-backend/internal/domain"
)

// storeErr classifies a repository failure. Not-found passes through;
// everything else becomes a persistence failure.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}

func blobErr(err error) error {
	return fmt.Errorf("attach image: %w: %w", domain.ErrStorage, err)
}
