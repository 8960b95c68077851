package usecase

import (
	"errors"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
)

// notFoundAs turns domain.ErrNotFound into a 404 with msg and passes
// every other error through.
func notFoundAs(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(msg)
	}
	return err
}

// createFailure keeps application errors from the store (conflicts) and
// reports anything else as an unprocessable creation.
func createFailure(msg string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Kind != apperror.KindInternal {
		return appErr
	}
	return apperror.Unprocessable(msg, err)
}
