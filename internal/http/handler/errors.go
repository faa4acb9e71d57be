package handler

import (
	"errors"

	apperrors "key-catalog/pkg/errors"
)

// wrapInternal passes through taxonomy errors untouched and wraps anything
// else (driver/storage failures) as a server error carrying the given
// public message.
func wrapInternal(err error, msg string) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.InternalServer(msg, err)
}
