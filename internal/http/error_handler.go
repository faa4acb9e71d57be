package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"key-catalog/internal/http/middleware"
	apperrors "key-catalog/pkg/errors"
)

const (
	jsonKeyError   = "error"
	jsonKeyDetails = "details"

	msgInternalServerError = "Internal server error"
)

// CustomHTTPErrorHandler handles all errors returned by handlers and
// middleware. Taxonomy errors map to their status codes; anything else is a
// server error with the underlying message surfaced as details.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := msgInternalServerError
	details := ""

	var httpErr *echo.HTTPError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)

	case errors.As(err, &appErr):
		message = appErr.Message
		details = appErr.Details

		switch {
		case errors.Is(err, apperrors.ErrBadRequest):
			code = http.StatusBadRequest
		case errors.Is(err, apperrors.ErrNotFound):
			code = http.StatusNotFound
		case errors.Is(err, apperrors.ErrConflict):
			code = http.StatusConflict
		default:
			code = http.StatusInternalServerError
			if details == "" && appErr.Err != nil {
				details = appErr.Err.Error()
			}
		}

	default:
		details = err.Error()
	}

	if code == http.StatusInternalServerError {
		if requestID := middleware.GetRequestID(c); requestID != "" {
			c.Logger().Errorf("request %s: %v", requestID, err)
		} else {
			c.Logger().Error(err)
		}
	}

	payload := map[string]string{jsonKeyError: message}
	if details != "" {
		payload[jsonKeyDetails] = details
	}

	if jsonErr := c.JSON(code, payload); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
