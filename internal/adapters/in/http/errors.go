package http

import (
	"errors"
	"log/slog"
	"net/http"

	"eda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	msgUserIDRequired = "user_id_required"
	msgForbidden      = "forbidden"
	msgInternal       = "internal_error"
)

func newError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, message)
}

// statusFor maps domain error classes to a status code and a stable message.
func statusFor(err error) (int, string) {
	var (
		notFound *errs.ObjectNotFoundError
		conflict *errs.ConflictError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.ParamName + "_not_found"
	case errors.As(err, &conflict):
		return http.StatusConflict, conflict.Reason
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// NewHTTPErrorHandler renders echo and domain errors as Error bodies.
// Only 5xx responses are logged, with the original error.
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			code    int
			message string
			httpErr *echo.HTTPError
		)
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = http.StatusText(code)
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		} else {
			code, message = statusFor(err)
		}

		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "Request failed",
				"error", err,
				"method", c.Request().Method,
				"path", c.Path(),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.WarnContext(c.Request().Context(), "Error response was not written", "error", writeErr)
		}
	}
}
