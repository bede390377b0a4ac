package middleware

import (
	"log/slog"
	"net/http"

	"taskhub/internal/delivery/http/response"
	domainerrors "taskhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the single boundary translator from error values to wire
// status codes and {"message"} bodies.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Echo's own errors: unmatched routes and method mismatches both answer
	// with the contract's route-not-found body; everything else keeps its
	// status with a generic message.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			_ = response.NotFound(c, domainerrors.ErrRouteNotFound.Message())
		case http.StatusBadRequest:
			_ = response.BadRequest(c, domainerrors.ErrInvalidJSON.Message())
		default:
			message := http.StatusText(httpErr.Code)
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
			_ = response.Error(c, httpErr.Code, message)
		}

		return
	}

	// Anything unrecognized is an internal failure: log it in full, return a
	// generic message with no store detail or stack trace on the wire.
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.Message())
}
