// Package response holds the wire envelope helpers for the HTTP delivery.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error envelope. Every failure, regardless of layer,
// reaches the client as {"message": "..."} and nothing else.
type ErrorResponse struct {
	Message string `json:"message"`
}

// JSON writes a success payload as-is. Success bodies carry no envelope.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes the error envelope.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{Message: message})
}

// Unauthorized writes a 401 error envelope.
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// BadRequest writes a 400 error envelope.
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// NotFound writes a 404 error envelope.
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError writes a 500 error envelope.
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
