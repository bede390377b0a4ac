package middleware

import (
	"strings"

	"taskhub/internal/delivery/http/response"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyUserID is the echo.Context key carrying the authenticated user id.
const ContextKeyUserID = "userID"

// bearerPrefix is matched literally, including the trailing space.
const bearerPrefix = "Bearer "

// AuthMiddleware is the auth gate for task routes. It validates the bearer
// token on every request and attaches the decoded identity to the context.
//
// Missing and malformed Authorization headers share one generic rejection;
// signature, expiry and claim-shape failures answer with distinct messages to
// aid legitimate client debugging. That split is deliberate and part of the
// API contract.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.Message())
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.Message())
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				return response.Unauthorized(c, domainerrors.ErrTokenExpired.Message())
			case errors.Is(err, service.ErrTokenMissingSubject):
				return response.Unauthorized(c, domainerrors.ErrTokenMissingSubject.Message())
			default:
				return response.Unauthorized(c, domainerrors.ErrTokenInvalid.Message())
			}
		}

		userID, err := uuid.Parse(strings.TrimSpace(claims.Subject))
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.Message())
		}

		// Attach the identity for handlers to use.
		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}

// UserID extracts the authenticated identity placed on the context by
// Authenticate. The boolean is false when the middleware did not run.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return id, ok
}
