package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token validation errors. The auth gate maps each to a distinct wire message.
var (
	// ErrTokenExpired indicates a well-formed, correctly signed token whose
	// expiry instant has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid covers malformed tokens and signature mismatches.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenMissingSubject indicates a valid token without a usable
	// subject claim.
	ErrTokenMissingSubject = errors.New("invalid token: missing user id")
)

// Claims defines the claim set carried by access tokens. Subject holds the
// user id; Email is informational only and never trusted for authorization.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token for the given user.
	Issue(userID uuid.UUID, email string) (string, error)

	// Validate checks the signature and expiry of a token string and returns
	// its claims. Failures are reported as ErrTokenExpired, ErrTokenInvalid
	// or ErrTokenMissingSubject.
	Validate(tokenString string) (*Claims, error)
}
