// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskhub/config"
	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
)

// defaultSecret is the signing fallback when no secret is configured. It is
// guessable and kept only for compatibility with existing deployments;
// production must set secretKey.access.
const defaultSecret = "secretkey"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing access tokens.
	ttl    time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) service.TokenService {
	secret := cfg.SecretKey.Access
	if secret == "" {
		secret = defaultSecret
	}

	ttl := time.Hour
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL != 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{secret: secret, ttl: ttl}
}

// NewJWTServiceWithTTL builds a token service with an explicit secret and
// lifetime. A zero or negative ttl produces already-expired tokens.
func NewJWTServiceWithTTL(secret string, ttl time.Duration) service.TokenService {
	if secret == "" {
		secret = defaultSecret
	}

	return &jwtService{secret: secret, ttl: ttl}
}

// Issue creates a signed HS256 token embedding the user id as subject.
// The email claim is informational only.
func (s *jwtService) Issue(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token string and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})

	if err != nil {
		// An expired token is well-formed and correctly signed; everything
		// else collapses into the generic invalid case.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, service.ErrTokenMissingSubject
	}

	return claims, nil
}
