package auth

import (
	"testing"
	"time"

	"taskhub/config"
	"taskhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := NewJWTServiceWithTTL("test-secret", time.Hour)

	userID := uuid.New()
	token, err := svc.Issue(userID, "test@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "test@example.com", claims.Email)
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc := NewJWTServiceWithTTL("test-secret", -time.Minute)

	token, err := svc.Issue(uuid.New(), "test@example.com")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	issuer := NewJWTServiceWithTTL("issuer-secret", time.Hour)
	verifier := NewJWTServiceWithTTL("other-secret", time.Hour)

	token, err := issuer.Issue(uuid.New(), "test@example.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_Validate_Malformed(t *testing.T) {
	svc := NewJWTServiceWithTTL("test-secret", time.Hour)

	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_Validate_WrongSigningMethod(t *testing.T) {
	svc := NewJWTServiceWithTTL("test-secret", time.Hour)

	// An unsigned token must be rejected even though its claims are fine.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_Validate_MissingSubject(t *testing.T) {
	svc := NewJWTServiceWithTTL("test-secret", time.Hour)

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := signed.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenMissingSubject)
}

func TestNewJWTService_DefaultSecretFallback(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	svc := NewJWTService(cfg)

	token, err := svc.Issue(uuid.New(), "test@example.com")
	require.NoError(t, err)

	// With no configured secret the service signs with the known fallback.
	verifier := NewJWTServiceWithTTL(defaultSecret, time.Hour)
	_, err = verifier.Validate(token)
	assert.NoError(t, err)
}

func TestNewJWTService_TTLFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "configured-secret"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Minute}

	svc := NewJWTService(cfg).(*jwtService)

	assert.Equal(t, time.Minute, svc.ttl)
	assert.Equal(t, "configured-secret", svc.secret)
}
