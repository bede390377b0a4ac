// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the issued bearer token. Registration implies login, so
// both flows produce the same shape.
type AuthOutput struct {
	Token string
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type UserUsecase interface {
	// Register creates an account and immediately issues a token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token. Unknown email and wrong
	// password produce the same error.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetProfile returns the account behind an authenticated identity.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
